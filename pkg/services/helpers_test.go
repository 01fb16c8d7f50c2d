package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/kerbaras/quran/pkg/catalog"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/stretchr/testify/require"
)

const fixtureSurahs = `[
  {"number": 1, "name": "الفاتحة", "englishName": "Al-Faatiha", "russianName": "Аль-Фатиха", "englishNameTranslation": "The Opening", "russianNameTranslation": "Открывающая", "numberOfAyahs": 2, "revelationType": "Meccan"},
  {"number": 2, "name": "البقرة", "englishName": "Al-Baqara", "russianName": "Аль-Бакара", "englishNameTranslation": "The Cow", "russianNameTranslation": "Корова", "numberOfAyahs": %d, "revelationType": "Medinan"},
  {"number": 112, "name": "الإخلاص", "englishName": "Al-Ikhlaas", "russianName": "Аль-Ихлас", "englishNameTranslation": "Sincerity", "russianNameTranslation": "Искренность", "numberOfAyahs": 2, "revelationType": "Meccan"}
]`

// fixtureFS has text for surahs 1 and 112 only, trimmed to two verses each.
// The Russian translation of 112 is missing its last line.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		catalog.SurahsFile: {Data: []byte(fmt.Sprintf(fixtureSurahs, 286))},
		"quran-ar.txt": {Data: []byte(strings.Join([]string{
			"1|1|بسم الله الرحمن الرحيم",
			"1|2|الحمد لله رب العالمين",
			"112|1|قل هو الله أحد",
			"112|2|الله الصمد",
		}, "\n"))},
		"quran-en.txt": {Data: []byte(strings.Join([]string{
			"1|1|In the name of Allah",
			"1|2|All praise is due to Allah",
			"112|1|Say, He is Allah, One",
			"112|2|Allah, the Eternal Refuge",
		}, "\n"))},
		"quran-ru.txt": {Data: []byte(strings.Join([]string{
			"1|1|Во имя Аллаха",
			"1|2|Хвала Аллаху",
			"112|1|Скажи: Он Аллах Один",
		}, "\n"))},
	}
}

func loadCatalog(t *testing.T, fsys fstest.MapFS) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(fsys)
	require.NoError(t, err)
	return c
}

// manyVersesFS adds n verses to surah 2, each containing "نور".
func manyVersesFS(n int) fstest.MapFS {
	fsys := fixtureFS()
	var ar, en strings.Builder
	ar.Write(fsys["quran-ar.txt"].Data)
	en.Write(fsys["quran-en.txt"].Data)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&ar, "\n2|%d|نور %d", i, i)
		fmt.Fprintf(&en, "\n2|%d|light %d", i, i)
	}
	fsys[catalog.SurahsFile] = &fstest.MapFile{Data: []byte(fmt.Sprintf(fixtureSurahs, n))}
	fsys["quran-ar.txt"] = &fstest.MapFile{Data: []byte(ar.String())}
	fsys["quran-en.txt"] = &fstest.MapFile{Data: []byte(en.String())}
	return fsys
}

func newTestStore(t *testing.T) *data.Store {
	t.Helper()
	store, err := data.Open(data.Config{Driver: data.DriverSQLite, Path: data.MemoryPath}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func seededStore(t *testing.T, cat *catalog.Catalog) *data.Store {
	t.Helper()
	store := newTestStore(t)
	_, err := NewSeeder(store, cat, nil).Seed(context.Background(), false)
	require.NoError(t, err)
	return store
}
