package services

import (
	"context"
	"strings"
	"testing"

	"github.com/kerbaras/quran/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersesBySurahUnseeded(t *testing.T) {
	reader := NewReader(newTestStore(t))

	verses, err := reader.VersesBySurah(context.Background(), 2, data.English)
	require.NoError(t, err)
	assert.NotNil(t, verses)
	assert.Empty(t, verses)
}

func TestVersesBySurahInvalidNumber(t *testing.T) {
	reader := NewReader(newTestStore(t))

	for _, n := range []int{0, -1, 115} {
		_, err := reader.VersesBySurah(context.Background(), n, data.English)
		assert.ErrorIs(t, err, ErrInvalidSurah, "surah %d", n)
	}
}

func TestVersesBySurahTranslations(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, fixtureFS())))
	ctx := context.Background()

	tests := []struct {
		lang data.Language
		want []string
	}{
		{data.English, []string{"In the name of Allah", "All praise is due to Allah"}},
		{data.Russian, []string{"Во имя Аллаха", "Хвала Аллаху"}},
		{data.Arabic, []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			verses, err := reader.VersesBySurah(ctx, 1, tt.lang)
			require.NoError(t, err)
			require.Len(t, verses, 2)

			for i, v := range verses {
				assert.Equal(t, i+1, v.NumberInSurah)
				assert.Equal(t, tt.want[i], v.Translation)
				assert.Zero(t, v.Juz)
				assert.False(t, v.Sajda)
			}
			assert.Equal(t, "بسم الله الرحمن الرحيم", verses[0].Text)
		})
	}
}

func TestVersesBySurahOrderedWithoutGaps(t *testing.T) {
	cat := loadCatalog(t, manyVersesFS(30))
	reader := NewReader(seededStore(t, cat))

	for _, s := range cat.Surahs() {
		verses, err := reader.VersesBySurah(context.Background(), s.Number, data.English)
		require.NoError(t, err)
		require.Len(t, verses, len(cat.Arabic(s.Number)))
		for i, v := range verses {
			assert.Equal(t, i+1, v.NumberInSurah, "surah %d", s.Number)
		}
	}
}

func TestSearch(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, fixtureFS())))
	ctx := context.Background()

	hits, err := reader.Search(ctx, "الله", data.Arabic)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	for _, h := range hits {
		assert.Contains(t, h.TextAR, "الله")
	}
	assert.Equal(t, "Al-Faatiha", hits[0].SurahName)
	assert.Equal(t, "Аль-Ихлас", hits[2].SurahRussianName)

	hits, err = reader.Search(ctx, "Хвала", data.Russian)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "1_2", hits[0].ID)

	hits, err = reader.Search(ctx, "Refuge", data.English)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 112, hits[0].SurahNumber)
}

func TestSearchBlankQuery(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, fixtureFS())))

	for _, q := range []string{"", "   ", "\t"} {
		hits, err := reader.Search(context.Background(), q, data.English)
		require.NoError(t, err)
		assert.Empty(t, hits)
	}
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, fixtureFS())))
	ctx := context.Background()

	hits, err := reader.Search(ctx, "Allah", data.English)
	require.NoError(t, err)
	assert.Len(t, hits, 4)

	hits, err = reader.Search(ctx, "Allah ", data.English)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = reader.Search(ctx, " Allah,", data.English)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "112_1", hits[0].ID)
}

func TestSearchIsCapped(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, manyVersesFS(80))))

	hits, err := reader.Search(context.Background(), "نور", data.Arabic)
	require.NoError(t, err)
	assert.Len(t, hits, MaxSearchResults)

	hits, err = reader.Search(context.Background(), "light 7", data.English)
	require.NoError(t, err)
	for _, h := range hits {
		assert.True(t, strings.Contains(h.TextEN, "light 7"))
	}
	assert.Len(t, hits, 11) // 7, 70..79
}

func TestSearchWildcardsAreLiteral(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, fixtureFS())))

	hits, err := reader.Search(context.Background(), "%", data.English)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStats(t *testing.T) {
	reader := NewReader(seededStore(t, loadCatalog(t, fixtureFS())))

	stats, err := reader.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data.Stats{VerseCount: 4, SurahCount: 3}, stats)
}

func TestQueriesFailOnClosedStore(t *testing.T) {
	store := newTestStore(t)
	reader := NewReader(store)
	require.NoError(t, store.Close())

	_, err := reader.VersesBySurah(context.Background(), 1, data.English)
	assert.Error(t, err)
	_, err = reader.Search(context.Background(), "x", data.English)
	assert.Error(t, err)
	_, err = reader.Stats(context.Background())
	assert.Error(t, err)
}
