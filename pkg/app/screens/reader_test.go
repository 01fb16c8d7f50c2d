package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(t *testing.T, controller *services.QuranController, surah, ayah int) *ReaderScreen {
	t.Helper()
	s, err := controller.Surah(surah)
	require.NoError(t, err)
	r := NewReaderScreen(context.Background(), controller, testLogger(), s, ayah)
	r.Update(size(100, 60))
	return r
}

func TestNextFontSize(t *testing.T) {
	sizes := []int{}
	size := defaultFontSize
	for i := 0; i < 5; i++ {
		size = nextFontSize(size)
		sizes = append(sizes, size)
	}
	assert.Equal(t, []int{32, 36, 40, 24, 28}, sizes)
}

func TestReaderLoadsVerses(t *testing.T) {
	controller := newTestController(t)
	r := newReader(t, controller, 112, 0)
	assert.Contains(t, r.View(), "Loading Surah...")

	r.Update(r.loadVerses())
	require.Len(t, r.verses, 4)
	assert.Equal(t, 0, r.cursor)
	assert.True(t, r.showsBismillah())

	view := r.View()
	assert.Contains(t, view, "Al-Ikhlaas")
	assert.Contains(t, view, "Fully Offline")
	assert.Contains(t, view, "End of Surah")

	lr := controller.Preferences.State().LastRead
	require.NotNil(t, lr)
	assert.Equal(t, data.LastRead{SurahNumber: 112, AyahNumber: 1, SurahName: r.surah.Name, SurahEnglishName: "Al-Ikhlaas"}, *lr)
}

func TestReaderCursorUpdatesLastRead(t *testing.T) {
	controller := newTestController(t)
	r := newReader(t, controller, 112, 3)
	r.Update(r.loadVerses())

	assert.Equal(t, 2, r.cursor)
	assert.Equal(t, 3, controller.Preferences.State().LastRead.AyahNumber)

	r.Update(key("down"))
	assert.Equal(t, 4, controller.Preferences.State().LastRead.AyahNumber)

	// the cursor stops at the last verse
	r.Update(key("down"))
	assert.Equal(t, 3, r.cursor)

	r.Update(key("g"))
	assert.Equal(t, 0, r.cursor)
	assert.Equal(t, 1, controller.Preferences.State().LastRead.AyahNumber)

	r.Update(key("G"))
	assert.Equal(t, 3, r.cursor)
}

func TestReaderScrollsToCursor(t *testing.T) {
	controller := newTestController(t)
	r := newReader(t, controller, 103, 0)
	r.Update(size(80, 16)) // two verses per page
	r.Update(r.loadVerses())
	require.Len(t, r.verses, 3)

	assert.Equal(t, 2, r.pageSize())
	assert.NotContains(t, r.View(), "End of Surah")

	r.Update(key("down"))
	r.Update(key("down"))
	assert.Equal(t, 1, r.offset)
	assert.False(t, r.showsBismillah())
	assert.Contains(t, r.View(), "End of Surah")
}

func TestReaderBismillahRule(t *testing.T) {
	controller := newTestController(t)

	fatiha := newReader(t, controller, 1, 0)
	fatiha.Update(fatiha.loadVerses())
	assert.False(t, fatiha.showsBismillah())

	ikhlas := newReader(t, controller, 112, 0)
	ikhlas.Update(ikhlas.loadVerses())
	assert.True(t, ikhlas.showsBismillah())
}

func TestReaderFontSize(t *testing.T) {
	r := newReader(t, newTestController(t), 112, 0)
	r.Update(r.loadVerses())

	assert.Contains(t, r.View(), "Aa 28")
	r.Update(key("+"))
	assert.Equal(t, 32, r.fontSize)
	assert.Contains(t, r.View(), "Aa 32")
}

func TestReaderNotIndexed(t *testing.T) {
	controller := newTestController(t)
	r := newReader(t, controller, 2, 0)
	r.Update(r.loadVerses())

	assert.Empty(t, r.verses)
	assert.Contains(t, r.View(), "Text indexing in progress for Surah 2.")
	assert.Nil(t, controller.Preferences.State().LastRead)

	// moving on an empty surah is a no-op
	r.Update(key("down"))
	assert.Equal(t, 0, r.cursor)
}

func TestReaderQueryError(t *testing.T) {
	r := newReader(t, newTestController(t), 112, 0)
	r.Update(versesLoadedMsg{err: errors.New("database is locked")})

	view := r.View()
	assert.Contains(t, view, "Error: database is locked")
	assert.NotContains(t, view, "Text indexing in progress")
}

func TestReaderBack(t *testing.T) {
	r := newReader(t, newTestController(t), 112, 0)

	_, cmd := r.Update(key("esc"))
	assert.Equal(t, SwitchScreenMsg{Screen: ScreenHome}, run(t, cmd))
}

func TestReaderRussian(t *testing.T) {
	controller := newTestController(t)
	require.NoError(t, controller.Preferences.SetLanguage(data.Russian))

	r := newReader(t, controller, 112, 0)
	r.Update(r.loadVerses())
	require.NotEmpty(t, r.verses)
	assert.NotEmpty(t, r.verses[0].Translation)

	view := r.View()
	assert.Contains(t, view, "Аль-Ихлас")
	assert.Contains(t, view, "Конец суры")
}
