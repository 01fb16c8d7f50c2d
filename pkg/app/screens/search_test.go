package screens

import (
	"context"
	"strings"
	"testing"

	"github.com/kerbaras/quran/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearch(t *testing.T) *SearchScreen {
	t.Helper()
	s := NewSearchScreen(context.Background(), newTestController(t))
	s.Update(size(100, 60))
	return s
}

func TestSearchFindsVerses(t *testing.T) {
	s := newSearch(t)
	require.True(t, s.CapturingInput())

	s.input.SetValue("Allah")
	_, cmd := s.Update(key("enter"))
	assert.True(t, s.searching)
	assert.Contains(t, s.View(), "Searching...")

	s.Update(run(t, cmd))
	assert.False(t, s.searching)
	require.NotEmpty(t, s.results)
	assert.False(t, s.CapturingInput())
	for _, hit := range s.results {
		assert.Contains(t, hit.TextEN, "Allah")
	}

	view := s.View()
	assert.Contains(t, view, "Found")
	first := s.results[0]
	assert.Contains(t, view, first.SurahName)

	s.Update(key("down"))
	want := s.results[0]
	if len(s.results) > 1 {
		want = s.results[1]
	}
	_, cmd = s.Update(key("enter"))
	assert.Equal(t, SwitchScreenMsg{
		Screen: ScreenReader,
		Data:   ReaderTarget{Surah: want.SurahNumber, Ayah: want.AyahNumber},
	}, run(t, cmd))
}

func TestSearchNoResults(t *testing.T) {
	s := newSearch(t)

	s.input.SetValue("zzzz-not-a-word")
	_, cmd := s.Update(key("enter"))
	s.Update(run(t, cmd))

	assert.Empty(t, s.results)
	assert.True(t, s.CapturingInput())
	assert.Contains(t, s.View(), "No results found")
}

func TestSearchSendsQueryUntrimmed(t *testing.T) {
	s := newSearch(t)

	s.input.SetValue("Allah ")
	_, cmd := s.Update(key("enter"))
	s.Update(run(t, cmd))

	require.Len(t, s.results, 2)
	for _, hit := range s.results {
		assert.Contains(t, hit.TextEN, "Allah ")
	}
}

func TestSearchBlankQuery(t *testing.T) {
	s := newSearch(t)

	s.input.SetValue("   ")
	_, cmd := s.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, s.searching)
	assert.NotContains(t, s.View(), "No results found")
}

func TestSearchArabic(t *testing.T) {
	s := newSearch(t)
	require.NoError(t, s.controller.Preferences.SetLanguage(data.Arabic))

	s.input.SetValue("الله")
	_, cmd := s.Update(key("enter"))
	s.Update(run(t, cmd))

	require.NotEmpty(t, s.results)
	for _, hit := range s.results {
		assert.True(t, strings.Contains(hit.TextAR, "الله"))
	}
}

func TestSearchLanguageChangeClearsResults(t *testing.T) {
	s := newSearch(t)

	s.input.SetValue("Allah")
	_, cmd := s.Update(key("enter"))
	s.Update(run(t, cmd))
	require.NotEmpty(t, s.results)

	require.NoError(t, s.controller.Preferences.SetLanguage(data.Russian))
	s.Update(PreferencesChangedMsg{})
	assert.Empty(t, s.results)
	assert.Contains(t, s.View(), "Поиск аятов...")
}

func TestSearchEscTogglesFocus(t *testing.T) {
	s := newSearch(t)

	s.Update(key("esc"))
	assert.False(t, s.CapturingInput())

	s.Update(key("esc"))
	assert.True(t, s.CapturingInput())
}
