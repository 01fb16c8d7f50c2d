package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]Language{"en": English, " RU ": Russian, "ar": Arabic} {
		got, err := ParseLanguage(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLanguage("fr")
	assert.Error(t, err)
}

func TestLanguageTextColumn(t *testing.T) {
	assert.Equal(t, "text_en", English.TextColumn())
	assert.Equal(t, "text_ru", Russian.TextColumn())
	assert.Equal(t, "text_ar", Arabic.TextColumn())
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme("sepia")
	require.NoError(t, err)
	assert.Equal(t, Sepia, got)

	_, err = ParseTheme("neon")
	assert.Error(t, err)
}

func TestSurahNames(t *testing.T) {
	s := Surah{EnglishName: "Al-Ikhlaas", RussianName: "Аль-Ихлас", EnglishNameTranslation: "Sincerity", RussianNameTranslation: "Искренность"}

	assert.Equal(t, "Al-Ikhlaas", s.DisplayName(English))
	assert.Equal(t, "Al-Ikhlaas", s.DisplayName(Arabic))
	assert.Equal(t, "Аль-Ихлас", s.DisplayName(Russian))
	assert.Equal(t, "Искренность", s.Meaning(Russian))
	assert.Equal(t, "Sincerity", s.Meaning(English))
}

func TestAyahID(t *testing.T) {
	assert.Equal(t, "2_255", AyahID(2, 255))
}

func TestHasBismillah(t *testing.T) {
	assert.True(t, HasBismillah(2))
	assert.True(t, HasBismillah(112))
	assert.False(t, HasBismillah(1))
	assert.False(t, HasBismillah(9))
}
