package data

import (
	"fmt"
	"strings"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	Russian Language = "ru"
)

// ParseLanguage accepts the stored language codes (en, ar, ru).
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Arabic, Russian:
		return l, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// TextColumn is the ayahs column holding text for the language.
func (l Language) TextColumn() string {
	switch l {
	case Russian:
		return "text_ru"
	case English:
		return "text_en"
	default:
		return "text_ar"
	}
}

type Theme string

const (
	Midnight Theme = "MIDNIGHT"
	Sepia    Theme = "SEPIA"
	Light    Theme = "LIGHT"
)

func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToUpper(strings.TrimSpace(s))); t {
	case Midnight, Sepia, Light:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

type Surah struct {
	Number                 int    `json:"number" db:"number"`
	Name                   string `json:"name" db:"name"`
	EnglishName            string `json:"englishName" db:"englishName"`
	RussianName            string `json:"russianName" db:"russianName"`
	EnglishNameTranslation string `json:"englishNameTranslation" db:"-"`
	RussianNameTranslation string `json:"russianNameTranslation" db:"-"`
	NumberOfAyahs          int    `json:"numberOfAyahs" db:"numberOfAyahs"`
	RevelationType         string `json:"revelationType" db:"revelationType"` // "Meccan", "Medinan"
}

// DisplayName returns the surah name for the UI language.
func (s Surah) DisplayName(lang Language) string {
	if lang == Russian {
		return s.RussianName
	}
	return s.EnglishName
}

// Meaning returns the translated surah name gloss for the UI language.
func (s Surah) Meaning(lang Language) string {
	if lang == Russian {
		return s.RussianNameTranslation
	}
	return s.EnglishNameTranslation
}

// Ayah is a verse as shown by the reader. The positional fields (Juz through
// Sajda) are not tracked by the catalog and stay zero.
type Ayah struct {
	Number        int
	NumberInSurah int
	Text          string
	Translation   string
	Juz           int
	Manzil        int
	Page          int
	Ruku          int
	HizbQuarter   int
	Sajda         bool
}

// AyahRow is a row of the ayahs table.
type AyahRow struct {
	ID          string `db:"id"`
	SurahNumber int    `db:"surah_number"`
	AyahNumber  int    `db:"ayah_number"`
	TextAR      string `db:"text_ar"`
	TextRU      string `db:"text_ru"`
	TextEN      string `db:"text_en"`
}

// AyahID builds the "{surah}_{verse}" primary key.
func AyahID(surah, verse int) string {
	return fmt.Sprintf("%d_%d", surah, verse)
}

type SearchHit struct {
	AyahRow
	SurahName        string `db:"surahName"`
	SurahRussianName string `db:"surahRussianName"`
}

type Stats struct {
	VerseCount int
	SurahCount int
}

type LastRead struct {
	SurahNumber      int    `json:"surahNumber"`
	AyahNumber       int    `json:"ayahNumber"`
	SurahName        string `json:"surahName"`
	SurahEnglishName string `json:"surahEnglishName"`
}

const Bismillah = "بِسْمِ ٱللَّهِ ٱلرَّحْمَـٰنِ ٱلرَّحِيمِ"

// HasBismillah reports whether the surah is opened by the Bismillah header.
// Al-Fatiha carries it as its first verse and At-Tawba has none.
func HasBismillah(surah int) bool {
	return surah != 1 && surah != 9
}
