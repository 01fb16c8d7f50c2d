package locale

import "github.com/kerbaras/quran/pkg/data"

// Strings holds the UI text for one language.
type Strings struct {
	Title        string
	FullyOffline string
	TabQuran     string
	TabSearch    string
	TabSettings  string
	SearchSurah  string
	SearchVerses string
	Searching    string
	NoResults    string
	FoundResults string // format, result count
	LastRead     string
	Ayah         string
	Verses       string
	LoadingSurah string
	NotIndexed   string // format, surah number
	EndOfSurah   string
	AppLanguage  string
	Appearance   string
	Storage      string
	TotalAyahs   string
	TotalSurahs  string
	Exported     string // format, path
	Error        string
}

var english = Strings{
	Title:        "The Noble Quran",
	FullyOffline: "Fully Offline",
	TabQuran:     "Quran",
	TabSearch:    "Search",
	TabSettings:  "Settings",
	SearchSurah:  "Search Surah...",
	SearchVerses: "Search verses...",
	Searching:    "Searching...",
	NoResults:    "No results found",
	FoundResults: "Found %d results",
	LastRead:     "LAST READ",
	Ayah:         "Ayah",
	Verses:       "verses",
	LoadingSurah: "Loading Surah...",
	NotIndexed:   "Text indexing in progress for Surah %d. Common Surahs and Juz Amma are ready.",
	EndOfSurah:   "End of Surah",
	AppLanguage:  "App Language",
	Appearance:   "Appearance",
	Storage:      "SQLite Storage",
	TotalAyahs:   "Total Ayahs",
	TotalSurahs:  "Total Surahs",
	Exported:     "Saved %s",
	Error:        "Error",
}

var russian = Strings{
	Title:        "Коран Керем",
	FullyOffline: "Полностью офлайн",
	TabQuran:     "Коран",
	TabSearch:    "Поиск",
	TabSettings:  "Настройки",
	SearchSurah:  "Поиск суры...",
	SearchVerses: "Поиск аятов...",
	Searching:    "Поиск...",
	NoResults:    "Ничего не найдено",
	FoundResults: "Найдено: %d",
	LastRead:     "Последнее чтение",
	Ayah:         "Аят",
	Verses:       "аятов",
	LoadingSurah: "Загрузка суры...",
	NotIndexed:   "Текст суры %d ещё индексируется. Частые суры и Джуз Амма уже готовы.",
	EndOfSurah:   "Конец суры",
	AppLanguage:  "Язык приложения",
	Appearance:   "Тема оформления",
	Storage:      "SQLite Хранилище",
	TotalAyahs:   "Всего аятов",
	TotalSurahs:  "Всего сур",
	Exported:     "Сохранено: %s",
	Error:        "Ошибка",
}

// For returns the UI strings of lang. Arabic uses the English strings.
func For(lang data.Language) Strings {
	if lang == data.Russian {
		return russian
	}
	return english
}

// LanguageLabel is the name of a language in that language.
func LanguageLabel(lang data.Language) string {
	switch lang {
	case data.Russian:
		return "Русский"
	case data.Arabic:
		return "العربية"
	default:
		return "English"
	}
}

func ThemeLabel(theme data.Theme) string {
	switch theme {
	case data.Sepia:
		return "Sepia"
	case data.Light:
		return "Light"
	default:
		return "Midnight"
	}
}
