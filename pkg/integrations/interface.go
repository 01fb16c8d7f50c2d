package integrations

import "github.com/kerbaras/quran/pkg/data"

// SurahExport is one surah and its verses in the export language.
type SurahExport struct {
	Surah  data.Surah
	Verses []data.Ayah
}

// Exporter compiles surahs into a book file and returns its path.
type Exporter interface {
	CreateEPub(title string, surahs []SurahExport) (string, error)
}
