package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/quran/pkg/catalog"
	"github.com/kerbaras/quran/pkg/data"
)

var ErrInvalidSurah = errors.New("invalid surah number")

const MaxSearchResults = 50

// Reader answers the read queries of the presentation layer.
type Reader struct {
	repo *data.Repository
}

func NewReader(store *data.Store) *Reader {
	return &Reader{repo: data.NewRepository(store)}
}

// VersesBySurah returns the verses of a surah in order. An empty slice with a
// nil error means the surah has not been indexed.
func (r *Reader) VersesBySurah(ctx context.Context, surah int, lang data.Language) ([]data.Ayah, error) {
	if surah < 1 || surah > catalog.SurahCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSurah, surah)
	}

	rows, err := r.repo.AyahsBySurah(ctx, surah)
	if err != nil {
		return nil, err
	}

	verses := make([]data.Ayah, 0, len(rows))
	for _, row := range rows {
		verses = append(verses, data.Ayah{
			Number:        row.AyahNumber,
			NumberInSurah: row.AyahNumber,
			Text:          row.TextAR,
			Translation:   translation(row, lang),
		})
	}
	return verses, nil
}

func translation(row data.AyahRow, lang data.Language) string {
	switch lang {
	case data.Russian:
		return row.TextRU
	case data.English:
		return row.TextEN
	}
	return ""
}

// Search returns up to MaxSearchResults verses whose text in lang contains
// query literally, surrounding whitespace included. A query that is only
// whitespace matches nothing.
func (r *Reader) Search(ctx context.Context, query string, lang data.Language) ([]data.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return []data.SearchHit{}, nil
	}
	return r.repo.SearchAyahs(ctx, lang.TextColumn(), query, MaxSearchResults)
}

func (r *Reader) Stats(ctx context.Context) (data.Stats, error) {
	verses, err := r.repo.CountAyahs(ctx)
	if err != nil {
		return data.Stats{}, fmt.Errorf("count verses: %w", err)
	}
	surahs, err := r.repo.CountSurahs(ctx)
	if err != nil {
		return data.Stats{}, fmt.Errorf("count surahs: %w", err)
	}
	return data.Stats{VerseCount: verses, SurahCount: surahs}, nil
}
