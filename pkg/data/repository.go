package data

import (
	"context"
	"fmt"
	"strings"
)

// Querier is the statement surface shared by Store and Tx.
type Querier interface {
	Execute(ctx context.Context, stmt string) error
	Run(ctx context.Context, stmt string, args ...any) (RunResult, error)
	QueryAll(ctx context.Context, stmt string, args ...any) ([]Row, error)
	QueryOne(ctx context.Context, stmt string, args ...any) (Row, error)
	Select(ctx context.Context, dest any, stmt string, args ...any) error
}

// Repository is the typed access layer over the surahs, ayahs and meta tables.
type Repository struct {
	q       Querier
	dialect dialect
}

func NewRepository(s *Store) *Repository {
	return &Repository{q: s, dialect: s.dialect}
}

// Repository returns a repository whose statements run inside the transaction.
func (t *Tx) Repository() *Repository {
	return &Repository{q: t, dialect: t.dialect}
}

func (r *Repository) UpsertSurah(ctx context.Context, s Surah) error {
	_, err := r.q.Run(ctx, `INSERT OR REPLACE INTO surahs
		(number, name, englishName, russianName, numberOfAyahs, revelationType)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Number, s.Name, s.EnglishName, s.RussianName, s.NumberOfAyahs, s.RevelationType)
	if err != nil {
		return fmt.Errorf("upsert surah %d: %w", s.Number, err)
	}
	return nil
}

// UpsertAyah writes a verse row. On sqlite an existing row with the same ID is
// replaced. On duckdb it only inserts and an existing row is kept as is, so
// callers that need new text must ClearContent first.
func (r *Repository) UpsertAyah(ctx context.Context, a AyahRow) error {
	if a.ID == "" {
		a.ID = AyahID(a.SurahNumber, a.AyahNumber)
	}
	_, err := r.q.Run(ctx, r.dialect.ayahInsert+` INTO ayahs
		(id, surah_number, ayah_number, text_ar, text_ru, text_en)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.SurahNumber, a.AyahNumber, a.TextAR, a.TextRU, a.TextEN)
	if err != nil {
		return fmt.Errorf("upsert ayah %s: %w", a.ID, err)
	}
	return nil
}

func (r *Repository) ListSurahs(ctx context.Context) ([]Surah, error) {
	surahs := []Surah{}
	err := r.q.Select(ctx, &surahs, `SELECT number, name, englishName, russianName, numberOfAyahs, revelationType
		FROM surahs ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list surahs: %w", err)
	}
	return surahs, nil
}

// AyahsBySurah returns the stored verses of a surah ordered by verse number.
func (r *Repository) AyahsBySurah(ctx context.Context, surah int) ([]AyahRow, error) {
	rows := []AyahRow{}
	err := r.q.Select(ctx, &rows, `SELECT id, surah_number, ayah_number, text_ar, text_ru, text_en
		FROM ayahs WHERE surah_number = ? ORDER BY ayah_number ASC`, surah)
	if err != nil {
		return nil, fmt.Errorf("ayahs of surah %d: %w", surah, err)
	}
	return rows, nil
}

var searchColumns = map[string]bool{"text_ar": true, "text_en": true, "text_ru": true}

// SearchAyahs returns up to limit verses whose column contains query as a
// literal substring, joined with the names of their surah.
func (r *Repository) SearchAyahs(ctx context.Context, column, query string, limit int) ([]SearchHit, error) {
	if !searchColumns[column] {
		return nil, fmt.Errorf("search: unknown column %q", column)
	}
	hits := []SearchHit{}
	stmt := `SELECT a.id, a.surah_number, a.ayah_number, a.text_ar, a.text_ru, a.text_en,
			s.englishName AS surahName, s.russianName AS surahRussianName
		FROM ayahs a
		JOIN surahs s ON s.number = a.surah_number
		WHERE a.` + column + ` LIKE ? ESCAPE '\'
		ORDER BY a.surah_number, a.ayah_number
		LIMIT ?`
	if err := r.q.Select(ctx, &hits, stmt, likePattern(query), limit); err != nil {
		return nil, fmt.Errorf("search %s: %w", column, err)
	}
	return hits, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps q for a LIKE ... ESCAPE '\' substring match.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

func (r *Repository) CountAyahs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) AS n FROM ayahs`)
}

func (r *Repository) CountSurahs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) AS n FROM surahs`)
}

// OrphanAyahs counts verse rows whose surah_number has no surahs row.
func (r *Repository) OrphanAyahs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) AS n FROM ayahs a
		LEFT JOIN surahs s ON s.number = a.surah_number
		WHERE s.number IS NULL`)
}

func (r *Repository) count(ctx context.Context, stmt string) (int, error) {
	row, err := r.q.QueryOne(ctx, stmt)
	if err != nil {
		return 0, err
	}
	return row.Int("n"), nil
}

func (r *Repository) GetMeta(ctx context.Context, key string) (string, bool, error) {
	row, err := r.q.QueryOne(ctx, `SELECT value FROM meta WHERE key = ?`, key)
	if err != nil {
		return "", false, fmt.Errorf("get meta %s: %w", key, err)
	}
	if row == nil {
		return "", false, nil
	}
	return row.String("value"), true, nil
}

func (r *Repository) SetMeta(ctx context.Context, key, value string) error {
	if _, err := r.q.Run(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}

// ClearContent removes every verse and surah row. Verses go first so the
// surah foreign key never dangles.
func (r *Repository) ClearContent(ctx context.Context) error {
	for _, stmt := range []string{`DELETE FROM ayahs`, `DELETE FROM surahs`} {
		if err := r.q.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("clear content: %w", err)
		}
	}
	return nil
}
