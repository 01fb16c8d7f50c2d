package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/catalog"
	"github.com/kerbaras/quran/pkg/data"
)

// Meta keys written by a completed seed.
const (
	MetaSeedVerses  = "seed.verses"
	MetaSeedCatalog = "seed.catalog"
)

const (
	StageCheck   = "checking"
	StageSurahs  = "surahs"
	StageVerses  = "verses"
	StageSkipped = "skipped"
	StageDone    = "done"
)

// SeedProgress represents the progress of a seed run
type SeedProgress struct {
	Stage string
	Surah int // surah being written during StageVerses
	Done  int
	Total int
}

type SeedResult struct {
	Skipped bool
	Surahs  int
	Verses  int
}

// SeedStatus compares what the store holds against the catalog.
type SeedStatus struct {
	Expected int // verses in the catalog
	Present  int // rows in ayahs
	Complete bool
}

// Seeder copies the catalog into the store.
type Seeder struct {
	store   *data.Store
	catalog *catalog.Catalog
	logger  *log.Logger

	progressChan chan SeedProgress
	closeOnce    sync.Once
}

func NewSeeder(store *data.Store, cat *catalog.Catalog, logger *log.Logger) *Seeder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Seeder{
		store:        store,
		catalog:      cat,
		logger:       logger,
		progressChan: make(chan SeedProgress, 100),
	}
}

// GetProgressChannel returns the channel for receiving seed progress updates
func (s *Seeder) GetProgressChannel() <-chan SeedProgress {
	return s.progressChan
}

// Status reports whether the store holds exactly the catalog's verses. The
// marker rows and the actual row count must both agree, so a store that was
// emptied or half written after a seed is not considered complete.
func (s *Seeder) Status(ctx context.Context) (SeedStatus, error) {
	repo := data.NewRepository(s.store)
	st := SeedStatus{Expected: s.catalog.VerseCount()}

	present, err := repo.CountAyahs(ctx)
	if err != nil {
		return st, fmt.Errorf("count verses: %w", err)
	}
	st.Present = present

	verses, ok, err := repo.GetMeta(ctx, MetaSeedVerses)
	if err != nil || !ok {
		return st, err
	}
	sum, _, err := repo.GetMeta(ctx, MetaSeedCatalog)
	if err != nil {
		return st, err
	}

	st.Complete = verses == strconv.Itoa(st.Expected) &&
		sum == s.catalog.Checksum() &&
		present == st.Expected
	return st, nil
}

// Seed writes every surah and verse of the catalog in one transaction. It is
// a no-op when Status reports a complete seed, unless force is set.
func (s *Seeder) Seed(ctx context.Context, force bool) (SeedResult, error) {
	s.sendProgress(SeedProgress{Stage: StageCheck})

	if !force {
		st, err := s.Status(ctx)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed status: %w", err)
		}
		if st.Complete {
			s.logger.Debug("store already seeded", "verses", st.Present)
			s.sendProgress(SeedProgress{Stage: StageSkipped, Done: st.Present, Total: st.Expected})
			return SeedResult{Skipped: true}, nil
		}
		s.logger.Info("seeding store", "expected", st.Expected, "present", st.Present)
	} else {
		s.logger.Info("reseeding store", "expected", s.catalog.VerseCount())
	}

	surahs := s.catalog.Surahs()
	var res SeedResult
	err := s.store.InTx(ctx, func(tx *data.Tx) error {
		repo := tx.Repository()
		if err := repo.ClearContent(ctx); err != nil {
			return err
		}

		for i, surah := range surahs {
			if err := repo.UpsertSurah(ctx, surah); err != nil {
				return err
			}
			s.sendProgress(SeedProgress{Stage: StageSurahs, Done: i + 1, Total: len(surahs)})
		}
		res.Surahs = len(surahs)

		for i, surah := range surahs {
			if err := ctx.Err(); err != nil {
				return err
			}
			for idx, text := range s.catalog.Arabic(surah.Number) {
				row := data.AyahRow{
					ID:          data.AyahID(surah.Number, idx+1),
					SurahNumber: surah.Number,
					AyahNumber:  idx + 1,
					TextAR:      text,
					TextRU:      s.catalog.Translation(data.Russian, surah.Number, idx),
					TextEN:      s.catalog.Translation(data.English, surah.Number, idx),
				}
				if err := repo.UpsertAyah(ctx, row); err != nil {
					return err
				}
				res.Verses++
			}
			s.sendProgress(SeedProgress{Stage: StageVerses, Surah: surah.Number, Done: i + 1, Total: len(surahs)})
		}

		orphans, err := repo.OrphanAyahs(ctx)
		if err != nil {
			return fmt.Errorf("check verse references: %w", err)
		}
		if orphans > 0 {
			return fmt.Errorf("%d verses reference a missing surah", orphans)
		}

		if err := repo.SetMeta(ctx, MetaSeedVerses, strconv.Itoa(res.Verses)); err != nil {
			return err
		}
		return repo.SetMeta(ctx, MetaSeedCatalog, s.catalog.Checksum())
	})
	if err != nil {
		s.logger.Error("seed failed", "err", err)
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}

	s.logger.Info("store seeded", "surahs", res.Surahs, "verses", res.Verses)
	s.sendProgress(SeedProgress{Stage: StageDone, Done: res.Verses, Total: res.Verses})
	return res, nil
}

// sendProgress sends a progress update (non-blocking)
func (s *Seeder) sendProgress(p SeedProgress) {
	select {
	case s.progressChan <- p:
	default:
	}
}

// Close closes the progress channel. The seeder must not be used afterwards.
func (s *Seeder) Close() {
	s.closeOnce.Do(func() { close(s.progressChan) })
}

// Bootstrap creates the schema and seeds the store. It is the one setup step
// every entry point runs before querying.
func Bootstrap(ctx context.Context, store *data.Store, seeder *Seeder, force bool) (SeedResult, error) {
	if err := store.Initialize(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("initialize store: %w", err)
	}
	return seeder.Seed(ctx, force)
}
