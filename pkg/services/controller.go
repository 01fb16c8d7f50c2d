package services

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/quran/pkg/catalog"
	"github.com/kerbaras/quran/pkg/config"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/kerbaras/quran/pkg/integrations"
	"github.com/kerbaras/quran/pkg/kv"
)

// QuranController wires the store, catalog and services for one process.
type QuranController struct {
	Config      *config.Config
	Catalog     *catalog.Catalog
	Store       *data.Store
	Reader      *Reader
	Seeder      *Seeder
	Preferences *Preferences
}

// NewQuranController opens everything described by cfg. The store is not
// initialized or seeded, call Bootstrap.
func NewQuranController(cfg *config.Config, logger *log.Logger) (*QuranController, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogDir != "" {
		cat, err = catalog.LoadDir(cfg.CatalogDir)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	store, err := data.Open(cfg.Database, logger.WithPrefix("store"))
	if err != nil {
		return nil, err
	}

	prefs := NewPreferences(kv.NewFileStore(cfg.PreferencesPath()), logger.WithPrefix("prefs"))
	prefs.Load()

	return &QuranController{
		Config:      cfg,
		Catalog:     cat,
		Store:       store,
		Reader:      NewReader(store),
		Seeder:      NewSeeder(store, cat, logger.WithPrefix("seed")),
		Preferences: prefs,
	}, nil
}

// Bootstrap initializes the schema and seeds the store if needed.
func (c *QuranController) Bootstrap(ctx context.Context, force bool) (SeedResult, error) {
	return Bootstrap(ctx, c.Store, c.Seeder, force)
}

// Surah looks a surah up in the catalog.
func (c *QuranController) Surah(number int) (data.Surah, error) {
	s, ok := c.Catalog.Surah(number)
	if !ok {
		return data.Surah{}, fmt.Errorf("%w: %d", ErrInvalidSurah, number)
	}
	return s, nil
}

// Export compiles the surahs into an EPub in the export directory and returns
// its path. An empty title is derived from the surahs.
func (c *QuranController) Export(ctx context.Context, numbers []int, lang data.Language, title string) (string, error) {
	var surahs []integrations.SurahExport
	for _, n := range numbers {
		s, err := c.Surah(n)
		if err != nil {
			return "", err
		}
		verses, err := c.Reader.VersesBySurah(ctx, n, lang)
		if err != nil {
			return "", fmt.Errorf("export surah %d: %w", n, err)
		}
		surahs = append(surahs, integrations.SurahExport{Surah: s, Verses: verses})
	}
	return c.exporter(lang).CreateEPub(title, surahs)
}

func (c *QuranController) exporter(lang data.Language) integrations.Exporter {
	return integrations.NewEPubBuilder(c.Config.ExportDir, lang)
}

func (c *QuranController) Close() error {
	c.Seeder.Close()
	return c.Store.Close()
}
