package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/quran/pkg/catalog"
	"github.com/kerbaras/quran/pkg/config"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataDir:   dir,
		Database:  data.Config{Driver: data.DriverSQLite, Path: data.MemoryPath},
		LogLevel:  "info",
		ExportDir: dir,
	}
}

func TestNewQuranController(t *testing.T) {
	controller, err := NewQuranController(testConfig(t), nil)
	require.NoError(t, err)
	defer controller.Close()

	assert.NotNil(t, controller.Catalog)
	assert.NotNil(t, controller.Reader)
	assert.NotNil(t, controller.Seeder)
	assert.NotNil(t, controller.Preferences)

	s, err := controller.Surah(112)
	require.NoError(t, err)
	assert.Equal(t, "Al-Ikhlaas", s.EnglishName)

	_, err = controller.Surah(115)
	assert.ErrorIs(t, err, ErrInvalidSurah)
}

func TestQuranControllerCatalogDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.CatalogDir = t.TempDir()
	for name, f := range fixtureFS() {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.CatalogDir, name), f.Data, 0644))
	}

	controller, err := NewQuranController(cfg, nil)
	require.NoError(t, err)
	defer controller.Close()

	res, err := controller.Bootstrap(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Verses)
}

func TestQuranControllerBadCatalogDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.CatalogDir = filepath.Join(t.TempDir(), "missing")

	_, err := NewQuranController(cfg, nil)
	assert.ErrorIs(t, err, catalog.ErrInvalidAsset)
}

func TestQuranControllerStoreUnavailable(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.Database.Path = filepath.Join(blocker, "quran.db")

	_, err := NewQuranController(cfg, nil)
	assert.ErrorIs(t, err, data.ErrStoreUnavailable)
}

func TestQuranControllerExport(t *testing.T) {
	cfg := testConfig(t)
	controller, err := NewQuranController(cfg, nil)
	require.NoError(t, err)
	defer controller.Close()

	ctx := context.Background()
	_, err = controller.Bootstrap(ctx, false)
	require.NoError(t, err)

	path, err := controller.Export(ctx, []int{112, 1}, data.English, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.ExportDir, "The Noble Quran, Surahs 1-112.epub"), path)
	assert.FileExists(t, path)

	_, err = controller.Export(ctx, []int{2}, data.English, "Al-Baqara")
	assert.ErrorContains(t, err, "no verses")

	_, err = controller.Export(ctx, []int{200}, data.English, "")
	assert.ErrorIs(t, err, ErrInvalidSurah)
}
