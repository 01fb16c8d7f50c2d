package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kerbaras/quran/pkg/data"
	"github.com/spf13/viper"
)

// Keys understood by Load. Environment variables use the QURAN_ prefix with
// dots replaced by underscores, e.g. QURAN_DB_DRIVER.
const (
	KeyConfigFile = "config"
	KeyDataDir    = "data_dir"
	KeyDBDriver   = "db.driver"
	KeyDBPath     = "db.path"
	KeyCatalogDir = "catalog.dir"
	KeyLogLevel   = "log.level"
	KeyExportDir  = "export.dir"

	EnvPrefix       = "QURAN"
	ConfigFileName  = "config.yaml"
	PreferencesFile = "preferences.json"
)

type (
	Config struct {
		DataDir    string
		Database   data.Config
		CatalogDir string // empty means the bundled catalog
		LogLevel   string
		ExportDir  string
	}
)

// LogDir is where the daily log files go.
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

func (c *Config) PreferencesPath() string {
	return filepath.Join(c.DataDir, PreferencesFile)
}

// DefaultDataDir is ~/.quran, or ./.quran when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quran"
	}
	return filepath.Join(home, ".quran")
}

// New returns a viper instance with the defaults and environment binding
// applied. Flags are bound onto it by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfigFile, "")
	v.SetDefault(KeyDataDir, DefaultDataDir())
	v.SetDefault(KeyDBDriver, data.DriverSQLite)
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyCatalogDir, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyExportDir, ".")
	return v
}

// LoadEnvFiles loads .env style files into the process environment. Missing
// files are skipped and variables already set are left alone.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves the configuration from defaults, the config file, the
// environment and any flags bound on v, in increasing priority.
func Load(v *viper.Viper) (*Config, error) {
	if err := LoadEnvFiles(".env"); err != nil {
		return nil, err
	}

	file := v.GetString(KeyConfigFile)
	if file == "" {
		candidate := filepath.Join(v.GetString(KeyDataDir), ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			file = candidate
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		DataDir: v.GetString(KeyDataDir),
		Database: data.Config{
			Driver: strings.ToLower(v.GetString(KeyDBDriver)),
			Path:   v.GetString(KeyDBPath),
		},
		CatalogDir: v.GetString(KeyCatalogDir),
		LogLevel:   v.GetString(KeyLogLevel),
		ExportDir:  v.GetString(KeyExportDir),
	}

	switch cfg.Database.Driver {
	case data.DriverSQLite, data.DriverDuckDB:
	default:
		return nil, fmt.Errorf("%s: unsupported driver %q", KeyDBDriver, cfg.Database.Driver)
	}

	if cfg.Database.Path == "" {
		name := "quran.db"
		if cfg.Database.Driver == data.DriverDuckDB {
			name = "quran.duckdb"
		}
		cfg.Database.Path = filepath.Join(cfg.DataDir, name)
	}
	return cfg, nil
}
