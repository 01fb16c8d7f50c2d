package data

import "fmt"

const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

// dialect holds what differs between the supported engines.
type dialect struct {
	driverName string
	dsn        func(path string) string
	schema     []string
	// ayahInsert is the verb used to upsert verse rows. duckdb refuses to
	// replace a row whose indexed columns would be reassigned, so it keeps
	// the existing row instead; seeding clears the table first either way.
	ayahInsert string
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "", DriverSQLite:
		return sqliteDialect, nil
	case DriverDuckDB:
		return duckdbDialect, nil
	}
	return dialect{}, fmt.Errorf("unsupported driver %q", driver)
}

var sqliteDialect = dialect{
	driverName: DriverSQLite,
	dsn: func(path string) string {
		if path == MemoryPath {
			return MemoryPath + "?_pragma=foreign_keys(1)"
		}
		return path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	},
	schema: []string{
		`CREATE TABLE IF NOT EXISTS surahs (
			number INTEGER PRIMARY KEY,
			name TEXT,
			englishName TEXT,
			russianName TEXT,
			numberOfAyahs INTEGER,
			revelationType TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS ayahs (
			id TEXT PRIMARY KEY,
			surah_number INTEGER,
			ayah_number INTEGER,
			text_ar TEXT,
			text_ru TEXT,
			text_en TEXT,
			FOREIGN KEY(surah_number) REFERENCES surahs(number)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ayahs_surah ON ayahs(surah_number)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
	},
	ayahInsert: "INSERT OR REPLACE",
}

var duckdbDialect = dialect{
	driverName: DriverDuckDB,
	dsn: func(path string) string {
		if path == MemoryPath {
			return ""
		}
		return path
	},
	schema: []string{
		`CREATE TABLE IF NOT EXISTS surahs (
			number INTEGER PRIMARY KEY,
			name VARCHAR,
			englishName VARCHAR,
			russianName VARCHAR,
			numberOfAyahs INTEGER,
			revelationType VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS ayahs (
			id VARCHAR PRIMARY KEY,
			surah_number INTEGER,
			ayah_number INTEGER,
			text_ar VARCHAR,
			text_ru VARCHAR,
			text_en VARCHAR
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ayahs_surah ON ayahs(surah_number)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key VARCHAR PRIMARY KEY,
			value VARCHAR
		)`,
	},
	ayahInsert: "INSERT OR IGNORE",
}
