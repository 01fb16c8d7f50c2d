package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb/v2"
	_ "modernc.org/sqlite"
)

// ErrStoreUnavailable is returned by Open when the storage engine cannot be
// opened or reached.
var ErrStoreUnavailable = errors.New("store unavailable")

const MemoryPath = ":memory:"

type Config struct {
	Driver string // "sqlite" (default) or "duckdb"
	Path   string // file path or ":memory:"
}

// Row is a loosely typed result row keyed by column name.
type Row map[string]any

type RunResult struct {
	RowsAffected int64
	LastInsertID int64
}

// Store is the embedded relational store holding surahs and ayahs.
type Store struct {
	db      *sqlx.DB
	dialect dialect
	logger  *log.Logger
}

// Open connects to the configured engine. The schema is not created here,
// call Initialize.
func Open(cfg Config, logger *log.Logger) (*Store, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if cfg.Path == "" {
		cfg.Path = MemoryPath
	}

	inMemory := cfg.Path == MemoryPath
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("%w: create database directory: %v", ErrStoreUnavailable, err)
		}
	}

	db, err := sqlx.Open(d.driverName, d.dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStoreUnavailable, err)
	}

	// Every connection to ":memory:" is its own database.
	if inMemory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ErrStoreUnavailable, err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("database opened", "driver", d.driverName, "path", cfg.Path)

	return &Store{db: db, dialect: d, logger: logger}, nil
}

// Initialize creates the tables and indexes if they are missing.
func (s *Store) Initialize(ctx context.Context) error {
	for _, stmt := range s.dialect.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Driver() string {
	return s.dialect.driverName
}

func (s *Store) Execute(ctx context.Context, stmt string) error {
	return execute(ctx, s.db, s.logger, stmt)
}

func (s *Store) Run(ctx context.Context, stmt string, args ...any) (RunResult, error) {
	return run(ctx, s.db, stmt, args...)
}

// QueryAll returns every row produced by stmt.
func (s *Store) QueryAll(ctx context.Context, stmt string, args ...any) ([]Row, error) {
	return queryAll(ctx, s.db, stmt, args...)
}

// QueryOne returns the first row produced by stmt, or nil if there is none.
func (s *Store) QueryOne(ctx context.Context, stmt string, args ...any) (Row, error) {
	return queryOne(ctx, s.db, stmt, args...)
}

// Select scans every row produced by stmt into dest, a pointer to a slice
// of structs with db tags.
func (s *Store) Select(ctx context.Context, dest any, stmt string, args ...any) error {
	return sqlx.SelectContext(ctx, s.db, dest, stmt, args...)
}

// InTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx, dialect: s.dialect, logger: s.logger}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Tx is the Store surface bound to an open transaction.
type Tx struct {
	tx      *sqlx.Tx
	dialect dialect
	logger  *log.Logger
}

func (t *Tx) Execute(ctx context.Context, stmt string) error {
	return execute(ctx, t.tx, t.logger, stmt)
}

func (t *Tx) Run(ctx context.Context, stmt string, args ...any) (RunResult, error) {
	return run(ctx, t.tx, stmt, args...)
}

func (t *Tx) QueryAll(ctx context.Context, stmt string, args ...any) ([]Row, error) {
	return queryAll(ctx, t.tx, stmt, args...)
}

func (t *Tx) QueryOne(ctx context.Context, stmt string, args ...any) (Row, error) {
	return queryOne(ctx, t.tx, stmt, args...)
}

func (t *Tx) Select(ctx context.Context, dest any, stmt string, args ...any) error {
	return sqlx.SelectContext(ctx, t.tx, dest, stmt, args...)
}

func execute(ctx context.Context, ex sqlx.ExecerContext, logger *log.Logger, stmt string) error {
	logger.Debug("exec", "sql", stmt)
	_, err := ex.ExecContext(ctx, stmt)
	return err
}

func run(ctx context.Context, ex sqlx.ExecerContext, stmt string, args ...any) (RunResult, error) {
	res, err := ex.ExecContext(ctx, stmt, args...)
	if err != nil {
		return RunResult{}, err
	}
	var out RunResult
	out.RowsAffected, _ = res.RowsAffected()
	// duckdb does not report insert ids.
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	return out, nil
}

func queryAll(ctx context.Context, q sqlx.QueryerContext, stmt string, args ...any) ([]Row, error) {
	rows, err := q.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, normalizeRow(row))
	}
	return out, rows.Err()
}

func queryOne(ctx context.Context, q sqlx.QueryerContext, stmt string, args ...any) (Row, error) {
	row := make(map[string]any)
	err := q.QueryRowxContext(ctx, stmt, args...).MapScan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalizeRow(row), nil
}

// normalizeRow turns driver byte slices into strings so callers see text.
func normalizeRow(row map[string]any) Row {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return Row(row)
}

// Int reads an integer column regardless of the driver's integer width.
func (r Row) Int(col string) int {
	switch v := r[col].(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int:
		return v
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (r Row) String(col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}
