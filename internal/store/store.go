package store

import (
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store persists all campusd state: admission submissions, rate-limit
// windows, portal users, the staff directory, content sections, and admin
// accounts. It runs on SQLite for development and tests and on Postgres in
// production; all queries are written with ? placeholders and passed through
// sqlx.Rebind so both drivers accept them.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Options selects the backing database.
type Options struct {
	// Driver is "sqlite" or "postgres". Empty defaults to sqlite.
	Driver string
	// DSN is the Postgres connection string. Ignored for sqlite.
	DSN string
	// DataDir is where the sqlite file lives. Empty means in-memory.
	DataDir string
}

// Open connects to the configured database and applies migrations.
func Open(opts Options) (*Store, error) {
	driver := opts.Driver
	if driver == "" {
		driver = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch driver {
	case "sqlite":
		dsn := ":memory:?_journal_mode=WAL"
		if opts.DataDir != "" {
			if err := os.MkdirAll(opts.DataDir, 0755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
			dsn = filepath.Join(opts.DataDir, "campusd.db") + "?_journal_mode=WAL&_busy_timeout=5000"
		}
		db, err = sqlx.Connect("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes
	case "postgres":
		db, err = sqlx.Connect("pgx", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection, for readiness probes.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// rebind converts ? placeholders to the driver's native style.
func (s *Store) rebind(query string) string {
	return s.db.Rebind(query)
}
