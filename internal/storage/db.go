// ABOUTME: SQLite-backed record store: connection lifecycle and migrations.
// ABOUTME: Uses modernc.org/sqlite (pure Go) with golang-migrate embedded schema.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/fittrack/fittrack/db/migrations"

	_ "modernc.org/sqlite"
)

// Store is the only reader/writer of the persisted tables. Construct exactly
// one per process at startup and pass it by reference to consumers.
//
// Mutating operations are serialized by a single mutex: every multi-step
// write (cascade delete, bulk import, session transition) runs its full
// read-modify-write sequence before another writer can observe intermediate
// state.
type Store struct {
	db     *sql.DB
	dbPath string

	mu    sync.Mutex
	watch notifier
}

// Open opens or creates the store at the given path. Pass ":memory:" for an
// ephemeral store (used by tests).
func Open(dbPath string) (*Store, error) {
	memory := dbPath == ":memory:"

	if !memory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	dsn := dbPath
	if memory {
		dsn = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps the shared-cache memory DB alive and matches
	// the single-writer model.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DeleteDatabase destroys the database entirely. The store is unusable
// afterwards and must be reopened to reinitialize.
func (s *Store) DeleteDatabase() error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	if s.dbPath == ":memory:" {
		return nil
	}
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(s.dbPath + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete database: %w", err)
		}
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("initialise migrate driver: %w", err)
	}

	source, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("initialise migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
