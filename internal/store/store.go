// Package store archives solved instances in a SQLite database using the
// pure-Go modernc.org/sqlite driver.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("store: run not found")

// Store is a SQLite-backed run archive. It is safe for concurrent use.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex // serializes writers; SQLite allows a single writer
}

// Open opens (creating if needed) the archive at dbPath.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == nil {
		if version > schemaVersion {
			return fmt.Errorf("database schema version %d is newer than supported %d", version, schemaVersion)
		}
		return nil
	}

	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at INTEGER NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		cities INTEGER NOT NULL,
		points TEXT NOT NULL,
		tour TEXT NOT NULL,
		length REAL NOT NULL,
		initial_length REAL NOT NULL,
		passes INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		converged INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
