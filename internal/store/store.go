// Package store is the CLI-side persistence facility: a small SQLite
// database holding the credential keystore and the generation history
// log. The generation core never imports this package; credentials reach
// the core only as explicit call parameters.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Store wraps the mapforge SQLite database.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open initializes the database at the given path, creating the parent
// directory and schema as needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal_mode: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
CREATE TABLE IF NOT EXISTS keystore (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS generations (
	id             TEXT PRIMARY KEY,
	created_at     INTEGER NOT NULL,
	description    TEXT NOT NULL,
	width          INTEGER NOT NULL,
	height         INTEGER NOT NULL,
	archetype      TEXT NOT NULL DEFAULT '',
	attempts       INTEGER NOT NULL,
	fallback       INTEGER NOT NULL,
	interpretation TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at DESC);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutKey stores or replaces a named secret.
func (s *Store) PutKey(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO keystore(name, value) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	if err != nil {
		return fmt.Errorf("failed to store key %s: %w", name, err)
	}
	return nil
}

// GetKey retrieves a named secret. The second return value reports
// whether the key exists.
func (s *Store) GetKey(name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var value string
	err := s.db.QueryRow(`SELECT value FROM keystore WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", name, err)
	}
	return value, true, nil
}

// DeleteKey removes a named secret. Deleting a missing key is not an
// error.
func (s *Store) DeleteKey(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM keystore WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", name, err)
	}
	return nil
}
