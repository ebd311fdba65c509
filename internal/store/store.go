package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Store is the audit log of generated documents.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// The file is mirrored as a whole, so no WAL side files.
	pragmas := []string{
		"PRAGMA journal_mode=DELETE",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

// Path returns the database file, or ":memory:".
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS submissions (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at        TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		datum             TEXT NOT NULL DEFAULT '',
		bau               TEXT NOT NULL DEFAULT '',
		basf_beauftragter TEXT NOT NULL DEFAULT '',
		geraet            TEXT NOT NULL DEFAULT '',
		beschreibung      TEXT NOT NULL DEFAULT '',
		total_hours       REAL NOT NULL DEFAULT 0,
		excel_filename    TEXT NOT NULL DEFAULT '',
		drive_file_id     TEXT NOT NULL DEFAULT '',
		payload_json      TEXT NOT NULL DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS submission_workers (
		submission_id INTEGER NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
		slot          INTEGER NOT NULL,
		vorname       TEXT NOT NULL DEFAULT '',
		nachname      TEXT NOT NULL DEFAULT '',
		ausweis       TEXT NOT NULL DEFAULT '',
		beginn        TEXT NOT NULL DEFAULT '',
		ende          TEXT NOT NULL DEFAULT '',
		vorhaltung    TEXT NOT NULL DEFAULT '',
		hours         REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (submission_id, slot)
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
	`
	_, err := s.db.Exec(ddl)
	return err
}
