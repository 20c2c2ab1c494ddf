// Package store implements the embedded SQLite persistence layer for the
// Deckhand logbook: eight entity tables, per-entity handler operations,
// and the bulk export/import routine.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/skryking/deckhand/pkg/types"
)

// Store owns the single database handle for the process lifetime.
// All entity operations go through it; after Close they return
// types.ErrStoreClosed.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// Open opens (or creates) the database file at path, applies the
// durability pragmas, ensures all tables exist, and performs additive
// column repair for databases created by older releases.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single-writer desktop workload; the WAL keeps readers unblocked.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the absolute path of the live database file.
func (s *Store) Path() string {
	return s.path
}

// Close flushes and releases the database handle. Idempotent: closing an
// already-closed store succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.db = nil
	return nil
}

// ensureSchema creates missing tables and adds columns that older
// databases lack.
func ensureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, repair := range columnRepairs {
		present, err := hasColumn(db, repair.table, repair.column)
		if err != nil {
			return err
		}
		if present {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", repair.table, repair.column, repair.coltype)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", repair.table, repair.column, err)
		}
	}
	return nil
}

// hasColumn reports whether the table already carries the named column.
func hasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			coltype   string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &coltype, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("scan table info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// execer covers both *sql.DB and *sql.Tx so insert helpers can serve
// the create operations and the transactional import alike.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// newID generates a UUID v7 string for entity identifiers, falling back
// to v4 if v7 generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// nowMillis returns the current time as epoch milliseconds, the unit
// every timestamp column uses.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// handle returns the live database handle, or ErrStoreClosed. The caller
// must hold s.mu (read or write).
func (s *Store) handle() (*sql.DB, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
