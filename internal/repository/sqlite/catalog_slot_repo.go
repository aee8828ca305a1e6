// Package sqlite keeps catalog records in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"photocatalog/internal/domain"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog_slots (
	name TEXT PRIMARY KEY,
	record BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// Open opens the database file at path and prepares the schema.
// PRE: path is a file path or ":memory:"
// POST: catalog_slots exists, WAL mode enabled for file databases
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// One writer keeps ":memory:" databases on a single connection too.
	db.SetMaxOpenConns(1)
	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDB creates the catalog_slots table.
func InitDB(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SlotStore is a domain.SlotStore backed by the catalog_slots table.
type SlotStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSlotStore returns a SlotStore using db, which must already carry the schema.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db, now: time.Now}
}

func (s *SlotStore) ReadSlot(ctx context.Context, name string) ([]byte, error) {
	var record []byte
	err := s.db.QueryRowContext(ctx, `SELECT record FROM catalog_slots WHERE name = ?`, name).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", name, err)
	}
	return record, nil
}

// WriteSlot replaces the slot content with one upsert statement; SQLite runs
// it in an implicit transaction.
func (s *SlotStore) WriteSlot(ctx context.Context, name string, record []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO catalog_slots (name, record, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		name, record, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write slot %q: %w", name, err)
	}
	return nil
}
