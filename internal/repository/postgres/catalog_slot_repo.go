package postgres

import (
	"context"
	"database/sql"
	"errors"

	"photocatalog/internal/domain"

	"github.com/lib/pq"
)

// undefinedTable is the SQLSTATE Postgres reports for a missing relation.
const undefinedTable = "42P01"

const createSlotsTable = `CREATE TABLE IF NOT EXISTS catalog_slots (
	name TEXT PRIMARY KEY,
	record BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SlotRepository is a domain.SlotStore backed by the catalog_slots table.
type SlotRepository struct {
	DB *sql.DB
}

// NewSlotRepository returns a SlotRepository using db.
func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{DB: db}
}

// EnsureSchema creates the catalog_slots table when it does not exist.
func (r *SlotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, createSlotsTable)
	return err
}

func (r *SlotRepository) ReadSlot(ctx context.Context, name string) ([]byte, error) {
	var record []byte
	err := r.DB.QueryRowContext(ctx, `SELECT record FROM catalog_slots WHERE name = $1`, name).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == undefinedTable {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}
	return record, nil
}

// WriteSlot replaces the slot content with a single upsert statement, which
// Postgres applies atomically.
func (r *SlotRepository) WriteSlot(ctx context.Context, name string, record []byte) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO catalog_slots (name, record, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`,
		name, record)
	return err
}
