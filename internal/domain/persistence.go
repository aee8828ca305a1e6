package domain

import "context"

// SlotStore holds opaque records in named slots. WriteSlot must replace the
// slot content atomically: a failed write leaves the previous record readable.
// ReadSlot returns ErrSlotNotFound when nothing was ever written to the slot.
type SlotStore interface {
	ReadSlot(ctx context.Context, name string) ([]byte, error)
	WriteSlot(ctx context.Context, name string, record []byte) error
}

// CatalogGateway saves and loads a whole catalog as one unit.
//
// Load never fails: a missing, unreadable or corrupt record yields an empty
// catalog. Every loaded catalog is a new object graph.
type CatalogGateway interface {
	Save(ctx context.Context, catalog *Catalog) error
	Load(ctx context.Context) *Catalog
}
