// Package badger keeps catalog records in an embedded Badger key-value store.
package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"photocatalog/internal/domain"
)

type SlotStore struct {
	db *badger.DB
}

// Open opens (or creates) a Badger database in dir. An empty dir opens an
// in-memory database.
func Open(dir string) (*SlotStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &SlotStore{db: db}, nil
}

func (s *SlotStore) ReadSlot(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var result []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slotKey(name))
		if err != nil {
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", name, err)
	}
	return result, nil
}

// WriteSlot stores the record in a single update transaction.
func (s *SlotStore) WriteSlot(ctx context.Context, name string, record []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(slotKey(name), record)
	})
	if err != nil {
		return fmt.Errorf("write slot %q: %w", name, err)
	}
	return nil
}

func (s *SlotStore) Close() error {
	return s.db.Close()
}

func slotKey(name string) []byte {
	return []byte("slot:" + name)
}
