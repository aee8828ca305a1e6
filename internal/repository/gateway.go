// Package repository persists the catalog as one record in a named slot of a
// domain.SlotStore. The backend packages under it provide the slot stores.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"photocatalog/internal/domain"
	"photocatalog/internal/repository/snapshot"
)

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "albums"

type catalogGateway struct {
	store  domain.SlotStore
	slot   string
	logger *slog.Logger
}

// NewCatalogGateway returns a domain.CatalogGateway that keeps the catalog in
// the given slot of store.
func NewCatalogGateway(store domain.SlotStore, slot string, logger *slog.Logger) domain.CatalogGateway {
	if strings.TrimSpace(slot) == "" {
		slot = DefaultSlot
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogGateway{store: store, slot: slot, logger: logger}
}

func (g *catalogGateway) Save(ctx context.Context, catalog *domain.Catalog) error {
	data, err := snapshot.Encode(catalog)
	if err != nil {
		return fmt.Errorf("%w: encode catalog: %v", domain.ErrIO, err)
	}
	if err := g.store.WriteSlot(ctx, g.slot, data); err != nil {
		return fmt.Errorf("%w: write slot %q: %v", domain.ErrIO, g.slot, err)
	}
	g.logger.DebugContext(ctx, "catalog saved", "slot", g.slot, "albums", catalog.Len(), "bytes", len(data))
	return nil
}

func (g *catalogGateway) Load(ctx context.Context) *domain.Catalog {
	data, err := g.store.ReadSlot(ctx, g.slot)
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			g.logger.InfoContext(ctx, "no saved catalog, starting empty", "slot", g.slot)
		} else {
			g.logger.WarnContext(ctx, "catalog slot unreadable, starting empty", "slot", g.slot, "err", err)
		}
		return domain.NewCatalog()
	}
	catalog, err := snapshot.Decode(data)
	if err != nil {
		g.logger.WarnContext(ctx, "catalog record corrupt, starting empty", "slot", g.slot, "err", err)
		return domain.NewCatalog()
	}
	return catalog
}
