package ports

import (
	"context"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for stock records.
// Reserve and Release are the hot path: conditional counter updates keyed by
// (source, product, zone) that never let stock go negative.
type InventoryRepository interface {
	// Add persists a new stock record.
	Add(ctx context.Context, record *inventory.Record) error

	// Get retrieves the record for the (source, product, zone) key.
	// Returns an errs.ObjectNotFoundError when the source does not stock
	// the product in the zone.
	Get(ctx context.Context, sourceID kernel.UUID, productID kernel.UUID, zoneID kernel.UUID) (*inventory.Record, error)

	// Reserve atomically decrements the record's stock by quantity, but only
	// when the full quantity is on hand and the record is available. Returns
	// the record as it stands after the decrement.
	//
	// Errors:
	//   - inventory.ErrInsufficientStock: the record cannot supply the full
	//     quantity (or does not exist); the stock level is untouched
	//   - inventory.ErrSourceUnavailable: storage for the source could not be
	//     reached; the caller retries once before giving up on the source
	Reserve(ctx context.Context, sourceID kernel.UUID, productID kernel.UUID, zoneID kernel.UUID, quantity int) (*inventory.Record, error)

	// Release atomically increments the record's stock by quantity. Used for
	// restocks and for compensating reservations held by abandoned quotes.
	Release(ctx context.Context, sourceID kernel.UUID, productID kernel.UUID, zoneID kernel.UUID, quantity int) error
}
