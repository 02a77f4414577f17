package ports

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for order quotes.
type QuoteRepository interface {
	// Add persists a new quote with its sub-orders and unresolved items.
	Add(ctx context.Context, aggregate *quote.OrderQuote) error

	// Update persists status changes to an existing quote.
	Update(ctx context.Context, aggregate *quote.OrderQuote) error

	// Get retrieves a quote by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such quote exists.
	Get(ctx context.Context, id kernel.UUID) (*quote.OrderQuote, error)

	// GetPendingOlderThan retrieves pending quotes created before the cutoff.
	// Used by the reaper job to release reservations held by abandoned quotes.
	GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*quote.OrderQuote, error)
}
