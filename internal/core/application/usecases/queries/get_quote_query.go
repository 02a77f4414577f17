package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
)

var (
	ErrGetQuoteQueryIsNotConstructed = errors.New(
		"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
	)
)

// GetQuoteQuery retrieves a quote document by its identifier: the per-source
// sub-orders with their priced lines, the unresolved items, and the totals.
type GetQuoteQuery struct {
	quoteID kernel.UUID

	isConstructed bool
}

// NewGetQuoteQuery creates a query for the given quote identifier.
func NewGetQuoteQuery(quoteID kernel.UUID) (GetQuoteQuery, error) {
	if err := quoteID.Validate(); err != nil {
		return GetQuoteQuery{}, err
	}

	return GetQuoteQuery{
		quoteID:       quoteID,
		isConstructed: true,
	}, nil
}

// QuoteID returns the identifier of the quote to retrieve.
func (q GetQuoteQuery) QuoteID() kernel.UUID {
	return q.quoteID
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetQuoteQueryIsNotConstructed
	}
	return nil
}

// GetQuoteQueryResponse is the full quote document.
type GetQuoteQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	ZoneID     kernel.UUID
	Status     string
	GrandTotal float64
	ETAMinutes int
	CreatedAt  time.Time

	SubOrders            []QuoteSubOrderResponse
	UnresolvedProductIDs []kernel.UUID
}

// IsPartial reports whether the quote left any requested item unresolved.
func (r GetQuoteQueryResponse) IsPartial() bool {
	return len(r.UnresolvedProductIDs) > 0
}

// QuoteSubOrderResponse is one per-source sub-order within a quote.
type QuoteSubOrderResponse struct {
	SourceID    kernel.UUID
	SourceKind  string
	Subtotal    float64
	DeliveryFee float64
	ETAMinutes  int
	Lines       []QuoteLineResponse
}

// QuoteLineResponse is one priced line within a sub-order.
type QuoteLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
}
