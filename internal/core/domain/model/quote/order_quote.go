package quote

import (
	"errors"
	"sort"
	"time"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrQuoteHasNoContent indicates a quote with neither sub-orders nor
// unresolved items, which would carry no information.
var ErrQuoteHasNoContent = errors.New("quote must contain at least one sub-order or unresolved item")

// OrderQuote is the aggregate produced by routing an order request.
//
// A quote splits the requested items into per-source sub-orders, each with its
// own delivery fee and preparation ETA. Items no source could supply are kept
// in unresolvedProductIDs; a quote that resolves only part of the request is
// marked as requiring confirmation rather than being rejected outright.
//
// Sub-orders are held in a stable presentation order: dark-store sub-orders
// first, then vendor sub-orders ascending by source ID. The order is fixed at
// construction so that repeated quoting of the same request yields an
// identical document.
type OrderQuote struct {
	guard.ConstructorGuard

	id      kernel.UUID
	orderID kernel.UUID
	zoneID  kernel.UUID

	subOrders            []*SubOrder
	unresolvedProductIDs []kernel.UUID

	grandTotal float64
	etaMinutes int

	status    Status
	createdAt time.Time
}

// NewOrderQuote creates a pending quote from routed sub-orders.
//
// Sub-orders are sorted into the canonical presentation order, the grand total
// is computed as the sum of each sub-order's subtotal plus its delivery fee,
// and the overall ETA is the maximum sub-order ETA (sources prepare in
// parallel). At least one sub-order or one unresolved item must be present.
func NewOrderQuote(
	id kernel.UUID,
	orderID kernel.UUID,
	zoneID kernel.UUID,
	subOrders []*SubOrder,
	unresolvedProductIDs []kernel.UUID,
	createdAt time.Time,
) (*OrderQuote, error) {
	err := errors.Join(
		validateQuoteID(id),
		validateQuoteOrderID(orderID),
		validateQuoteZoneID(zoneID),
		validateQuoteSubOrders(subOrders),
		validateQuoteCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	if len(subOrders) == 0 && len(unresolvedProductIDs) == 0 {
		return nil, ErrQuoteHasNoContent
	}

	sorted := make([]*SubOrder, len(subOrders))
	copy(sorted, subOrders)
	sortSubOrders(sorted)

	grandTotal := 0.0
	etaMinutes := 0
	for _, so := range sorted {
		grandTotal += so.Subtotal() + so.DeliveryFee()
		if so.ETAMinutes() > etaMinutes {
			etaMinutes = so.ETAMinutes()
		}
	}

	unresolved := make([]kernel.UUID, len(unresolvedProductIDs))
	copy(unresolved, unresolvedProductIDs)

	return &OrderQuote{
		ConstructorGuard:     guard.NewConstructorGuard(),
		id:                   id,
		orderID:              orderID,
		zoneID:               zoneID,
		subOrders:            sorted,
		unresolvedProductIDs: unresolved,
		grandTotal:           grandTotal,
		etaMinutes:           etaMinutes,
		status:               StatusPending,
		createdAt:            createdAt,
	}, nil
}

// RestoreOrderQuote reconstructs a quote from persistence without recomputing
// derived values. Totals and ordering are trusted as stored.
func RestoreOrderQuote(
	id kernel.UUID,
	orderID kernel.UUID,
	zoneID kernel.UUID,
	subOrders []*SubOrder,
	unresolvedProductIDs []kernel.UUID,
	grandTotal float64,
	etaMinutes int,
	status Status,
	createdAt time.Time,
) (*OrderQuote, error) {
	err := errors.Join(
		validateQuoteID(id),
		validateQuoteOrderID(orderID),
		validateQuoteZoneID(zoneID),
		validateQuoteSubOrders(subOrders),
		status.Validate(),
		validateQuoteCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}

	return &OrderQuote{
		ConstructorGuard:     guard.NewConstructorGuard(),
		id:                   id,
		orderID:              orderID,
		zoneID:               zoneID,
		subOrders:            subOrders,
		unresolvedProductIDs: unresolvedProductIDs,
		grandTotal:           grandTotal,
		etaMinutes:           etaMinutes,
		status:               status,
		createdAt:            createdAt,
	}, nil
}

// sortSubOrders arranges sub-orders into the canonical order: dark store
// first, then vendors ascending by source ID.
func sortSubOrders(subOrders []*SubOrder) {
	sort.SliceStable(subOrders, func(i, j int) bool {
		a, b := subOrders[i], subOrders[j]
		if a.SourceKind() != b.SourceKind() {
			return a.SourceKind() == inventory.SourceKindDarkStore
		}
		return a.SourceID().String() < b.SourceID().String()
	})
}

// ID returns the quote's unique identifier.
func (q *OrderQuote) ID() kernel.UUID {
	return q.id
}

// OrderID returns the identifier of the order request this quote answers.
func (q *OrderQuote) OrderID() kernel.UUID {
	return q.orderID
}

// ZoneID returns the zone the quote was routed in.
func (q *OrderQuote) ZoneID() kernel.UUID {
	return q.zoneID
}

// SubOrders returns the per-source sub-orders in canonical presentation order.
func (q *OrderQuote) SubOrders() []*SubOrder {
	return q.subOrders
}

// UnresolvedProductIDs returns the products no source could supply.
func (q *OrderQuote) UnresolvedProductIDs() []kernel.UUID {
	return q.unresolvedProductIDs
}

// IsPartial reports whether some requested items could not be resolved.
func (q *OrderQuote) IsPartial() bool {
	return len(q.unresolvedProductIDs) > 0
}

// RequiresConfirmation reports whether the customer must explicitly accept
// the quote before checkout. Partial quotes always require confirmation.
func (q *OrderQuote) RequiresConfirmation() bool {
	return q.IsPartial()
}

// GrandTotal returns the sum of all sub-order subtotals and delivery fees.
func (q *OrderQuote) GrandTotal() float64 {
	return q.grandTotal
}

// ETAMinutes returns the overall delivery estimate: the maximum sub-order ETA,
// since sources prepare in parallel.
func (q *OrderQuote) ETAMinutes() int {
	return q.etaMinutes
}

// Status returns the quote's lifecycle status.
func (q *OrderQuote) Status() Status {
	return q.status
}

// CreatedAt returns when the quote was produced.
func (q *OrderQuote) CreatedAt() time.Time {
	return q.createdAt
}

// Confirm marks the quote as accepted by the customer.
func (q *OrderQuote) Confirm() error {
	next, err := q.status.Confirm()
	if err != nil {
		return err
	}
	q.status = next
	return nil
}

// Release marks the quote as abandoned. The caller is responsible for
// compensating the inventory reservations the quote holds.
func (q *OrderQuote) Release() error {
	next, err := q.status.Release()
	if err != nil {
		return err
	}
	q.status = next
	return nil
}

// IsStale reports whether a pending quote is older than maxAge at the given
// instant. Confirmed and released quotes are never stale.
func (q *OrderQuote) IsStale(now time.Time, maxAge time.Duration) bool {
	return q.status == StatusPending && now.Sub(q.createdAt) > maxAge
}

func validateQuoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return nil
}

func validateQuoteOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	return nil
}

func validateQuoteZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("zoneID", err)
	}
	return nil
}

func validateQuoteSubOrders(subOrders []*SubOrder) error {
	for _, so := range subOrders {
		if so == nil {
			return errs.NewValueIsRequiredError("subOrders")
		}
		if err := so.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("subOrders", err)
		}
	}
	return nil
}

func validateQuoteCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}
