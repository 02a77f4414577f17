package quote

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrSubOrderIsNotConstructed is returned when using an improperly initialized SubOrder.
	ErrSubOrderIsNotConstructed = errors.New("SubOrder must be created via NewSubOrder constructor")
	// ErrSubOrderHasNoLines is returned when attempting to create a sub-order without lines.
	ErrSubOrderHasNoLines = errs.NewValueIsRequiredError("lines")
)

// Line is a priced line within a sub-order: the product, the full reserved
// quantity, and the unit price at the fulfilling source.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
}

// Total returns the line total (unit price times quantity).
func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// SubOrder is the portion of a customer order fulfilled by a single source.
// It carries its own subtotal, delivery fee, and ETA; the owning OrderQuote
// aggregates them. A SubOrder binds to exactly one source and never mixes
// dark-store and vendor lines.
type SubOrder struct {
	sourceID    kernel.UUID
	sourceKind  inventory.SourceKind
	lines       []Line
	subtotal    float64
	deliveryFee float64
	etaMinutes  int

	isConstructed bool
}

// NewSubOrder creates a sub-order for the given source with its priced lines.
// The subtotal is computed here from the lines; fee and ETA are supplied by
// the router, which owns the fee policy (including weather overrides).
func NewSubOrder(
	sourceID kernel.UUID,
	sourceKind inventory.SourceKind,
	lines []Line,
	deliveryFee float64,
	etaMinutes int,
) (*SubOrder, error) {
	if err := sourceID.Validate(); err != nil {
		return nil, err
	}
	if sourceKind != inventory.SourceKindDarkStore && sourceKind != inventory.SourceKindVendor {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"sourceKind", fmt.Errorf("%d is not a valid source kind", sourceKind))
	}
	if len(lines) == 0 {
		return nil, ErrSubOrderHasNoLines
	}
	if deliveryFee < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee", fmt.Errorf("%f is negative", deliveryFee))
	}
	if etaMinutes <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"etaMinutes", fmt.Errorf("%d is not greater than 0", etaMinutes))
	}

	subOrder := &SubOrder{
		sourceID:      sourceID,
		sourceKind:    sourceKind,
		lines:         make([]Line, len(lines)),
		deliveryFee:   deliveryFee,
		etaMinutes:    etaMinutes,
		isConstructed: true,
	}
	copy(subOrder.lines, lines)

	for _, line := range lines {
		subOrder.subtotal += line.Total()
	}

	return subOrder, nil
}

// Validate ensures the SubOrder instance was properly constructed.
func (s *SubOrder) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubOrderIsNotConstructed
	}
	return nil
}

// SourceID returns the fulfilling source.
func (s *SubOrder) SourceID() kernel.UUID {
	return s.sourceID
}

// SourceKind returns whether the source is the dark store or a vendor.
func (s *SubOrder) SourceKind() inventory.SourceKind {
	return s.sourceKind
}

// IsDarkStore reports whether the sub-order is fulfilled by the dark store.
func (s *SubOrder) IsDarkStore() bool {
	return s.sourceKind == inventory.SourceKindDarkStore
}

// Lines returns a copy of the priced lines.
func (s *SubOrder) Lines() []Line {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Subtotal returns the sum of the line totals.
func (s *SubOrder) Subtotal() float64 {
	return s.subtotal
}

// DeliveryFee returns the fee charged for this sub-order.
func (s *SubOrder) DeliveryFee() float64 {
	return s.deliveryFee
}

// ETAMinutes returns the delivery estimate for this sub-order.
func (s *SubOrder) ETAMinutes() int {
	return s.etaMinutes
}
