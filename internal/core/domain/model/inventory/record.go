package inventory

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than the record holds. Stock quantity never goes negative.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrSourceUnavailable is returned by storage adapters when a source's
	// inventory cannot be reached at all, as opposed to being reachable but
	// empty. Callers retry once before treating the source as out of stock.
	ErrSourceUnavailable = errors.New("inventory source unavailable")
)

// Record is the stock position of one product at one source within one zone.
// It is mutated on every fulfilment decision (decrement) and restock
// (increment); the storage adapter performs the decrement conditionally so the
// quantity can never go negative even under concurrent reservations.
type Record struct {
	sourceID      kernel.UUID
	productID     kernel.UUID
	zoneID        kernel.UUID
	stockQuantity int
	unitCost      float64
	unitPrice     float64
	available     bool

	isConstructed bool
}

// NewRecord creates a stock record for (source, product, zone).
// Quantity must not be negative; cost and price must not be negative.
func NewRecord(
	sourceID kernel.UUID,
	productID kernel.UUID,
	zoneID kernel.UUID,
	stockQuantity int,
	unitCost float64,
	unitPrice float64,
	available bool,
) (*Record, error) {
	record := &Record{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setSourceID(sourceID),
		record.setProductID(productID),
		record.setZoneID(zoneID),
		record.setStockQuantity(stockQuantity),
		record.setUnitCost(unitCost),
		record.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed through NewRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// SourceID returns the vendor or dark store holding the stock.
func (r *Record) SourceID() kernel.UUID {
	return r.sourceID
}

// ProductID returns the stocked product.
func (r *Record) ProductID() kernel.UUID {
	return r.productID
}

// ZoneID returns the zone the stock serves.
func (r *Record) ZoneID() kernel.UUID {
	return r.zoneID
}

// StockQuantity returns the units currently on hand.
func (r *Record) StockQuantity() int {
	return r.stockQuantity
}

// UnitCost returns the source's cost per unit.
func (r *Record) UnitCost() float64 {
	return r.unitCost
}

// UnitPrice returns the selling price per unit.
func (r *Record) UnitPrice() float64 {
	return r.unitPrice
}

// IsAvailable reports whether the record participates in selection at all.
func (r *Record) IsAvailable() bool {
	return r.available
}

// CanSupply reports whether the record can fulfil the full requested
// quantity. Partial fulfilment from a single record is never offered.
func (r *Record) CanSupply(quantity int) bool {
	return r.available && quantity > 0 && r.stockQuantity >= quantity
}

// Reserve decrements stock by the requested quantity.
// Fails with ErrInsufficientStock when the record cannot supply the full
// quantity; the stock level is left untouched in that case.
func (r *Record) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !r.CanSupply(quantity) {
		return ErrInsufficientStock
	}
	r.stockQuantity -= quantity
	return nil
}

// Restock increments stock by the given quantity. Used both for genuine
// restocks and for compensating increments when a reservation is rolled back.
func (r *Record) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.stockQuantity += quantity
	return nil
}

func (r *Record) setSourceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.sourceID = id
	return nil
}

func (r *Record) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.productID = id
	return nil
}

func (r *Record) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.zoneID = id
	return nil
}

func (r *Record) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity", fmt.Errorf("%d is negative", quantity))
	}
	r.stockQuantity = quantity
	return nil
}

func (r *Record) setUnitCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitCost", fmt.Errorf("%f is negative", cost))
	}
	r.unitCost = cost
	return nil
}

func (r *Record) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%f is negative", price))
	}
	r.unitPrice = price
	return nil
}
