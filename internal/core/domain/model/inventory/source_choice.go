package inventory

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// DarkStorePrepMinutes is the fixed preparation estimate quoted for dark-store
// fulfilment. Dark stores are company-operated and pick to a known SLA, so the
// estimate is a constant rather than per-vendor data.
const DarkStorePrepMinutes = 15

// ErrSourceChoiceIsNotConstructed is returned when using an improperly initialized SourceChoice.
var ErrSourceChoiceIsNotConstructed = errs.NewValueIsRequiredError(
	"source choice must be created via NewDarkStoreChoice or NewVendorChoice constructors")

// SourceKind tags which kind of source a choice points at.
type SourceKind int

const (
	// SourceKindUnknown represents an invalid or undefined source kind.
	SourceKindUnknown SourceKind = iota

	// SourceKindDarkStore is company-owned micro-fulfillment inventory.
	SourceKindDarkStore

	// SourceKindVendor is third-party partner inventory.
	SourceKindVendor
)

// String returns the human-readable name of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceKindDarkStore:
		return "DarkStore"
	case SourceKindVendor:
		return "Vendor"
	default:
		return "Unknown"
	}
}

// SourceChoice is the selector's decision for one line item: a tagged union of
// {DarkStore, Vendor(vendorID)} carrying everything the order router needs for
// fee and ETA computation, so routing never re-reads inventory. There is no
// polymorphism here; the two variants differ only in data.
type SourceChoice struct { //nolint:recvcheck //using for validation
	kind        SourceKind
	sourceID    kernel.UUID
	unitPrice   float64
	prepMinutes int

	guard guard.ConstructorGuard
}

// NewDarkStoreChoice creates a dark-store fulfilment decision.
// The preparation estimate is always the fixed DarkStorePrepMinutes.
func NewDarkStoreChoice(darkStoreID kernel.UUID, unitPrice float64) (SourceChoice, error) {
	return newSourceChoice(SourceKindDarkStore, darkStoreID, unitPrice, DarkStorePrepMinutes)
}

// NewVendorChoice creates a vendor fulfilment decision carrying the vendor's
// declared average preparation time.
func NewVendorChoice(vendorID kernel.UUID, unitPrice float64, prepMinutes int) (SourceChoice, error) {
	return newSourceChoice(SourceKindVendor, vendorID, unitPrice, prepMinutes)
}

func newSourceChoice(
	kind SourceKind, sourceID kernel.UUID, unitPrice float64, prepMinutes int,
) (SourceChoice, error) {
	if err := sourceID.Validate(); err != nil {
		return SourceChoice{}, err
	}
	if unitPrice < 0 {
		return SourceChoice{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%f is negative", unitPrice))
	}
	if prepMinutes <= 0 {
		return SourceChoice{}, errs.NewValueIsInvalidErrorWithCause(
			"prepMinutes", fmt.Errorf("%d is not greater than 0", prepMinutes))
	}

	return SourceChoice{
		kind:        kind,
		sourceID:    sourceID,
		unitPrice:   unitPrice,
		prepMinutes: prepMinutes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the SourceChoice was properly constructed using a constructor.
func (c SourceChoice) Validate() error {
	return c.guard.Validate(ErrSourceChoiceIsNotConstructed)
}

// Kind returns whether the choice points at a dark store or a vendor.
func (c SourceChoice) Kind() SourceKind {
	return c.kind
}

// SourceID returns the chosen source's identifier.
func (c SourceChoice) SourceID() kernel.UUID {
	return c.sourceID
}

// UnitPrice returns the chosen source's selling price for the item.
func (c SourceChoice) UnitPrice() float64 {
	return c.unitPrice
}

// PrepMinutes returns the preparation estimate for the chosen source.
func (c SourceChoice) PrepMinutes() int {
	return c.prepMinutes
}

// IsDarkStore reports whether the choice points at the dark store.
func (c SourceChoice) IsDarkStore() bool {
	return c.kind == SourceKindDarkStore
}

// IsEqualSource reports whether two choices point at the same source.
func (c SourceChoice) IsEqualSource(other SourceChoice) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return c.kind == other.kind && c.sourceID.IsEqual(other.sourceID), nil
}
