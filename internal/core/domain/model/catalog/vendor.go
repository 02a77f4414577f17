package catalog

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrVendorIsNotConstructed is returned when using an improperly initialized Vendor.
	ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor constructor")
	// ErrVendorNameIsRequired is returned when attempting to create a vendor without a name.
	ErrVendorNameIsRequired = errs.NewValueIsRequiredError("name")
)

// VendorType classifies an inventory source.
type VendorType int

const (
	// VendorTypeUnknown represents an invalid or undefined vendor type.
	VendorTypeUnknown VendorType = iota

	// VendorTypeSpecialized is a third-party vendor carrying a single category.
	VendorTypeSpecialized

	// VendorTypeMultiCategory is a third-party vendor carrying several
	// categories, used as a consolidation fallback.
	VendorTypeMultiCategory

	// VendorTypeDarkStore is a company-owned micro-fulfillment source.
	VendorTypeDarkStore
)

// getVendorTypeStrings returns a map of VendorType values to their string representations.
func getVendorTypeStrings() map[VendorType]string {
	return map[VendorType]string{
		VendorTypeUnknown:       "Unknown",
		VendorTypeSpecialized:   "Specialized",
		VendorTypeMultiCategory: "MultiCategory",
		VendorTypeDarkStore:     "DarkStore",
	}
}

// Validate checks if the VendorType value is valid.
func (t VendorType) Validate() error {
	if t == VendorTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"vendor type is invalid", fmt.Errorf("%d is not a valid vendor type", t))
	}
	if _, ok := getVendorTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vendor type is invalid", fmt.Errorf("%d is not a valid vendor type", t))
	}
	return nil
}

// String returns the human-readable name of the vendor type.
func (t VendorType) String() string {
	if str, ok := getVendorTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Vendor is an inventory source: either a third-party partner or a
// company-owned dark store. Vendors carry a declared average preparation
// time used for ETA computation when they fulfil a sub-order.
type Vendor struct {
	id             kernel.UUID
	name           string
	vendorType     VendorType
	active         bool
	avgPrepMinutes int

	isConstructed bool
}

// NewVendor creates a new Vendor.
// Average preparation time must be positive; the order router quotes it as
// the vendor's ETA contribution.
func NewVendor(id kernel.UUID, name string, vendorType VendorType, active bool, avgPrepMinutes int) (*Vendor, error) {
	vendor := &Vendor{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		vendor.setID(id),
		vendor.setName(name),
		vendor.setType(vendorType),
		vendor.setAvgPrepMinutes(avgPrepMinutes),
	); err != nil {
		return nil, err
	}

	return vendor, nil
}

// Validate ensures the Vendor instance was properly constructed through NewVendor.
func (v *Vendor) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVendorIsNotConstructed
	}
	return nil
}

// ID returns the vendor's unique identifier.
func (v *Vendor) ID() kernel.UUID {
	return v.id
}

// Name returns the vendor's display name.
func (v *Vendor) Name() string {
	return v.name
}

// Type returns the vendor classification.
func (v *Vendor) Type() VendorType {
	return v.vendorType
}

// IsActive reports whether the vendor currently accepts orders.
func (v *Vendor) IsActive() bool {
	return v.active
}

// IsDarkStore reports whether the vendor is a company-owned dark store.
func (v *Vendor) IsDarkStore() bool {
	return v.vendorType == VendorTypeDarkStore
}

// AvgPrepMinutes returns the vendor's declared average preparation time.
func (v *Vendor) AvgPrepMinutes() int {
	return v.avgPrepMinutes
}

func (v *Vendor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vendor) setName(name string) error {
	if name == "" {
		return ErrVendorNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Vendor) setType(vendorType VendorType) error {
	if err := vendorType.Validate(); err != nil {
		return err
	}
	v.vendorType = vendorType
	return nil
}

func (v *Vendor) setAvgPrepMinutes(avgPrepMinutes int) error {
	if avgPrepMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"avgPrepMinutes", fmt.Errorf("%d is not greater than 0", avgPrepMinutes))
	}
	v.avgPrepMinutes = avgPrepMinutes
	return nil
}
