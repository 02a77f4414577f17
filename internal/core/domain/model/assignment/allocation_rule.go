package assignment

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrAllocationRuleIsNotConstructed is returned when using an improperly initialized AllocationRule.
var ErrAllocationRuleIsNotConstructed = errors.New(
	"AllocationRule must be created via NewAllocationRule constructor")

// Strategy selects which inventory source is checked first for a subcategory.
// There are exactly two strategies and the logic is data-driven (the fallback
// flag), so this is a plain tagged value consumed by a single switch in the
// source selector, not a polymorphic hierarchy.
type Strategy int

const (
	// StrategyUnknown represents an invalid or undefined strategy.
	StrategyUnknown Strategy = iota

	// StrategyDarkStoreFirst checks the zone's dark store before vendors.
	StrategyDarkStoreFirst

	// StrategyVendorFirst checks the owning vendor before the dark store.
	// This is the default when no rule is configured.
	StrategyVendorFirst
)

// getStrategyStrings returns a map of Strategy values to their string representations.
func getStrategyStrings() map[Strategy]string {
	return map[Strategy]string{
		StrategyUnknown:        "Unknown",
		StrategyDarkStoreFirst: "DarkStoreFirst",
		StrategyVendorFirst:    "VendorFirst",
	}
}

// Validate checks if the Strategy value is valid.
func (s Strategy) Validate() error {
	if s != StrategyDarkStoreFirst && s != StrategyVendorFirst {
		return errs.NewValueIsInvalidErrorWithCause(
			"strategy is invalid", fmt.Errorf("%d is not a valid strategy", s))
	}
	return nil
}

// String returns the human-readable name of the strategy.
func (s Strategy) String() string {
	if str, ok := getStrategyStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StrategyFromString parses a strategy by its lowercase wire name as used in
// the allocation rule API.
func StrategyFromString(s string) (Strategy, error) {
	switch s {
	case "dark_store_first":
		return StrategyDarkStoreFirst, nil
	case "vendor_first":
		return StrategyVendorFirst, nil
	default:
		return StrategyUnknown, errs.NewValueIsInvalidErrorWithCause(
			"strategy", fmt.Errorf("%q is not a known allocation strategy", s))
	}
}

// AllocationRule configures the inventory source selection for a subcategory
// within a zone: which source is checked first and whether the other source
// serves as fallback when the first cannot supply the full quantity.
type AllocationRule struct {
	zoneID        kernel.UUID
	subcategoryID kernel.UUID
	strategy      Strategy
	fallback      bool

	isConstructed bool
}

// NewAllocationRule creates an allocation rule for a (zone, subcategory) pair.
func NewAllocationRule(
	zoneID kernel.UUID,
	subcategoryID kernel.UUID,
	strategy Strategy,
	fallback bool,
) (*AllocationRule, error) {
	if err := errors.Join(
		zoneID.Validate(),
		subcategoryID.Validate(),
		strategy.Validate(),
	); err != nil {
		return nil, err
	}

	return &AllocationRule{
		zoneID:        zoneID,
		subcategoryID: subcategoryID,
		strategy:      strategy,
		fallback:      fallback,
		isConstructed: true,
	}, nil
}

// DefaultAllocationRule returns the rule applied when none is configured for
// a (zone, subcategory) pair: vendor first, with dark-store fallback enabled.
func DefaultAllocationRule(zoneID kernel.UUID, subcategoryID kernel.UUID) *AllocationRule {
	return &AllocationRule{
		zoneID:        zoneID,
		subcategoryID: subcategoryID,
		strategy:      StrategyVendorFirst,
		fallback:      true,
		isConstructed: true,
	}
}

// Validate ensures the AllocationRule instance was properly constructed.
func (r *AllocationRule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrAllocationRuleIsNotConstructed
	}
	return nil
}

// ZoneID returns the zone the rule applies in.
func (r *AllocationRule) ZoneID() kernel.UUID {
	return r.zoneID
}

// SubcategoryID returns the subcategory the rule governs.
func (r *AllocationRule) SubcategoryID() kernel.UUID {
	return r.subcategoryID
}

// Strategy returns which source is checked first.
func (r *AllocationRule) Strategy() Strategy {
	return r.strategy
}

// HasFallback reports whether the other source is tried when the first
// cannot supply the full quantity.
func (r *AllocationRule) HasFallback() bool {
	return r.fallback
}
