package services

import (
	"errors"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/kernel"
)

// ErrCategoryUnassigned is returned when neither the category nor any of its
// ancestors has a vendor assigned in the zone. Whether this fails the order
// line depends on the zone's allocation rule: the dark store may still serve it.
var ErrCategoryUnassigned = errors.New("no vendor assigned for category")

// VendorCategoryRegistry is a domain service answering "which vendor owns this
// category in this zone". Exact pairs are checked first; when the category has
// no direct assignment the lookup walks up the category tree and the nearest
// assigned ancestor wins, so a vendor owning "Dairy" serves "Cheese" unless
// something more specific is configured.
type VendorCategoryRegistry struct{}

// NewVendorCategoryRegistry creates a new VendorCategoryRegistry.
func NewVendorCategoryRegistry() VendorCategoryRegistry {
	return VendorCategoryRegistry{}
}

// Lookup returns the vendor owning the (zone, category) pair, falling back
// through the category's ancestors.
//
// Parameters:
//   - assignments: The assignment snapshot to look in
//   - tree: The validated category tree used for the ancestor walk
//   - zoneID: The zone scope
//   - categoryID: The (leaf) category to start from
//
// Returns:
//   - kernel.UUID: The owning vendor
//   - error: ErrCategoryUnassigned when no level of the chain is assigned
func (g VendorCategoryRegistry) Lookup(
	assignments *assignment.Snapshot,
	tree *catalog.Tree,
	zoneID kernel.UUID,
	categoryID kernel.UUID,
) (kernel.UUID, error) {
	for _, id := range tree.Ancestry(categoryID) {
		if vendorID, ok := assignments.Vendor(zoneID, id); ok {
			return vendorID, nil
		}
	}
	return kernel.UUID{}, ErrCategoryUnassigned
}
