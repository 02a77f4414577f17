package assignment

import (
	"grocery/internal/core/domain/model/kernel"
)

// pairKey identifies a (zone, category) or (zone, subcategory) pair.
type pairKey struct {
	zoneID     kernel.UUID
	categoryID kernel.UUID
}

// Snapshot is an immutable view of the active primary assignments and
// allocation rules, rebuilt per configuration generation. Lookups during
// routing hit this snapshot, never storage, so an in-flight replacement
// (deactivate-old, activate-new in one transaction) is invisible until the
// next generation is published whole.
type Snapshot struct {
	version       uint64
	vendorsByPair map[pairKey]kernel.UUID
	rulesByPair   map[pairKey]*AllocationRule
}

// NewSnapshot builds an assignment snapshot of the given generation.
// Only active primary assignments participate in lookups; inactive rows are
// history and ignored here.
func NewSnapshot(version uint64, assignments []*Assignment, rules []*AllocationRule) *Snapshot {
	snapshot := &Snapshot{
		version:       version,
		vendorsByPair: make(map[pairKey]kernel.UUID, len(assignments)),
		rulesByPair:   make(map[pairKey]*AllocationRule, len(rules)),
	}

	for _, a := range assignments {
		if !a.IsActive() || !a.IsPrimary() {
			continue
		}
		snapshot.vendorsByPair[pairKey{zoneID: a.ZoneID(), categoryID: a.CategoryID()}] = a.VendorID()
	}

	for _, r := range rules {
		snapshot.rulesByPair[pairKey{zoneID: r.ZoneID(), categoryID: r.SubcategoryID()}] = r
	}

	return snapshot
}

// Version returns the snapshot generation.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Vendor returns the vendor owning the exact (zone, category) pair, if any.
// Callers wanting ancestor fallback walk the category tree and probe each
// level; this method deliberately does NOT walk so the fallback policy stays
// in one place (the registry service).
func (s *Snapshot) Vendor(zoneID kernel.UUID, categoryID kernel.UUID) (kernel.UUID, bool) {
	vendorID, ok := s.vendorsByPair[pairKey{zoneID: zoneID, categoryID: categoryID}]
	return vendorID, ok
}

// Rule returns the allocation rule for the (zone, subcategory) pair.
// When none is configured the documented default applies: vendor first with
// fallback enabled.
func (s *Snapshot) Rule(zoneID kernel.UUID, subcategoryID kernel.UUID) *AllocationRule {
	if rule, ok := s.rulesByPair[pairKey{zoneID: zoneID, categoryID: subcategoryID}]; ok {
		return rule
	}
	return DefaultAllocationRule(zoneID, subcategoryID)
}
