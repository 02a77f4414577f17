// Package assignment contains the vendor-category ownership model: which
// vendor exclusively owns a category within a zone, and the allocation rules
// deciding whether dark-store or vendor inventory is checked first for a
// subcategory.
//
// The hard invariant lives here: at most one active primary assignment per
// (zone, category) pair at any observation time. Writes enforce it
// transactionally; reads always see a complete generation through the
// snapshot, never an intermediate state with zero or two active primaries.
package assignment
