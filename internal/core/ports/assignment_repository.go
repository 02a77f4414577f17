package ports

import (
	"context"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for vendor-category
// assignments. Replacement is a two-row write (deactivate the predecessor,
// add the successor) executed inside one UnitOfWork transaction.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment, including deactivation.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// GetActivePrimary retrieves the active primary assignment for the
	// (zone, category) pair. Returns an errs.ObjectNotFoundError when the
	// pair is unassigned.
	GetActivePrimary(ctx context.Context, zoneID kernel.UUID, categoryID kernel.UUID) (*assignment.Assignment, error)

	// GetAllActive retrieves every active assignment, for snapshot rebuilds.
	GetAllActive(ctx context.Context) ([]*assignment.Assignment, error)
}

// AllocationRuleRepository defines the persistence contract for per-zone
// allocation rules. Pairs without a stored rule fall back to the documented
// default at lookup time; absence is not an error.
type AllocationRuleRepository interface {
	// Upsert stores the rule for its (zone, subcategory) pair, replacing any
	// previous rule for the pair.
	Upsert(ctx context.Context, rule *assignment.AllocationRule) error

	// GetAll retrieves every stored rule, for snapshot rebuilds.
	GetAll(ctx context.Context) ([]*assignment.AllocationRule, error)
}
