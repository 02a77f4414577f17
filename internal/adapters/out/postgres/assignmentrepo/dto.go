// Package assignmentrepo persists vendor-category assignments and allocation
// rules. Assignment replacement is a two-row write executed inside the
// surrounding unit of work transaction.
package assignmentrepo

import (
	"time"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for vendor-category
// assignments. A partial unique index enforces "one active primary per pair"
// at the database level, so two concurrent assigns for a free pair cannot
// both commit; deactivated history rows share the pair without tripping it.
type AssignmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_active_primary_assignment,where:active AND is_primary"`
	CategoryID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_active_primary_assignment"`
	VendorID   uuid.UUID `gorm:"type:uuid;index"`
	Primary    bool      `gorm:"column:is_primary"`
	Active     bool
	AssignedAt time.Time
}

// TableName specifies the database table name for assignments.
func (AssignmentDTO) TableName() string {
	return "vendor_category_assignments"
}

// AllocationRuleDTO represents the database structure for allocation rules.
// One row per (zone, subcategory) pair; upserts replace in place.
type AllocationRuleDTO struct {
	ZoneID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Strategy      int
	Fallback      bool
}

// TableName specifies the database table name for allocation rules.
func (AllocationRuleDTO) TableName() string {
	return "allocation_rules"
}

func assignmentFromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         aggregate.ID().Bytes(),
		ZoneID:     aggregate.ZoneID().Bytes(),
		CategoryID: aggregate.CategoryID().Bytes(),
		VendorID:   aggregate.VendorID().Bytes(),
		Primary:    aggregate.IsPrimary(),
		Active:     aggregate.IsActive(),
		AssignedAt: aggregate.AssignedAt(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, zoneID, categoryID, vendorID, dto.Primary, dto.Active, dto.AssignedAt)
}

func ruleFromDomain(rule *assignment.AllocationRule) AllocationRuleDTO {
	return AllocationRuleDTO{
		ZoneID:        rule.ZoneID().Bytes(),
		SubcategoryID: rule.SubcategoryID().Bytes(),
		Strategy:      int(rule.Strategy()),
		Fallback:      rule.HasFallback(),
	}
}

func ruleToDomain(dto AllocationRuleDTO) (*assignment.AllocationRule, error) {
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}
	subcategoryID, err := kernel.UUIDFromBytes(dto.SubcategoryID[:])
	if err != nil {
		return nil, err
	}

	return assignment.NewAllocationRule(
		zoneID, subcategoryID, assignment.Strategy(dto.Strategy), dto.Fallback)
}
