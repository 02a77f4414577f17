package assignmentrepo

import (
	"context"
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add saves a new assignment to the database. Inserting a second active
// primary for a (zone, category) pair violates the partial unique index and
// returns assignment.ErrDuplicateActivePrimary; this is what stops two
// concurrent assigns for a free pair from both committing.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: zone %s, category %s",
			assignment.ErrDuplicateActivePrimary, aggregate.ZoneID(), aggregate.CategoryID())
	}
	return err
}

// Update saves an existing assignment to the database. Select("*") forces the
// active flag through even when it flips to false, which GORM would otherwise
// skip as a zero value.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetActivePrimary retrieves the active primary assignment for the
// (zone, category) pair.
func (r *GormAssignmentRepository) GetActivePrimary(
	ctx context.Context,
	zoneID kernel.UUID,
	categoryID kernel.UUID,
) (*assignment.Assignment, error) {
	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "zone_id = ? AND category_id = ? AND is_primary AND active",
			zoneID.Bytes(), categoryID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", categoryID.String())
		}
		return nil, err
	}

	return assignmentToDomain(dto)
}

// GetAllActive retrieves every active assignment, for snapshot rebuilds.
func (r *GormAssignmentRepository) GetAllActive(ctx context.Context) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active").Error; err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := assignmentToDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, aggregate)
	}

	return assignments, nil
}

// GormAllocationRuleRepository implements AllocationRuleRepository using GORM.
type GormAllocationRuleRepository struct {
	db *gorm.DB
}

// NewGormAllocationRuleRepository creates a new GORM allocation rule repository.
func NewGormAllocationRuleRepository(db *gorm.DB) *GormAllocationRuleRepository {
	return &GormAllocationRuleRepository{db: db}
}

// Upsert stores the rule for its (zone, subcategory) pair, replacing any
// previous rule for the pair.
func (r *GormAllocationRuleRepository) Upsert(ctx context.Context, rule *assignment.AllocationRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "zone_id"}, {Name: "subcategory_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetAll retrieves every stored rule, for snapshot rebuilds.
func (r *GormAllocationRuleRepository) GetAll(ctx context.Context) ([]*assignment.AllocationRule, error) {
	var dtos []AllocationRuleDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]*assignment.AllocationRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := ruleToDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
