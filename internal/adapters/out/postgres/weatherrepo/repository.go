package weatherrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWeatherRuleRepository implements WeatherRuleRepository using GORM.
type GormWeatherRuleRepository struct {
	db *gorm.DB
}

// NewGormWeatherRuleRepository creates a new GORM weather rule repository.
func NewGormWeatherRuleRepository(db *gorm.DB) *GormWeatherRuleRepository {
	return &GormWeatherRuleRepository{db: db}
}

// Append stores a new rule as the zone's latest. Rows are never updated or
// deleted; supersession is resolved at read time by timestamp.
func (r *GormWeatherRuleRepository) Append(ctx context.Context, rule *weather.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatest retrieves the zone's most recently applied rule.
func (r *GormWeatherRuleRepository) GetLatest(
	ctx context.Context,
	zoneID kernel.UUID,
) (*weather.Rule, error) {
	var dto RuleDTO
	err := r.db.WithContext(ctx).
		Where("zone_id = ?", zoneID.Bytes()).
		Order("applied_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("weather rule", zoneID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetHistory retrieves the zone's rules newest first, bounded by limit.
func (r *GormWeatherRuleRepository) GetHistory(
	ctx context.Context,
	zoneID kernel.UUID,
	limit int,
) ([]*weather.Rule, error) {
	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("zone_id = ?", zoneID.Bytes()).
		Order("applied_at DESC, id DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*weather.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
