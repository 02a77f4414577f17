// Package weatherrepo persists per-zone weather rules as an append-only log:
// the newest row per zone is the zone's active rule, and history stays
// queryable for audits.
package weatherrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"

	"github.com/google/uuid"
)

// RuleDTO represents the database structure for weather rules.
type RuleDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID              uuid.UUID `gorm:"type:uuid;index:idx_weather_zone_applied"`
	Condition           string
	DeliveryFeeOverride *float64
	ETAMultiplier       float64
	ServiceSuspended    bool
	ResumeEstimate      *time.Time
	AppliedAt           time.Time `gorm:"index:idx_weather_zone_applied"`
}

// TableName specifies the database table name for weather rules.
func (RuleDTO) TableName() string {
	return "weather_rules"
}

func fromDomain(rule *weather.Rule) RuleDTO {
	return RuleDTO{
		ID:                  rule.ID().Bytes(),
		ZoneID:              rule.ZoneID().Bytes(),
		Condition:           rule.Condition().String(),
		DeliveryFeeOverride: rule.DeliveryFeeOverride(),
		ETAMultiplier:       rule.ETAMultiplier(),
		ServiceSuspended:    rule.IsServiceSuspended(),
		ResumeEstimate:      rule.ResumeEstimate(),
		AppliedAt:           rule.AppliedAt(),
	}
}

func toDomain(dto RuleDTO) (*weather.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}
	condition, err := weather.ConditionFromString(dto.Condition)
	if err != nil {
		return nil, err
	}

	return weather.NewRule(
		id, zoneID, condition,
		dto.DeliveryFeeOverride, dto.ETAMultiplier,
		dto.ServiceSuspended, dto.ResumeEstimate, dto.AppliedAt)
}
