package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"
)

// WeatherRuleRepository defines the persistence contract for weather rules.
// The store is append-only: applying a rule inserts a new row, and the latest
// row per zone is the zone's active rule. History stays queryable.
type WeatherRuleRepository interface {
	// Append stores a new rule as the zone's latest.
	Append(ctx context.Context, rule *weather.Rule) error

	// GetLatest retrieves the zone's most recently applied rule.
	// Returns an errs.ObjectNotFoundError when the zone has no recorded
	// weather; callers treat that as normal conditions.
	GetLatest(ctx context.Context, zoneID kernel.UUID) (*weather.Rule, error)

	// GetHistory retrieves the zone's rules newest first, bounded by limit.
	GetHistory(ctx context.Context, zoneID kernel.UUID, limit int) ([]*weather.Rule, error)
}
