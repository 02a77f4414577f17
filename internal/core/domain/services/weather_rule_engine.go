package services

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"
)

// WeatherRuleEngine is a domain service deciding how an incoming weather rule
// relates to the zone's current one. Rules are append-only: a new rule is
// recorded and supersedes its predecessor, never merged into it. The engine
// makes ingestion idempotent by rejecting rules that change nothing.
type WeatherRuleEngine struct{}

// NewWeatherRuleEngine creates a new WeatherRuleEngine.
func NewWeatherRuleEngine() WeatherRuleEngine {
	return WeatherRuleEngine{}
}

// ShouldApply reports whether the incoming rule should be appended as the
// zone's new active rule.
//
// The answer is no in two cases:
//   - The incoming rule does not supersede the current one (stale or
//     duplicate delivery from the ingestion job)
//   - The incoming rule is equivalent to the current one: re-applying the
//     same weather state is a no-op, regardless of its newer timestamp
func (e WeatherRuleEngine) ShouldApply(current *weather.Rule, incoming *weather.Rule) bool {
	if !incoming.Supersedes(current) {
		return false
	}
	if current != nil && current.IsEquivalent(incoming) {
		return false
	}
	return true
}

// Effective returns the rule in force for a zone: the stored rule when one
// exists, otherwise the default (normal conditions, no adjustments). Reads
// never fail on missing weather data.
func (e WeatherRuleEngine) Effective(zoneID kernel.UUID, stored *weather.Rule) *weather.Rule {
	if stored != nil {
		return stored
	}
	return weather.DefaultRule(zoneID)
}
