package services_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherRuleEngine_ShouldApply(t *testing.T) {
	engine := services.NewWeatherRuleEngine()
	zoneID := kernel.NewUUID()
	now := time.Now()

	storm := func(t *testing.T, appliedAt time.Time) *weather.Rule {
		t.Helper()
		override := 30.0
		rule, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionStorm, &override, 1.5, false, nil, appliedAt)
		require.NoError(t, err)
		return rule
	}

	t.Run("first rule for a zone applies", func(t *testing.T) {
		assert.True(t, engine.ShouldApply(nil, storm(t, now)))
	})

	t.Run("newer different rule supersedes", func(t *testing.T) {
		current := storm(t, now)
		clearing, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionNormal, nil, 1.0, false, nil,
			now.Add(time.Hour))
		require.NoError(t, err)

		assert.True(t, engine.ShouldApply(current, clearing))
	})

	t.Run("re-applying the same weather state is a no-op", func(t *testing.T) {
		current := storm(t, now)
		duplicate := storm(t, now.Add(time.Minute))

		assert.False(t, engine.ShouldApply(current, duplicate))
	})

	t.Run("stale rule does not apply", func(t *testing.T) {
		current := storm(t, now)
		late, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionRain, nil, 1.2, false, nil,
			now.Add(-time.Hour))
		require.NoError(t, err)

		assert.False(t, engine.ShouldApply(current, late))
	})
}

func TestWeatherRuleEngine_Effective(t *testing.T) {
	engine := services.NewWeatherRuleEngine()
	zoneID := kernel.NewUUID()

	t.Run("returns the stored rule when present", func(t *testing.T) {
		stored, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionRain, nil, 1.2, false, nil, time.Now())
		require.NoError(t, err)

		assert.Same(t, stored, engine.Effective(zoneID, stored))
	})

	t.Run("falls back to the default rule", func(t *testing.T) {
		rule := engine.Effective(zoneID, nil)

		assert.Equal(t, weather.ConditionNormal, rule.Condition())
		assert.False(t, rule.IsServiceSuspended())
		assert.True(t, rule.ZoneID().IsEqual(zoneID))
	})
}
