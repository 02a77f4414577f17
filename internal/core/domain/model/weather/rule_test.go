package weather_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feePtr(fee float64) *float64 {
	return &fee
}

func TestConditionFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    weather.Condition
		wantErr bool
	}{
		{"normal", weather.ConditionNormal, false},
		{"rain", weather.ConditionRain, false},
		{"storm", weather.ConditionStorm, false},
		{"extreme", weather.ConditionExtreme, false},
		{"Storm", weather.ConditionUnknown, true},
		{"hail", weather.ConditionUnknown, true},
		{"", weather.ConditionUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := weather.ConditionFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRule(t *testing.T) {
	zoneID := kernel.NewUUID()
	now := time.Now()

	t.Run("creates a storm rule with fee override", func(t *testing.T) {
		rule, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionStorm,
			feePtr(30.0), 1.5, false, nil, now)

		require.NoError(t, err)
		require.NotNil(t, rule.DeliveryFeeOverride())
		assert.InDelta(t, 30.0, *rule.DeliveryFeeOverride(), 0.0001)
		assert.InDelta(t, 1.5, rule.ETAMultiplier(), 0.0001)
		assert.False(t, rule.IsServiceSuspended())
	})

	t.Run("creates a suspension rule with resume estimate", func(t *testing.T) {
		resume := now.Add(4 * time.Hour)
		rule, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionExtreme,
			nil, 1.0, true, &resume, now)

		require.NoError(t, err)
		assert.True(t, rule.IsServiceSuspended())
		require.NotNil(t, rule.ResumeEstimate())
		assert.True(t, rule.ResumeEstimate().Equal(resume))
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := []struct {
			name       string
			condition  weather.Condition
			override   *float64
			multiplier float64
		}{
			{"unknown condition", weather.ConditionUnknown, nil, 1.0},
			{"negative fee override", weather.ConditionRain, feePtr(-5.0), 1.0},
			{"multiplier below one", weather.ConditionRain, nil, 0.8},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := weather.NewRule(
					kernel.NewUUID(), zoneID, tt.condition,
					tt.override, tt.multiplier, false, nil, now)
				assert.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var rule weather.Rule
		assert.ErrorIs(t, rule.Validate(), weather.ErrRuleIsNotConstructed)
	})
}

func TestDefaultRule(t *testing.T) {
	zoneID := kernel.NewUUID()
	rule := weather.DefaultRule(zoneID)

	assert.NoError(t, rule.Validate())
	assert.Equal(t, weather.ConditionNormal, rule.Condition())
	assert.Nil(t, rule.DeliveryFeeOverride())
	assert.InDelta(t, 1.0, rule.ETAMultiplier(), 0.0001)
	assert.False(t, rule.IsServiceSuspended())
	assert.True(t, rule.ZoneID().IsEqual(zoneID))
}

func TestRuleSupersedes(t *testing.T) {
	zoneID := kernel.NewUUID()
	now := time.Now()

	older, err := weather.NewRule(
		kernel.NewUUID(), zoneID, weather.ConditionRain, nil, 1.2, false, nil, now)
	require.NoError(t, err)

	newer, err := weather.NewRule(
		kernel.NewUUID(), zoneID, weather.ConditionStorm, feePtr(30.0), 1.5, false, nil,
		now.Add(time.Minute))
	require.NoError(t, err)

	assert.True(t, newer.Supersedes(older))
	assert.False(t, older.Supersedes(newer))
	assert.True(t, older.Supersedes(nil))

	t.Run("equal timestamps do not supersede", func(t *testing.T) {
		same, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionStorm, nil, 1.5, false, nil, now)
		require.NoError(t, err)

		assert.False(t, same.Supersedes(older))
	})
}

func TestRuleIsEquivalent(t *testing.T) {
	zoneID := kernel.NewUUID()
	now := time.Now()

	base, err := weather.NewRule(
		kernel.NewUUID(), zoneID, weather.ConditionStorm, feePtr(30.0), 1.5, false, nil, now)
	require.NoError(t, err)

	t.Run("same adjustments at a later time are equivalent", func(t *testing.T) {
		duplicate, err := weather.NewRule(
			kernel.NewUUID(), zoneID, weather.ConditionStorm, feePtr(30.0), 1.5, false, nil,
			now.Add(time.Minute))
		require.NoError(t, err)

		assert.True(t, base.IsEquivalent(duplicate))
	})

	t.Run("different adjustments are not equivalent", func(t *testing.T) {
		tests := []struct {
			name string
			make func() (*weather.Rule, error)
		}{
			{"different condition", func() (*weather.Rule, error) {
				return weather.NewRule(
					kernel.NewUUID(), zoneID, weather.ConditionRain, feePtr(30.0), 1.5, false, nil, now)
			}},
			{"different fee override", func() (*weather.Rule, error) {
				return weather.NewRule(
					kernel.NewUUID(), zoneID, weather.ConditionStorm, feePtr(25.0), 1.5, false, nil, now)
			}},
			{"no fee override", func() (*weather.Rule, error) {
				return weather.NewRule(
					kernel.NewUUID(), zoneID, weather.ConditionStorm, nil, 1.5, false, nil, now)
			}},
			{"different zone", func() (*weather.Rule, error) {
				return weather.NewRule(
					kernel.NewUUID(), kernel.NewUUID(), weather.ConditionStorm, feePtr(30.0), 1.5, false, nil, now)
			}},
			{"suspension differs", func() (*weather.Rule, error) {
				return weather.NewRule(
					kernel.NewUUID(), zoneID, weather.ConditionStorm, feePtr(30.0), 1.5, true, nil, now)
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				other, err := tt.make()
				require.NoError(t, err)
				assert.False(t, base.IsEquivalent(other))
			})
		}
	})

	t.Run("nil is never equivalent", func(t *testing.T) {
		assert.False(t, base.IsEquivalent(nil))
	})
}
