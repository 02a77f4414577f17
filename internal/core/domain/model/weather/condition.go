package weather

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Condition represents the weather state a zone is operating under.
//
// Conditions worsen along the severity order
//
//	Normal → Rain → Storm → Extreme
//
// and any condition can return directly to Normal. Transitions are driven by
// an external ingestion job and are idempotent: re-applying the zone's current
// condition changes nothing.
type Condition int

const (
	// ConditionUnknown represents an invalid or undefined condition.
	// This value (0) helps catch uninitialized Condition values.
	ConditionUnknown Condition = iota

	// ConditionNormal is the default: no overrides, no suspension.
	ConditionNormal

	// ConditionRain is degraded weather with possible fee/ETA adjustments.
	ConditionRain

	// ConditionStorm is severe weather with stronger adjustments.
	ConditionStorm

	// ConditionExtreme is the most severe state, typically suspending service.
	ConditionExtreme
)

// getConditionStrings returns a map of Condition values to their string representations.
func getConditionStrings() map[Condition]string {
	return map[Condition]string{
		ConditionUnknown: "Unknown",
		ConditionNormal:  "Normal",
		ConditionRain:    "Rain",
		ConditionStorm:   "Storm",
		ConditionExtreme: "Extreme",
	}
}

// getValidConditionStrings returns a map of only valid Condition values.
func getValidConditionStrings() map[Condition]string {
	//nolint:exhaustive // ConditionUnknown is intentionally excluded as it's invalid
	return map[Condition]string{
		ConditionNormal:  "Normal",
		ConditionRain:    "Rain",
		ConditionStorm:   "Storm",
		ConditionExtreme: "Extreme",
	}
}

// Validate checks if the Condition value is valid.
// Valid conditions are: Normal, Rain, Storm, Extreme.
func (c Condition) Validate() error {
	if _, ok := getValidConditionStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"condition is invalid", fmt.Errorf("%d is not a valid condition", c))
	}
	return nil
}

// String returns the human-readable name of the condition.
// This method implements the fmt.Stringer interface and is safe
// to call on any Condition value, including invalid ones.
func (c Condition) String() string {
	if str, ok := getConditionStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// ConditionFromString parses a condition name as delivered by the weather
// ingestion job. Matching is exact on the lowercase wire names.
func ConditionFromString(s string) (Condition, error) {
	switch s {
	case "normal":
		return ConditionNormal, nil
	case "rain":
		return ConditionRain, nil
	case "storm":
		return ConditionStorm, nil
	case "extreme":
		return ConditionExtreme, nil
	default:
		return ConditionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"condition", fmt.Errorf("%q is not a known weather condition", s))
	}
}
