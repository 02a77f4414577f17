package geo

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the administrative state of a geographic unit.
// Inactive units remain in storage but are excluded from resolution snapshots,
// so customers in them see "not serviceable" rather than an error.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusActive marks a unit that participates in service-area resolution.
	StatusActive

	// StatusInactive marks a unit that is administratively disabled.
	StatusInactive
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusInactive: "Inactive",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:   "Active",
		StatusInactive: "Inactive",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Active, Inactive.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the unit participates in resolution.
func (s Status) IsActive() bool {
	return s == StatusActive
}
