package quote

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order quote.
//
// State transitions:
//
//	Pending ──┬──> Confirmed
//	          └──> Released
//
// Pending quotes hold inventory reservations. Confirmation hands the quote to
// checkout; release returns the reserved stock (the single compensating action
// the core supports) and is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: reservations held, awaiting
	// confirmation or abandonment.
	StatusPending

	// StatusConfirmed means the customer accepted the quote; reservations
	// convert into the order.
	StatusConfirmed

	// StatusReleased means the quote was abandoned and its reservations
	// compensated back into stock. Terminal.
	StatusReleased
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusReleased:  "Released",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusReleased:  "Released",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to Confirmed.
// Only pending quotes can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s is not a valid status to confirm", s))
	}
	return StatusConfirmed, nil
}

// Release transitions the status to Released.
// Only pending quotes can be released; confirmed quotes belong to checkout.
func (s Status) Release() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s is not a valid status to release", s))
	}
	return StatusReleased, nil
}
