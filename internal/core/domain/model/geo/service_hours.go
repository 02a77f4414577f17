package geo

import (
	"fmt"
	"time"

	"grocery/internal/pkg/errs"
)

// serviceHoursLayout is the accepted wall-clock format for opening and closing times.
const serviceHoursLayout = "15:04"

// ServiceHours is the daily window during which a zone accepts orders.
// The zero value means "always open", which is the default for zones without
// configured hours. Windows may span midnight: Open "20:00" / Close "02:00"
// is open from eight in the evening until two in the morning.
type ServiceHours struct {
	open  string
	close string
}

// AlwaysOpen returns service hours with no restriction.
func AlwaysOpen() ServiceHours {
	return ServiceHours{}
}

// NewServiceHours creates a daily service window from "HH:MM" wall-clock strings.
// Both values must parse in 24-hour format, and they must differ - a window
// that opens and closes at the same minute is ambiguous and rejected.
func NewServiceHours(open string, close string) (ServiceHours, error) {
	openT, err := time.Parse(serviceHoursLayout, open)
	if err != nil {
		return ServiceHours{}, errs.NewValueIsInvalidErrorWithCause("open", err)
	}

	closeT, err := time.Parse(serviceHoursLayout, close)
	if err != nil {
		return ServiceHours{}, errs.NewValueIsInvalidErrorWithCause("close", err)
	}

	if openT.Equal(closeT) {
		return ServiceHours{}, errs.NewValueIsInvalidErrorWithCause(
			"close", fmt.Errorf("service window cannot open and close at the same time %q", close))
	}

	return ServiceHours{open: open, close: close}, nil
}

// Open returns the opening time as "HH:MM", or an empty string for an unrestricted window.
func (h ServiceHours) Open() string {
	return h.open
}

// Close returns the closing time as "HH:MM", or an empty string for an unrestricted window.
func (h ServiceHours) Close() string {
	return h.close
}

// IsUnrestricted reports whether the window imposes no limits.
func (h ServiceHours) IsUnrestricted() bool {
	return h.open == "" && h.close == ""
}

// IsOpenAt reports whether the window is open at the given instant.
// Only the wall-clock portion of t is considered. Windows spanning midnight
// are handled: for Open "20:00" / Close "02:00", 23:30 and 01:00 are open
// while 12:00 is closed.
func (h ServiceHours) IsOpenAt(t time.Time) bool {
	if h.IsUnrestricted() {
		return true
	}

	now := t.Format(serviceHoursLayout)
	if h.open <= h.close {
		return now >= h.open && now < h.close
	}
	// Window spans midnight.
	return now >= h.open || now < h.close
}

// String returns "HH:MM-HH:MM", or "always open" for an unrestricted window.
func (h ServiceHours) String() string {
	if h.IsUnrestricted() {
		return "always open"
	}
	return h.open + "-" + h.close
}
