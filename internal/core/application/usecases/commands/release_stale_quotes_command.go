package commands

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrReleaseStaleQuotesCommandIsNotConstructed = errors.New(
	"ReleaseStaleQuotesCommand must be created via NewReleaseStaleQuotesCommand constructor",
)

// ReleaseStaleQuotesCommand triggers release of pending quotes older than the
// given age. Quotes the customer never confirmed hold reserved stock; the
// reaper returns that stock to its sources.
type ReleaseStaleQuotesCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewReleaseStaleQuotesCommand creates a command to release pending quotes
// older than maxAge.
func NewReleaseStaleQuotesCommand(maxAge time.Duration) (ReleaseStaleQuotesCommand, error) {
	staleCommand := ReleaseStaleQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setMaxAge(maxAge); err != nil {
		return ReleaseStaleQuotesCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseStaleQuotesCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleQuotesCommandIsNotConstructed)
}

// MaxAge returns the age beyond which a pending quote is abandoned.
func (c ReleaseStaleQuotesCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ReleaseStaleQuotesCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxAge", fmt.Errorf("%s is not positive", maxAge))
	}
	c.maxAge = maxAge
	return nil
}
