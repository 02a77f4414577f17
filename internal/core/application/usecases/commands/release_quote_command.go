package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrReleaseQuoteCommandIsNotConstructed = errors.New(
	"ReleaseQuoteCommand must be created via NewReleaseQuoteCommand constructor",
)

// ReleaseQuoteCommand represents a request to abandon a pending quote and
// return its reserved stock to the sources it was taken from.
type ReleaseQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseQuoteCommand creates a command to release a pending quote.
func NewReleaseQuoteCommand(quoteID kernel.UUID) (ReleaseQuoteCommand, error) {
	releaseCommand := ReleaseQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := releaseCommand.setQuoteID(quoteID); err != nil {
		return ReleaseQuoteCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseQuoteCommand) Validate() error {
	return c.guard.Validate(ErrReleaseQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote to release.
func (c ReleaseQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c *ReleaseQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}
