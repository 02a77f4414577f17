package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrConfirmQuoteCommandIsNotConstructed = errors.New(
	"ConfirmQuoteCommand must be created via NewConfirmQuoteCommand constructor",
)

// ConfirmQuoteCommand represents the customer accepting a pending quote.
// Partial quotes in particular stay pending until the customer confirms the
// reduced scope or releases the reservation.
type ConfirmQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmQuoteCommand creates a command to confirm a pending quote.
func NewConfirmQuoteCommand(quoteID kernel.UUID) (ConfirmQuoteCommand, error) {
	confirmCommand := ConfirmQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setQuoteID(quoteID); err != nil {
		return ConfirmQuoteCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmQuoteCommand) Validate() error {
	return c.guard.Validate(ErrConfirmQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote to confirm.
func (c ConfirmQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c *ConfirmQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}
