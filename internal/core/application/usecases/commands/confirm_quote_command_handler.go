package commands

import (
	"context"
	"log/slog"
)

// ConfirmQuoteCommandHandler moves a pending quote to confirmed. The
// reservations made during routing become the order's final allocation.
type ConfirmQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	logger     *slog.Logger
}

// NewConfirmQuoteCommandHandler creates a handler for quote confirmation.
func NewConfirmQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	logger *slog.Logger,
) ConfirmQuoteCommandHandler {
	return ConfirmQuoteCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "confirm_quote_command_handler"),
	}
}

// Handle processes the quote confirmation command.
//
// Errors:
//   - errs.ObjectNotFoundError: no quote with the given ID exists
//   - errs.ValueIsInvalidError: the quote is not pending
func (h ConfirmQuoteCommandHandler) Handle(ctx context.Context, cmd ConfirmQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()

	aggregate, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Quote confirmed",
		"quote_id", aggregate.ID(), "order_id", aggregate.OrderID(), "partial", aggregate.IsPartial())
	return nil
}
