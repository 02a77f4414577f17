package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/quote"
)

// ReleaseQuoteCommandHandler abandons a pending quote: every reserved line is
// returned to its source with a compensating increment, and the quote moves
// to the released status. The increments and the status change share one
// transaction, so stock is never returned for a quote that stays pending.
type ReleaseQuoteCommandHandler struct {
	uowFactory QuoteReleaseUoWFactory
	logger     *slog.Logger
}

// NewReleaseQuoteCommandHandler creates a handler for quote release operations.
func NewReleaseQuoteCommandHandler(
	uowFactory QuoteReleaseUoWFactory,
	logger *slog.Logger,
) ReleaseQuoteCommandHandler {
	return ReleaseQuoteCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "release_quote_command_handler"),
	}
}

// Handle processes the quote release command.
//
// Errors:
//   - errs.ObjectNotFoundError: no quote with the given ID exists
//   - errs.ValueIsInvalidError: the quote is not pending
func (h ReleaseQuoteCommandHandler) Handle(ctx context.Context, cmd ReleaseQuoteCommand) error {
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

	if err = releaseQuote(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Quote released",
		"quote_id", aggregate.ID(), "order_id", aggregate.OrderID())
	return nil
}

// releaseQuote transitions the quote to released and returns every reserved
// line to its source. Shared with the stale quote reaper.
func releaseQuote(ctx context.Context, uow QuoteReleaseUoW, aggregate *quote.OrderQuote) error {
	if err := aggregate.Release(); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	for _, subOrder := range aggregate.SubOrders() {
		for _, line := range subOrder.Lines() {
			err := inventoryRepo.Release(
				ctx, subOrder.SourceID(), line.ProductID, aggregate.ZoneID(), line.Quantity)
			if err != nil {
				return err
			}
		}
	}

	return uow.QuoteRepository().Update(ctx, aggregate)
}
