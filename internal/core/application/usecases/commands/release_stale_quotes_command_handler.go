package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/kernel"
)

// ReleaseStaleQuotesCommandHandler releases abandoned pending quotes. Each
// quote is released in its own transaction, so one failing quote does not
// block the rest of the batch.
type ReleaseStaleQuotesCommandHandler struct {
	uowFactory QuoteReleaseUoWFactory
	logger     *slog.Logger
}

// NewReleaseStaleQuotesCommandHandler creates a handler for the stale quote reaper.
func NewReleaseStaleQuotesCommandHandler(
	uowFactory QuoteReleaseUoWFactory,
	logger *slog.Logger,
) ReleaseStaleQuotesCommandHandler {
	return ReleaseStaleQuotesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "release_stale_quotes_command_handler"),
	}
}

// Handle processes the reaper command. Returns the last per-quote error after
// attempting the whole batch.
func (h ReleaseStaleQuotesCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseStaleQuotesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	// The listing runs outside the release transactions: a quote confirmed
	// between the listing and its release simply fails its status transition
	// and is skipped.
	listUow := h.uowFactory.Create()
	if err := listUow.Begin(ctx); err != nil {
		return err
	}
	stale, err := listUow.QuoteRepository().GetPendingOlderThan(ctx, cutoff)
	_ = listUow.Rollback(ctx)
	if err != nil {
		return err
	}

	var lastErr error
	released := 0
	for _, aggregate := range stale {
		if err := h.releaseOne(ctx, aggregate.ID()); err != nil {
			h.logger.ErrorContext(ctx, "Failed to release stale quote",
				"quote_id", aggregate.ID(), "error", err)
			lastErr = err
			continue
		}
		released++
	}

	if released > 0 {
		h.logger.InfoContext(ctx, "Stale quotes released",
			"released", released, "candidates", len(stale))
	}
	return lastErr
}

func (h ReleaseStaleQuotesCommandHandler) releaseOne(ctx context.Context, quoteID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Re-read inside the transaction so a quote confirmed since the listing
	// fails its transition here instead of being released.
	aggregate, err := uow.QuoteRepository().Get(ctx, quoteID)
	if err != nil {
		return err
	}

	if err = releaseQuote(ctx, uow, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
