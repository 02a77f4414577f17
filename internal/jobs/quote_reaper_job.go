package jobs

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// quoteReaperSchedule sweeps for abandoned quotes once a minute.
const quoteReaperSchedule = "0 * * * * *"

// QuoteReaperJob periodically releases pending quotes older than the
// configured age, returning their inventory reservations to stock.
type QuoteReaperJob struct {
	handler commands.ReleaseStaleQuotesCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteReaperJob creates a new job for releasing abandoned quotes.
// maxAge is how long a quote may stay pending before its reservations
// are returned.
func NewQuoteReaperJob(
	handler commands.ReleaseStaleQuotesCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *QuoteReaperJob {
	return &QuoteReaperJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quote_reaper_job"),
	}
}

// Start begins the quote reaper job.
func (j *QuoteReaperJob) Start() error {
	_, err := j.cron.AddFunc(quoteReaperSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewReleaseStaleQuotesCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Quote reaper job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Quote reaper job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote reaper job started (running every minute)")
	return nil
}

// Stop stops the quote reaper job.
func (j *QuoteReaperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote reaper job stopped")
}
