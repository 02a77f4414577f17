package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"grocery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotRefreshJob *SnapshotRefreshJob
	quoteReaperJob     *QuoteReaperJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshHandler commands.RefreshSnapshotsCommandHandler,
	reaperHandler commands.ReleaseStaleQuotesCommandHandler,
	quoteMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotRefreshJob: NewSnapshotRefreshJob(refreshHandler, logger),
		quoteReaperJob:     NewQuoteReaperJob(reaperHandler, quoteMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot refresh job: %w", err)
	}

	if err := jm.quoteReaperJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.snapshotRefreshJob.Stop()
		return fmt.Errorf("failed to start quote reaper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteReaperJob.Stop()
	jm.snapshotRefreshJob.Stop()
}
