package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// snapshotRefreshSchedule rebuilds the configuration snapshots every
// 30 seconds. Administrative changes reach the read paths within one cycle;
// until then requests keep running against the previous generation.
const snapshotRefreshSchedule = "*/30 * * * * *"

// SnapshotRefreshJob periodically rebuilds the geographic, catalog, and
// assignment snapshots from storage and publishes them.
type SnapshotRefreshJob struct {
	handler commands.RefreshSnapshotsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSnapshotRefreshJob creates a new job for refreshing configuration snapshots.
func NewSnapshotRefreshJob(handler commands.RefreshSnapshotsCommandHandler, logger *slog.Logger) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "snapshot_refresh_job"),
	}
}

// Start begins the snapshot refresh job.
func (j *SnapshotRefreshJob) Start() error {
	_, err := j.cron.AddFunc(snapshotRefreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshSnapshotsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the snapshot refresh job.
func (j *SnapshotRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job stopped")
}
