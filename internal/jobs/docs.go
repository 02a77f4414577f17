// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the platform depends on.
//
// # Available Jobs
//
// 1. SnapshotRefreshJob - Runs every 30 seconds to rebuild the geographic,
// catalog, and assignment snapshots from storage and publish them to the
// read paths.
//
// 2. QuoteReaperJob - Runs every minute to release pending quotes older than
// the configured age, returning their inventory reservations to stock.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, reaperHandler, 30*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and wait for the next cycle; a failed snapshot
// refresh leaves the previous generation serving
// - Failed job starts will stop any already running jobs
package jobs
