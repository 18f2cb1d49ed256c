// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OrderSweepJob - Periodically advances pending orders to processing
// 2. HealthLogJob - Periodically logs the result of the background health checks
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepJob, healthLogJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs default to the cron expression "@every 5m". The schedules are
// configurable so tests and local runs can use shorter intervals.
//
// # Error Handling
//
// - The sweep job logs failures and carries on; a failed run leaves orders
//   pending and the next run picks them up again
// - The health log job only reads state and cannot fail
// - Failed job starts will stop any already running jobs
package jobs
