package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSweepJob *OrderSweepJob
	healthLogJob  *HealthLogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orderSweepJob *OrderSweepJob, healthLogJob *HealthLogJob) *JobManager {
	return &JobManager{
		orderSweepJob: orderSweepJob,
		healthLogJob:  healthLogJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sweep job: %w", err)
	}

	if err := jm.healthLogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderSweepJob.Stop()
		return fmt.Errorf("failed to start health log job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.healthLogJob.Stop()
	jm.orderSweepJob.Stop()
}
