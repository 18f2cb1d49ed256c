package jobs

import (
	"context"
	"log/slog"

	"orders/internal/pkg/health"

	"github.com/robfig/cron/v3"
)

// DefaultHealthLogSchedule is used when no schedule is configured.
const DefaultHealthLogSchedule = "@every 5m"

// HealthLogJob periodically logs the current health check results so the
// service state shows up in the logs even when nobody polls the endpoint.
type HealthLogJob struct {
	health   *health.Health
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// NewHealthLogJob creates a new job for logging health state.
// An empty schedule falls back to DefaultHealthLogSchedule.
func NewHealthLogJob(healthState *health.Health, logger *slog.Logger, schedule string) *HealthLogJob {
	if schedule == "" {
		schedule = DefaultHealthLogSchedule
	}
	return &HealthLogJob{
		health:   healthState,
		cron:     cron.New(),
		logger:   logger.With("component", "health_log_job"),
		schedule: schedule,
	}
}

// Start begins the health log job on its configured schedule.
func (j *HealthLogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		report := j.health.Snapshot()

		if report.Healthy() {
			j.logger.InfoContext(ctx, "Health check passed", "status", report.Status)
			return
		}

		for name, failure := range report.Checks {
			j.logger.WarnContext(ctx, "Health check failing", "check", name, "error", failure)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Health log job started", "schedule", j.schedule)
	return nil
}

// Stop stops the health log job.
func (j *HealthLogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Health log job stopped")
}
