package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule is used when no schedule is configured.
const DefaultSweepSchedule = "@every 5m"

// OrderSweepJob periodically advances pending orders to processing.
// Orders that lose a concurrent update race are skipped and picked up
// again on the next run.
type OrderSweepJob struct {
	handler  commands.AdvancePendingOrdersCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// NewOrderSweepJob creates a new job for sweeping pending orders.
// An empty schedule falls back to DefaultSweepSchedule.
func NewOrderSweepJob(
	handler commands.AdvancePendingOrdersCommandHandler,
	logger *slog.Logger,
	schedule string,
) *OrderSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &OrderSweepJob{
		handler:  handler,
		cron:     cron.New(),
		logger:   logger.With("component", "order_sweep_job"),
		schedule: schedule,
	}
}

// Start begins the order sweep job on its configured schedule.
func (j *OrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAdvancePendingOrdersCommand()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order sweep failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order sweep completed",
			"advanced", result.Advanced,
			"skipped", result.Skipped,
			"failed", result.Failed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order sweep job.
func (j *OrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sweep job stopped")
}
