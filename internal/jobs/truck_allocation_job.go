package jobs

import (
	"context"
	"errors"
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TruckAllocationJob periodically retries truck allocation for employees
// hired while the pool was empty. Runs every 30 seconds.
type TruckAllocationJob struct {
	handler commands.AssignTrucksCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTruckAllocationJob creates a new job for the truck allocation sweep.
func NewTruckAllocationJob(handler commands.AssignTrucksCommandHandler, logger *slog.Logger) *TruckAllocationJob {
	return &TruckAllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "truck_allocation_job"),
	}
}

// Start begins the truck allocation job to run every 30 seconds.
func (j *TruckAllocationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignTrucksCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog is the usual outcome, not a failure
			if !errors.Is(err, commands.ErrNoUnassignedEmployees) {
				j.logger.ErrorContext(ctx, "Truck allocation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Truck allocation job started (running every 30 seconds)")
	return nil
}

// Stop stops the truck allocation job.
func (j *TruckAllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Truck allocation job stopped")
}
