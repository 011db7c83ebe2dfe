package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob manages the scheduled assignment of orders to workers.
// Runs every second to match unassigned orders with available workers; it is
// the safety net behind the event listener, catching orders whose events were
// missed.
type OrderAssignmentJob struct {
	handler commands.AssignOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAssignmentJob creates a new job for assigning orders.
// Uses AssignOrderCommandHandler to process assignments every second.
func NewOrderAssignmentJob(handler commands.AssignOrderCommandHandler, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_assignment_job"),
	}
}

// Start begins the order assignment job to run every second.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) &&
				!errors.Is(err, services.ErrNoEligibleWorker) {
				j.logger.ErrorContext(ctx, "Order assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every second)")
	return nil
}

// Stop stops the order assignment job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
