package jobs

import (
	"context"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ScheduleProvisioningJob tops up worker calendars on a daily cadence.
// Each run extends every worker's weekday working days to the rolling horizon,
// so availability checks always have calendar data to look at.
type ScheduleProvisioningJob struct {
	handler commands.EnsureSchedulesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduleProvisioningJob creates a new job for calendar top-up.
// Uses EnsureSchedulesCommandHandler to extend worker calendars once a day.
func NewScheduleProvisioningJob(handler commands.EnsureSchedulesCommandHandler, logger *slog.Logger) *ScheduleProvisioningJob {
	return &ScheduleProvisioningJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "schedule_provisioning_job"),
	}
}

// Start begins the schedule provisioning job, running shortly after midnight.
func (j *ScheduleProvisioningJob) Start() error {
	_, err := j.cron.AddFunc("0 5 0 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewEnsureSchedulesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Schedule provisioning job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schedule provisioning job started (running daily)")
	return nil
}

// Stop stops the schedule provisioning job.
func (j *ScheduleProvisioningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Schedule provisioning job stopped")
}
