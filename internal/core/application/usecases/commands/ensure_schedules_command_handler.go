package commands

import (
	"context"
	"time"

	"fieldops/internal/core/application/scheduling"
	"fieldops/internal/core/domain/services"
)

// EnsureSchedulesCommandHandler walks the worker pool and fills every default
// calendar up to the rolling horizon. Safe to run repeatedly.
type EnsureSchedulesCommandHandler struct {
	uowFactory ScheduleUoWFactory
	planner    services.SchedulePlanner
	clock      func() time.Time
}

// NewEnsureSchedulesCommandHandler creates a handler for calendar top-up.
func NewEnsureSchedulesCommandHandler(uowFactory ScheduleUoWFactory,
	planner services.SchedulePlanner, clock func() time.Time) EnsureSchedulesCommandHandler {
	return EnsureSchedulesCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		clock:      clock,
	}
}

// Handle processes the top-up command for the whole worker pool.
func (h EnsureSchedulesCommandHandler) Handle(ctx context.Context,
	command EnsureSchedulesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workers, err := uow.WorkerRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	store, err := scheduling.NewStore(uow.ScheduleRepository(), h.planner, h.clock)
	if err != nil {
		return err
	}

	for _, w := range workers {
		if _, err = store.EnsureWorkerHasSchedule(ctx, w.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
