// Package scheduling holds the schedule store, the single mutation path for
// worker calendars. A store is built per transaction around the transaction's
// ScheduleRepository, so every calendar read and write a command performs
// shares that command's consistency boundary.
package scheduling

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// Store mediates all access to a worker's calendar.
//
// Calendars are lazy: a worker has no rows until something asks about their
// schedule, at which point EnsureWorkerHasSchedule installs the default
// rolling calendar. Availability combines both calendar halves: a working day
// must exist for the date and no approved leave may cover it.
type Store struct {
	scheduleRepo ports.ScheduleRepository
	planner      services.SchedulePlanner
	clock        func() time.Time
}

// NewStore creates a Store over a transaction-scoped schedule repository.
// The clock provides the reference date for default-calendar provisioning.
func NewStore(scheduleRepo ports.ScheduleRepository, planner services.SchedulePlanner,
	clock func() time.Time) (Store, error) {
	if scheduleRepo == nil {
		return Store{}, errs.NewValueIsRequiredError("scheduleRepo")
	}
	if clock == nil {
		return Store{}, errs.NewValueIsRequiredError("clock")
	}

	return Store{scheduleRepo: scheduleRepo, planner: planner, clock: clock}, nil
}

// EnsureWorkerHasSchedule installs the worker's default calendar for the
// rolling horizon and returns all working days within it, ordered by date.
// Idempotent: existing days are kept as they are, only gaps are filled.
func (s Store) EnsureWorkerHasSchedule(ctx context.Context,
	workerID kernel.UUID) ([]schedule.WorkingDay, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	from := s.clock()
	horizon, err := s.planner.Horizon(from)
	if err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.GetWorkingDays(ctx, workerID, horizon)
	if err != nil {
		return nil, err
	}

	missing, err := s.planner.PlanMissingDays(workerID, from, existing)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return existing, nil
	}

	if err := s.scheduleRepo.AddWorkingDays(ctx, missing); err != nil {
		return nil, err
	}

	return s.scheduleRepo.GetWorkingDays(ctx, workerID, horizon)
}

// IsAvailable reports whether the worker can take work on the given date:
// a working day covers the date and no approved leave request does.
func (s Store) IsAvailable(ctx context.Context, workerID kernel.UUID, date time.Time) (bool, error) {
	if err := workerID.Validate(); err != nil {
		return false, err
	}

	hasDay, err := s.scheduleRepo.HasWorkingDay(ctx, workerID, kernel.Date(date))
	if err != nil {
		return false, err
	}
	if !hasDay {
		return false, nil
	}

	onLeave, err := s.scheduleRepo.HasApprovedLeave(ctx, workerID, kernel.Date(date))
	if err != nil {
		return false, err
	}

	return !onLeave, nil
}

// WorkingDaysFor returns the worker's working days within the period, ordered
// by date ascending.
func (s Store) WorkingDaysFor(ctx context.Context, workerID kernel.UUID,
	period kernel.DateRange) ([]schedule.WorkingDay, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	return s.scheduleRepo.GetWorkingDays(ctx, workerID, period)
}
