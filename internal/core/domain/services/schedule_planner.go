package services

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/pkg/errs"
)

// SchedulePlanner computes the working days a default calendar is missing.
//
// The default calendar covers a rolling horizon of full working weekdays
// starting from a reference date. The planner is pure; installing the days it
// proposes is the schedule store's job.
type SchedulePlanner struct {
	horizonWeekdays int
	window          schedule.TimeWindow
}

// NewSchedulePlanner creates a planner with the given horizon (number of
// weekdays to keep covered) and default daily window.
func NewSchedulePlanner(horizonWeekdays int, window schedule.TimeWindow) (SchedulePlanner, error) {
	if horizonWeekdays < 1 || horizonWeekdays > 365 {
		return SchedulePlanner{}, errs.NewValueIsOutOfRangeError("horizonWeekdays", horizonWeekdays, 1, 365)
	}
	if err := window.Validate(); err != nil {
		return SchedulePlanner{}, err
	}

	return SchedulePlanner{horizonWeekdays: horizonWeekdays, window: window}, nil
}

// Horizon returns the inclusive date range the planner keeps covered starting
// from the reference date: from the reference day to the last weekday of the
// horizon.
func (p SchedulePlanner) Horizon(from time.Time) (kernel.DateRange, error) {
	day := kernel.Date(from)
	last := day
	for weekdays := 0; weekdays < p.horizonWeekdays; day = day.AddDate(0, 0, 1) {
		if !kernel.IsWeekday(day) {
			continue
		}
		weekdays++
		last = day
	}

	return kernel.NewDateRange(kernel.Date(from), last)
}

// PlanMissingDays returns working days for every weekday within the horizon
// from the reference date that the existing calendar does not cover yet.
// Weekends are skipped and never count against the horizon. The result is
// ordered by date ascending; an up-to-date calendar yields an empty slice.
func (p SchedulePlanner) PlanMissingDays(workerID kernel.UUID, from time.Time,
	existing []schedule.WorkingDay) ([]schedule.WorkingDay, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	covered := make(map[time.Time]struct{}, len(existing))
	for _, d := range existing {
		covered[d.Date()] = struct{}{}
	}

	var missing []schedule.WorkingDay
	day := kernel.Date(from)
	for weekdays := 0; weekdays < p.horizonWeekdays; day = day.AddDate(0, 0, 1) {
		if !kernel.IsWeekday(day) {
			continue
		}
		weekdays++

		if _, ok := covered[day]; ok {
			continue
		}

		wd, err := schedule.NewWorkingDay(workerID, day, p.window)
		if err != nil {
			return nil, err
		}
		missing = append(missing, wd)
	}

	return missing, nil
}
