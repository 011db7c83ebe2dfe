package schedule

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrWorkingDayIsNotConstructed is returned when using an improperly initialized WorkingDay.
var ErrWorkingDayIsNotConstructed = errors.New("WorkingDay must be created via NewWorkingDay constructor")

// WorkingDay records that a worker is nominally available on a calendar date
// within a time window. Working days are installed by the schedule store
// (default calendar provisioning or explicit scheduling) and are superseded,
// never deleted.
//
// A working day alone does not make the worker available: an approved leave
// request overrides it for every date the leave covers.
type WorkingDay struct {
	workerID kernel.UUID
	date     time.Time
	window   TimeWindow

	guard guard.ConstructorGuard
}

// NewWorkingDay creates a WorkingDay for the given worker, date, and window.
// The date is normalized to a calendar day.
func NewWorkingDay(workerID kernel.UUID, date time.Time, window TimeWindow) (WorkingDay, error) {
	if err := workerID.Validate(); err != nil {
		return WorkingDay{}, err
	}
	if date.IsZero() {
		return WorkingDay{}, errs.NewValueIsRequiredError("date")
	}
	if err := window.Validate(); err != nil {
		return WorkingDay{}, err
	}

	return WorkingDay{
		workerID: workerID,
		date:     kernel.Date(date),
		window:   window,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// WorkerID returns the owning worker's identifier.
func (d WorkingDay) WorkerID() kernel.UUID {
	return d.workerID
}

// Date returns the calendar day of availability.
func (d WorkingDay) Date() time.Time {
	return d.date
}

// Window returns the daily time window.
func (d WorkingDay) Window() TimeWindow {
	return d.window
}

// Covers reports whether this working day falls on the given calendar date.
func (d WorkingDay) Covers(date time.Time) bool {
	return kernel.SameDate(d.date, date)
}

// Validate ensures the WorkingDay was built through NewWorkingDay.
func (d WorkingDay) Validate() error {
	return d.guard.Validate(ErrWorkingDayIsNotConstructed)
}
