package ports

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"
)

// ScheduleRepository defines the persistence contract for worker calendars:
// working days and leave requests.
type ScheduleRepository interface {
	// AddWorkingDays persists new working days. Days already present for the
	// same worker and date are left untouched.
	AddWorkingDays(ctx context.Context, days []schedule.WorkingDay) error

	// GetWorkingDays retrieves a worker's working days within the period,
	// ordered by date ascending.
	GetWorkingDays(ctx context.Context, workerID kernel.UUID,
		period kernel.DateRange) ([]schedule.WorkingDay, error)

	// HasWorkingDay reports whether a working day exists for the worker on the
	// given date.
	HasWorkingDay(ctx context.Context, workerID kernel.UUID, date time.Time) (bool, error)

	// AddLeaveRequest persists a new leave request.
	AddLeaveRequest(ctx context.Context, aggregate *schedule.LeaveRequest) error

	// UpdateLeaveRequest persists changes to an existing leave request.
	UpdateLeaveRequest(ctx context.Context, aggregate *schedule.LeaveRequest) error

	// GetLeaveRequest retrieves a leave request by its unique identifier.
	GetLeaveRequest(ctx context.Context, id kernel.UUID) (*schedule.LeaveRequest, error)

	// GetOverlappingLeaveRequests retrieves the worker's pending and approved
	// requests whose period intersects the given one. Rejected requests never
	// block a new submission.
	GetOverlappingLeaveRequests(ctx context.Context, workerID kernel.UUID,
		period kernel.DateRange) ([]*schedule.LeaveRequest, error)

	// HasApprovedLeave reports whether an approved leave request covers the
	// given date for the worker.
	HasApprovedLeave(ctx context.Context, workerID kernel.UUID, date time.Time) (bool, error)
}
