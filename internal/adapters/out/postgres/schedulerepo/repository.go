package schedulerepo

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddWorkingDays persists new working days. Rows already present for the same
// worker and date are left untouched, so concurrent provisioning sweeps do not
// step on each other.
func (r *GormScheduleRepository) AddWorkingDays(ctx context.Context,
	days []schedule.WorkingDay) error {
	if len(days) == 0 {
		return nil
	}

	dtos := make([]WorkingDayDTO, 0, len(days))
	for _, day := range days {
		if err := day.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, workingDayFromDomain(day))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// GetWorkingDays retrieves a worker's working days within the period,
// ordered by date ascending.
func (r *GormScheduleRepository) GetWorkingDays(ctx context.Context, workerID kernel.UUID,
	period kernel.DateRange) ([]schedule.WorkingDay, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkingDayDTO
	if err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date BETWEEN ? AND ?", workerID.Bytes(), period.Start(), period.End()).
		Order("date").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	days := make([]schedule.WorkingDay, 0, len(dtos))
	for _, dto := range dtos {
		day, err := workingDayToDomain(dto)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

// HasWorkingDay reports whether a working day exists for the worker on the
// given date.
func (r *GormScheduleRepository) HasWorkingDay(ctx context.Context, workerID kernel.UUID,
	date time.Time) (bool, error) {
	if err := workerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&WorkingDayDTO{}).
		Where("worker_id = ? AND date = ?", workerID.Bytes(), kernel.Date(date)).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddLeaveRequest persists a new leave request.
func (r *GormScheduleRepository) AddLeaveRequest(ctx context.Context,
	aggregate *schedule.LeaveRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := leaveRequestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateLeaveRequest persists changes to an existing leave request.
func (r *GormScheduleRepository) UpdateLeaveRequest(ctx context.Context,
	aggregate *schedule.LeaveRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := leaveRequestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Select("*").Updates(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetLeaveRequest retrieves a leave request by ID.
func (r *GormScheduleRepository) GetLeaveRequest(ctx context.Context,
	id kernel.UUID) (*schedule.LeaveRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LeaveRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("leaveRequest", id.String())
		}
		return nil, err
	}

	return leaveRequestToDomain(dto)
}

// GetOverlappingLeaveRequests retrieves the worker's pending and approved
// requests whose period intersects the given one.
func (r *GormScheduleRepository) GetOverlappingLeaveRequests(ctx context.Context,
	workerID kernel.UUID, period kernel.DateRange) ([]*schedule.LeaveRequest, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	var dtos []LeaveRequestDTO
	if err := r.db.WithContext(ctx).
		Where("worker_id = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
			workerID.Bytes(),
			[]int{int(schedule.LeaveStatusPending), int(schedule.LeaveStatusApproved)},
			period.End(), period.Start()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*schedule.LeaveRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := leaveRequestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// HasApprovedLeave reports whether an approved leave request covers the given
// date for the worker.
func (r *GormScheduleRepository) HasApprovedLeave(ctx context.Context, workerID kernel.UUID,
	date time.Time) (bool, error) {
	if err := workerID.Validate(); err != nil {
		return false, err
	}

	day := kernel.Date(date)
	var count int64
	if err := r.db.WithContext(ctx).Model(&LeaveRequestDTO{}).
		Where("worker_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			workerID.Bytes(), int(schedule.LeaveStatusApproved), day, day).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
