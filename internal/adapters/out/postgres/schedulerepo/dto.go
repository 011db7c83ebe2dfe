// Package schedulerepo provides data transfer objects and mapping functions
// for worker calendars: working days and leave requests.
package schedulerepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// WorkingDayDTO represents one calendar day of nominal availability.
// The composite key makes repeated provisioning naturally idempotent.
type WorkingDayDTO struct {
	WorkerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      time.Time `gorm:"type:date;primaryKey"`
	StartHour int       `gorm:"not null"`
	EndHour   int       `gorm:"not null"`
}

// TableName specifies the database table name for working days.
func (WorkingDayDTO) TableName() string {
	return "working_days"
}

// LeaveRequestDTO represents the database structure for persisting leave requests.
type LeaveRequestDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    time.Time  `gorm:"type:date;not null"`
	Reason     string     `gorm:"type:text"`
	Status     int        `gorm:"index"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for leave requests.
func (LeaveRequestDTO) TableName() string {
	return "leave_requests"
}

func workingDayFromDomain(day schedule.WorkingDay) WorkingDayDTO {
	return WorkingDayDTO{
		WorkerID:  day.WorkerID().Bytes(),
		Date:      day.Date(),
		StartHour: day.Window().StartHour(),
		EndHour:   day.Window().EndHour(),
	}
}

func workingDayToDomain(dto WorkingDayDTO) (schedule.WorkingDay, error) {
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return schedule.WorkingDay{}, err
	}

	window, err := schedule.NewTimeWindow(dto.StartHour, dto.EndHour)
	if err != nil {
		return schedule.WorkingDay{}, err
	}

	return schedule.NewWorkingDay(workerID, dto.Date, window)
}

func leaveRequestFromDomain(aggregate *schedule.LeaveRequest) LeaveRequestDTO {
	var reviewedBy *uuid.UUID
	if reviewer := aggregate.ReviewedBy(); reviewer != nil {
		raw := reviewer.Bytes()
		reviewedBy = &raw
	}

	return LeaveRequestDTO{
		ID:         aggregate.ID().Bytes(),
		WorkerID:   aggregate.WorkerID().Bytes(),
		StartDate:  aggregate.Period().Start(),
		EndDate:    aggregate.Period().End(),
		Reason:     aggregate.Reason(),
		Status:     int(aggregate.Status()),
		ReviewedBy: reviewedBy,
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func leaveRequestToDomain(dto LeaveRequestDTO) (*schedule.LeaveRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewDateRange(dto.StartDate, dto.EndDate)
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		reviewer, reviewerErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if reviewerErr != nil {
			return nil, reviewerErr
		}
		reviewedBy = &reviewer
	}

	return schedule.RestoreLeaveRequest(id, workerID, period, dto.Reason,
		schedule.LeaveStatus(dto.Status), reviewedBy, dto.CreatedAt)
}
