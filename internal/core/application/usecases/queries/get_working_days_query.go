package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetWorkingDaysQueryIsNotConstructed = errors.New(
	"GetWorkingDaysQuery must be created via NewGetWorkingDaysQuery constructor",
)

// GetWorkingDaysQuery retrieves a worker's installed calendar over a period.
type GetWorkingDaysQuery struct {
	workerID kernel.UUID
	period   kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGetWorkingDaysQuery creates a query for the given worker and period.
func NewGetWorkingDaysQuery(workerID kernel.UUID, period kernel.DateRange) (GetWorkingDaysQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkingDaysQuery{}, err
	}
	if err := period.Validate(); err != nil {
		return GetWorkingDaysQuery{}, err
	}

	return GetWorkingDaysQuery{
		workerID: workerID,
		period:   period,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// WorkerID returns the worker whose calendar is requested.
func (q GetWorkingDaysQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// Period returns the requested date range.
func (q GetWorkingDaysQuery) Period() kernel.DateRange {
	return q.period
}

// Validate ensures the query was created through the constructor.
func (q GetWorkingDaysQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkingDaysQueryIsNotConstructed)
}

// GetWorkingDaysQueryResponse is one installed calendar day.
type GetWorkingDaysQueryResponse struct {
	Date      time.Time
	StartHour int
	EndHour   int
}
