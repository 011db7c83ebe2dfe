package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetPendingLeaveRequestsQueryIsNotConstructed = errors.New(
	"GetPendingLeaveRequestsQuery must be created via NewGetPendingLeaveRequestsQuery constructor",
)

// GetPendingLeaveRequestsQuery retrieves the manager review queue: all leave
// requests still awaiting a decision, oldest submission first.
type GetPendingLeaveRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingLeaveRequestsQuery creates a query to retrieve the review queue.
func NewGetPendingLeaveRequestsQuery() GetPendingLeaveRequestsQuery {
	return GetPendingLeaveRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingLeaveRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingLeaveRequestsQueryIsNotConstructed)
}

// GetPendingLeaveRequestsQueryResponse is one entry of the review queue.
type GetPendingLeaveRequestsQueryResponse struct {
	ID        kernel.UUID
	WorkerID  kernel.UUID
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	CreatedAt time.Time
}
