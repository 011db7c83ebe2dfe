package queries

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingLeaveRequestsQueryHandler reads the review queue straight from the
// database.
type GetPendingLeaveRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingLeaveRequestsQueryHandler creates a handler for review queue queries.
func NewGetPendingLeaveRequestsQueryHandler(db *gorm.DB) GetPendingLeaveRequestsQueryHandler {
	return GetPendingLeaveRequestsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by submission time so managers
// review in first-come order.
func (h GetPendingLeaveRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingLeaveRequestsQuery,
) ([]GetPendingLeaveRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingLeaveRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			start_date,
			end_date,
			reason,
			created_at
		FROM leave_requests
		WHERE status = ?
		ORDER BY created_at, id
	`, schedule.LeaveStatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var requestResp GetPendingLeaveRequestsQueryResponse
		var id, workerID uuid.UUID

		err = rows.Scan(
			&id,
			&workerID,
			&requestResp.StartDate,
			&requestResp.EndDate,
			&requestResp.Reason,
			&requestResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		requestResp.ID = requestID

		requesterID, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}
		requestResp.WorkerID = requesterID

		requests = append(requests, requestResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
