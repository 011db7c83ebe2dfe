package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWorkingDaysQueryHandler reads a worker's calendar straight from the database.
type GetWorkingDaysQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkingDaysQueryHandler creates a handler for calendar queries.
func NewGetWorkingDaysQueryHandler(db *gorm.DB) GetWorkingDaysQueryHandler {
	return GetWorkingDaysQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by date ascending.
func (h GetWorkingDaysQueryHandler) Handle(
	ctx context.Context,
	query GetWorkingDaysQuery,
) ([]GetWorkingDaysQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	days := make([]GetWorkingDaysQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date,
			start_hour,
			end_hour
		FROM working_days
		WHERE worker_id = ? AND date BETWEEN ? AND ?
		ORDER BY date
	`, query.WorkerID().Bytes(), query.Period().Start(), query.Period().End()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var dayResp GetWorkingDaysQueryResponse

		err = rows.Scan(
			&dayResp.Date,
			&dayResp.StartHour,
			&dayResp.EndHour,
		)
		if err != nil {
			return nil, err
		}

		days = append(days, dayResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
