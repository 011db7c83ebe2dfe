package ports

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/model/worker"
)

// Notifier delivers best-effort notifications about workflow outcomes.
// Implementations must not let delivery failures affect the calling command;
// failures are logged and dropped.
type Notifier interface {
	// NotifyOrderAssigned tells a worker an order was assigned to them.
	NotifyOrderAssigned(ctx context.Context, aggregate *order.Order, assignee *worker.Worker) error

	// NotifyOrderFinished tells the assignee an order they held was completed.
	NotifyOrderFinished(ctx context.Context, aggregate *order.Order, assignee *worker.Worker) error

	// NotifyLeaveReviewed tells a worker their leave request was decided.
	NotifyLeaveReviewed(ctx context.Context, request *schedule.LeaveRequest, requester *worker.Worker) error
}
