package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is guarded by the aggregate's version: if the stored row has
	// moved on, Update fails with a VersionIsInvalidError and persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInUnassignedStatus retrieves the orders waiting for a worker,
	// oldest requested date first. The assignment sweep walks this list so an
	// unservable head cannot stall the orders behind it.
	GetAllInUnassignedStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllInAssignedStatus retrieves all orders currently held by workers.
	GetAllInAssignedStatus(ctx context.Context) ([]*order.Order, error)

	// CountActiveByWorker returns the number of orders in Assigned status held
	// by the given worker. Counted inside the caller's transaction so the
	// assignment pick sees a consistent load snapshot.
	CountActiveByWorker(ctx context.Context, workerID kernel.UUID) (int, error)
}
