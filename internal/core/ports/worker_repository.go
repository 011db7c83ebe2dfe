// Package ports defines the outbound contracts of the assignment core:
// repositories, the unit of work, notifications, and the role gate.
// These interfaces keep the application layer independent of infrastructure.
package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for the worker pool.
// The pool is provisioned externally; the core only reads it, Add exists for
// provisioning flows and test fixtures.
type WorkerRepository interface {
	// Add persists a new worker.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetForUpdate retrieves a worker and locks its row until the surrounding
	// transaction ends. The worker row is the serialization point for all
	// availability-affecting writes: leave submission, leave review, and
	// assignment must hold this lock so their read-then-write sequences
	// cannot interleave for the same worker.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetAll retrieves the whole worker pool.
	GetAll(ctx context.Context) ([]*worker.Worker, error)

	// GetAllByCapability retrieves the workers whose capability tags contain
	// the given category code, locking each returned row until the
	// surrounding transaction ends. Assignment holds these locks while it
	// reads availability and load, so concurrent leave approvals and
	// competing assignments over the same workers serialize against it.
	GetAllByCapability(ctx context.Context, categoryCode string) ([]*worker.Worker, error)
}
