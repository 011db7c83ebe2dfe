package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
)

// RoleChecker answers role questions about workers. It backs the leave-review
// gate; checks run against the worker pool, not the session.
type RoleChecker interface {
	// IsManager reports whether the given worker holds the manager role.
	IsManager(ctx context.Context, workerID kernel.UUID) (bool, error)
}
