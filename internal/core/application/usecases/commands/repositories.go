// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fieldops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// ScheduleRepoFactory provides access to the schedule repository within a transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderWorkerUoW manages transactions for order operations that also need
	// worker lookups, such as completion notifications to the assignee.
	OrderWorkerUoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
	}

	// OrderWorkerUoWFactory creates new order-and-worker unit of work instances.
	OrderWorkerUoWFactory interface {
		Create() OrderWorkerUoW
	}

	// ScheduleUoW manages transactions for calendar operations. The worker
	// repository rides along for existence checks and notification lookups.
	ScheduleUoW interface {
		TxManager
		ScheduleRepoFactory
		WorkerRepoFactory
	}

	// ScheduleUoWFactory creates new schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// UoW manages transactions spanning orders, workers, and calendars.
	// Used by assignment, which reads all three to make one consistent pick.
	UoW interface {
		TxManager
		OrderRepoFactory
		WorkerRepoFactory
		ScheduleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
