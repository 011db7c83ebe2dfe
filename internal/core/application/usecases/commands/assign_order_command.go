package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand or NewAssignNextOrderCommand constructor",
)

// AssignOrderCommand triggers assignment of an order to a worker.
//
// With a target order id the command assigns (or reassigns) that order.
// Without one it drains the backlog: the oldest unassigned order is picked.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign the given order.
func NewAssignOrderCommand(orderID kernel.UUID) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewAssignNextOrderCommand creates a command to assign the oldest unassigned
// order. Used by the assignment sweep and event listeners.
func NewAssignNextOrderCommand() AssignOrderCommand {
	return AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through a constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the target order id and whether one was set.
func (c AssignOrderCommand) OrderID() (kernel.UUID, bool) {
	if c.orderID == nil {
		return kernel.UUID{}, false
	}
	return *c.orderID, true
}
