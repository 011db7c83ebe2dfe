package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand marks an assigned order as completed.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to complete the given order.
func NewFinishOrderCommand(orderID kernel.UUID) (FinishOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinishOrderCommand{}, err
	}

	return FinishOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c FinishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
