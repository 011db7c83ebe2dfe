package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new service order.
// Carries the raw attributes classification derives the category from.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	city          string
	street        string
	serviceType   string
	description   string
	requestedDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new service order.
// City, street, and service type are required; the description is free text.
func NewCreateOrderCommand(orderID kernel.UUID, city, street, serviceType, description string,
	requestedDate time.Time) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCity(city),
		command.setStreet(street),
		command.setServiceType(serviceType),
		command.setRequestedDate(requestedDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// City returns the order's city, the zone source for classification.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Street returns the service location street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// ServiceType returns the requested service type.
func (c CreateOrderCommand) ServiceType() string {
	return c.serviceType
}

// Description returns the free-text request description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// RequestedDate returns the date the service is requested for.
func (c CreateOrderCommand) RequestedDate() time.Time {
	return c.requestedDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	c.street = street
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType string) error {
	if serviceType == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setRequestedDate(requestedDate time.Time) error {
	if requestedDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedDate")
	}

	c.requestedDate = requestedDate
	return nil
}
