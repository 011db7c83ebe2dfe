package commands

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// CreateOrderCommandHandler registers new service orders.
//
// The order is classified at creation: the classifier derives the category
// from the command's attributes, the order records it once, and the order
// enters the pool in Unassigned status. Classification failures abort the
// command and nothing is persisted.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	classifier services.OrderClassifier
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory,
	classifier services.OrderClassifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		classifier: classifier,
	}
}

// Handle processes the order creation command.
// Returns services.ErrInvalidOrderInput when the attributes cannot be
// classified against the taxonomy.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(command.OrderID(), command.City(), command.Street(),
		command.ServiceType(), command.Description(), command.RequestedDate())
	if err != nil {
		return err
	}

	category, err := h.classifier.Classify(newOrder)
	if err != nil {
		return err
	}

	if err = newOrder.Classify(category); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
