package commands

import (
	"context"

	"fieldops/internal/core/ports"
)

// FinishOrderCommandHandler completes assigned orders.
// The assignment record stays on the finished order for the audit trail.
type FinishOrderCommandHandler struct {
	uowFactory OrderWorkerUoWFactory
	notifier   ports.Notifier
}

// NewFinishOrderCommandHandler creates a handler for order completion.
// The notifier may be nil; completion notifications are best effort.
func NewFinishOrderCommandHandler(uowFactory OrderWorkerUoWFactory,
	notifier ports.Notifier) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
// Returns order.ErrInvalidTransition when the order is not in Assigned status
// and an ObjectNotFoundError when the order does not exist.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, command FinishOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Finish(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	// The assignee stays on the finished order, so the lookup happens after
	// the transition.
	assignee, err := uow.WorkerRepository().Get(ctx, *aggregate.Worker())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		_ = h.notifier.NotifyOrderFinished(ctx, aggregate, assignee)
	}

	return nil
}
