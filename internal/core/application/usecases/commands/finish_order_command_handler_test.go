package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinishOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	assignee := newPoolWorker(t, "repair/zoneA")
	testOrder := newUnassignedOrder(t)
	require.NoError(t, testOrder.Assign(assignee.ID(), testNow))
	cmd, err := commands.NewFinishOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workerRepo := new(MockWorkerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("WorkerRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderFinished", ctx, testOrder, assignee).Return(nil).Once()

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Finished, testOrder.Status())
	assert.NotNil(t, testOrder.Worker(), "assignment record is retained")
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinishOrderCommandHandler_Handle_NotAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := newUnassignedOrder(t)
	cmd, err := commands.NewFinishOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestFinishOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewFinishOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestFinishOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FinishOrderCommand{} // not constructed properly

	factory := new(MockOrderWorkerUoWFactory)
	handler := commands.NewFinishOrderCommandHandler(factory, nil)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrFinishOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
