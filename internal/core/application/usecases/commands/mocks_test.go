package commands_test

import (
	"context"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInUnassignedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInAssignedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByWorker(ctx context.Context, workerID kernel.UUID) (int, error) {
	args := m.Called(ctx, workerID)
	return args.Int(0), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAll(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAllByCapability(ctx context.Context,
	categoryCode string) ([]*worker.Worker, error) {
	args := m.Called(ctx, categoryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) AddWorkingDays(ctx context.Context, days []schedule.WorkingDay) error {
	args := m.Called(ctx, days)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetWorkingDays(ctx context.Context, workerID kernel.UUID,
	period kernel.DateRange) ([]schedule.WorkingDay, error) {
	args := m.Called(ctx, workerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.WorkingDay), args.Error(1)
}

func (m *MockScheduleRepository) HasWorkingDay(ctx context.Context, workerID kernel.UUID,
	date time.Time) (bool, error) {
	args := m.Called(ctx, workerID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockScheduleRepository) AddLeaveRequest(ctx context.Context, r *schedule.LeaveRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateLeaveRequest(ctx context.Context, r *schedule.LeaveRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetLeaveRequest(ctx context.Context,
	id kernel.UUID) (*schedule.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.LeaveRequest), args.Error(1)
}

func (m *MockScheduleRepository) GetOverlappingLeaveRequests(ctx context.Context, workerID kernel.UUID,
	period kernel.DateRange) ([]*schedule.LeaveRequest, error) {
	args := m.Called(ctx, workerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.LeaveRequest), args.Error(1)
}

func (m *MockScheduleRepository) HasApprovedLeave(ctx context.Context, workerID kernel.UUID,
	date time.Time) (bool, error) {
	args := m.Called(ctx, workerID, date)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderWorkerUoWFactory struct{ mock.Mock }

func (m *MockOrderWorkerUoWFactory) Create() commands.OrderWorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderWorkerUoW)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockRoleChecker struct{ mock.Mock }

func (m *MockRoleChecker) IsManager(ctx context.Context, workerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, workerID)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderAssigned(ctx context.Context, o *order.Order,
	assignee *worker.Worker) error {
	args := m.Called(ctx, o, assignee)
	return args.Error(0)
}

func (m *MockNotifier) NotifyOrderFinished(ctx context.Context, o *order.Order,
	assignee *worker.Worker) error {
	args := m.Called(ctx, o, assignee)
	return args.Error(0)
}

func (m *MockNotifier) NotifyLeaveReviewed(ctx context.Context, r *schedule.LeaveRequest,
	requester *worker.Worker) error {
	args := m.Called(ctx, r, requester)
	return args.Error(0)
}
