package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/model/worker"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchedulesCommandHandler_Handle_TopsUpEveryWorker(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewEnsureSchedulesCommand()

	first := newPoolWorker(t, "repair/zoneA")
	second := newPoolWorker(t, "installation/zoneB")

	workerRepo := new(MockWorkerRepository)
	scheduleRepo := new(MockScheduleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkerRepository").Return(workerRepo).Once()
	uow.On("ScheduleRepository").Return(scheduleRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	workerRepo.On("GetAll", ctx).Return([]*worker.Worker{first, second}, nil).Once()

	// Empty calendars; the store installs the full horizon for each worker.
	scheduleRepo.On("GetWorkingDays", ctx, first.ID(), mock.AnythingOfType("kernel.DateRange")).
		Return([]schedule.WorkingDay{}, nil)
	scheduleRepo.On("GetWorkingDays", ctx, second.ID(), mock.AnythingOfType("kernel.DateRange")).
		Return([]schedule.WorkingDay{}, nil)
	scheduleRepo.On("AddWorkingDays", ctx, mock.AnythingOfType("[]schedule.WorkingDay")).
		Return(nil).Times(2)

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEnsureSchedulesCommandHandler(factory, testPlanner(t), testClock)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	scheduleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEnsureSchedulesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.EnsureSchedulesCommand{} // not constructed properly

	factory := new(MockScheduleUoWFactory)
	handler := commands.NewEnsureSchedulesCommandHandler(factory, testPlanner(t), testClock)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEnsureSchedulesCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
