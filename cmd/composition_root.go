package cmd

import (
	"context"
	"time"

	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"

	"gorm.io/gorm"
)

// Default calendar policy: thirty full weekdays ahead, eight-hour days.
const (
	defaultHorizonWeekdays = 30
	defaultWindowStartHour = 8
	defaultWindowEndHour   = 16
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	classifier services.OrderClassifier
	selector   services.AssignmentSelector
	planner    services.SchedulePlanner
	notifier   ports.Notifier
}

// NewCompositionRoot wires the application services over the given database.
// The notifier may be nil when no SMTP server is configured.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, taxonomy services.Taxonomy,
	notifier ports.Notifier) (CompositionRoot, error) {
	classifier, err := services.NewOrderClassifier(taxonomy)
	if err != nil {
		return CompositionRoot{}, err
	}

	window, err := schedule.NewTimeWindow(defaultWindowStartHour, defaultWindowEndHour)
	if err != nil {
		return CompositionRoot{}, err
	}

	planner, err := services.NewSchedulePlanner(defaultHorizonWeekdays, window)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		classifier: classifier,
		selector:   services.NewAssignmentSelector(),
		planner:    planner,
		notifier:   notifier,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.classifier)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.selector, c.planner, c.notifier, time.Now)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	var f commands.OrderWorkerUoWFactory = FuncOrderWorkerUoWFactory(func() commands.OrderWorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitLeaveRequestCommandHandler() commands.SubmitLeaveRequestCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitLeaveRequestCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateReviewLeaveRequestCommandHandler() commands.ReviewLeaveRequestCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewLeaveRequestCommandHandler(f, c.CreateRoleChecker(), c.notifier)
}

func (c *CompositionRoot) CreateEnsureSchedulesCommandHandler() commands.EnsureSchedulesCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnsureSchedulesCommandHandler(f, c.planner, time.Now)
}

func (c *CompositionRoot) CreateRoleChecker() ports.RoleChecker {
	return workerRoleChecker{uowFactory: c.uowFactory}
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingLeaveRequestsQueryHandler() queries.GetPendingLeaveRequestsQueryHandler {
	return queries.NewGetPendingLeaveRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkingDaysQueryHandler() queries.GetWorkingDaysQueryHandler {
	return queries.NewGetWorkingDaysQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderWorkerUoWFactory func() commands.OrderWorkerUoW

func (f FuncOrderWorkerUoWFactory) Create() commands.OrderWorkerUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// workerRoleChecker answers role questions by reading the worker pool.
// Runs outside any transaction; a role read needs no isolation.
type workerRoleChecker struct {
	uowFactory postgres.GormUnitOfWorkFactory
}

func (rc workerRoleChecker) IsManager(ctx context.Context, workerID kernel.UUID) (bool, error) {
	uow := rc.uowFactory.Create()

	w, err := uow.WorkerRepository().Get(ctx, workerID)
	if err != nil {
		return false, err
	}

	return w.Role() == worker.RoleManager, nil
}
