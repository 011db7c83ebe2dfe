package commands

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/application/scheduling"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// maxAssignAttempts bounds retries on optimistic-lock conflicts with other
// orders' assignments.
const maxAssignAttempts = 3

var (
	// ErrNoOrderFound is returned by backlog assignment when no unassigned
	// order exists.
	ErrNoOrderFound = errors.New("no order found")

	// ErrOrderAlreadyAssigned is returned when a concurrent run assigned the
	// target order first.
	ErrOrderAlreadyAssigned = errors.New("order already assigned")

	// ErrAssignmentContention is returned when repeated optimistic-lock
	// conflicts exhausted the retry budget.
	ErrAssignmentContention = errors.New("assignment contention")
)

// AssignOrderCommandHandler matches orders with workers.
//
// Within one transaction it builds the candidate set (capability tags covering
// the order's category), ensures each candidate's default calendar exists,
// filters by availability on the requested date, and lets the deterministic
// selector pick. The candidate lookup locks the matching worker rows for the
// rest of the transaction, so the availability and load reads cannot
// interleave with a concurrent leave approval or a competing assignment over
// the same workers. The commit is additionally protected by the order row's
// version: the loser of a same-order race gets ErrOrderAlreadyAssigned,
// conflicts caused by other rows are retried up to maxAssignAttempts times.
//
// In backlog mode the handler walks the waiting orders oldest first and skips
// any order no worker can take right now, so one unservable order cannot
// stall the rest of the backlog.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	selector   services.AssignmentSelector
	planner    services.SchedulePlanner
	notifier   ports.Notifier
	clock      func() time.Time
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
// The notifier may be nil; assignment notifications are best effort.
func NewAssignOrderCommandHandler(uowFactory UoWFactory, selector services.AssignmentSelector,
	planner services.SchedulePlanner, notifier ports.Notifier,
	clock func() time.Time) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		planner:    planner,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the assignment command.
//
// Returns ErrNoOrderFound when the backlog is empty,
// order.ErrOrderNotClassified for an unclassified order,
// services.ErrNoEligibleWorker when no capable worker is available for the
// target order (or, in backlog mode, for any waiting order — everything stays
// unassigned), ErrOrderAlreadyAssigned when a concurrent run won the target
// order, and ErrAssignmentContention after exhausted retries.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxAssignAttempts; attempt++ {
		assigned, assignee, err := h.tryAssign(ctx, command)
		if err == nil {
			if h.notifier != nil {
				_ = h.notifier.NotifyOrderAssigned(ctx, assigned, assignee)
			}
			return nil
		}

		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}

		lost, checkErr := h.lostToConcurrentAssign(ctx, command)
		if checkErr != nil {
			return checkErr
		}
		if lost {
			return ErrOrderAlreadyAssigned
		}
	}

	return ErrAssignmentContention
}

func (h AssignOrderCommandHandler) tryAssign(ctx context.Context,
	command AssignOrderCommand) (*order.Order, *worker.Worker, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	workerRepo := uow.WorkerRepository()

	backlog, err := h.fetchOrders(ctx, orderRepo, command)
	if err != nil {
		return nil, nil, err
	}
	if len(backlog) == 0 {
		return nil, nil, ErrNoOrderFound
	}

	store, err := scheduling.NewStore(uow.ScheduleRepository(), h.planner, h.clock)
	if err != nil {
		return nil, nil, err
	}

	_, targeted := command.OrderID()

	for _, aggregate := range backlog {
		assignee, pickErr := h.pickAssignee(ctx, store, orderRepo, workerRepo, aggregate)
		if pickErr != nil {
			// An unservable order must not stall the rest of the backlog.
			if !targeted && errors.Is(pickErr, services.ErrNoEligibleWorker) {
				continue
			}
			return nil, nil, pickErr
		}

		if err = aggregate.Assign(assignee.ID(), h.clock()); err != nil {
			return nil, nil, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, nil, err
		}

		if err = uow.Commit(ctx); err != nil {
			return nil, nil, err
		}

		return aggregate, assignee, nil
	}

	return nil, nil, services.ErrNoEligibleWorker
}

func (h AssignOrderCommandHandler) fetchOrders(ctx context.Context, orderRepo ports.OrderRepository,
	command AssignOrderCommand) ([]*order.Order, error) {
	if id, ok := command.OrderID(); ok {
		aggregate, err := orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return []*order.Order{aggregate}, nil
	}

	return orderRepo.GetAllInUnassignedStatus(ctx)
}

// pickAssignee locks the capable workers, filters them by availability on the
// order's requested date, and lets the selector choose.
func (h AssignOrderCommandHandler) pickAssignee(ctx context.Context, store scheduling.Store,
	orderRepo ports.OrderRepository, workerRepo ports.WorkerRepository,
	aggregate *order.Order) (*worker.Worker, error) {
	category := aggregate.Category()
	if category == nil {
		return nil, order.ErrOrderNotClassified
	}

	capable, err := workerRepo.GetAllByCapability(ctx, category.Code())
	if err != nil {
		return nil, err
	}

	candidates, err := h.collectCandidates(ctx, store, orderRepo, aggregate, capable)
	if err != nil {
		return nil, err
	}

	return h.selector.Select(aggregate, candidates)
}

// collectCandidates keeps the workers available on the order's requested date,
// paired with their current load. Missing calendars are provisioned on the way.
func (h AssignOrderCommandHandler) collectCandidates(ctx context.Context, store scheduling.Store,
	orderRepo ports.OrderRepository, aggregate *order.Order,
	capable []*worker.Worker) ([]services.Candidate, error) {
	var candidates []services.Candidate
	for _, w := range capable {
		if _, err := store.EnsureWorkerHasSchedule(ctx, w.ID()); err != nil {
			return nil, err
		}

		available, err := store.IsAvailable(ctx, w.ID(), aggregate.RequestedDate())
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}

		load, err := orderRepo.CountActiveByWorker(ctx, w.ID())
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, services.Candidate{Worker: w, ActiveLoad: load})
	}

	return candidates, nil
}

// lostToConcurrentAssign re-reads the target order after a version conflict.
// A target that moved to Assigned means another run won the same order;
// backlog assignment has no fixed target, its conflicts are always retried.
func (h AssignOrderCommandHandler) lostToConcurrentAssign(ctx context.Context,
	command AssignOrderCommand) (bool, error) {
	id, ok := command.OrderID()
	if !ok {
		return false, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		return false, err
	}

	return aggregate.Status() == order.Assigned, nil
}
