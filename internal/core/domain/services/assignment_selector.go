package services

import (
	"errors"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/worker"
)

// ErrNoEligibleWorker is returned when no capable, available worker exists for
// an order. The order stays unassigned; assignment can be retried later.
var ErrNoEligibleWorker = errors.New("no eligible worker")

// Candidate pairs a worker with its current number of active assignments.
// The load is counted by the caller inside the assignment transaction so the
// pick reflects a consistent snapshot.
type Candidate struct {
	Worker     *worker.Worker
	ActiveLoad int
}

// AssignmentSelector picks the worker an order should go to.
//
// Selection is deterministic: among candidates whose capability tags cover the
// order's category, the worker with the fewest active assignments wins; ties
// break on the lowest worker identifier. Determinism keeps concurrent
// assignment runs convergent and makes outcomes reproducible in tests.
//
// The selector only decides, it does not mutate the order. Availability
// filtering happens in the caller, which has calendar access.
type AssignmentSelector struct{}

// NewAssignmentSelector creates a new AssignmentSelector instance.
func NewAssignmentSelector() AssignmentSelector {
	return AssignmentSelector{}
}

// Select returns the worker for the given order out of the candidates.
//
// Returns order.ErrOrderNotClassified when the order has no category yet and
// ErrNoEligibleWorker when no candidate's capabilities cover the category.
func (s AssignmentSelector) Select(o *order.Order, candidates []Candidate) (*worker.Worker, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	category := o.Category()
	if category == nil {
		return nil, order.ErrOrderNotClassified
	}

	var best Candidate
	for _, c := range candidates {
		if err := c.Worker.Validate(); err != nil {
			return nil, err
		}

		if !c.Worker.CanHandle(*category) {
			continue
		}

		if best.Worker == nil || s.beats(c, best) {
			best = c
		}
	}

	if best.Worker == nil {
		return nil, ErrNoEligibleWorker
	}

	return best.Worker, nil
}

func (s AssignmentSelector) beats(c, best Candidate) bool {
	if c.ActiveLoad != best.ActiveLoad {
		return c.ActiveLoad < best.ActiveLoad
	}
	return c.Worker.ID().Less(best.Worker.ID())
}
