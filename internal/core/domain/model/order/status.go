package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation would move an order
// through a status transition the lifecycle does not permit.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Unclassified ──> Unassigned ──> Assigned ──> Finished
//	                      ^             │
//	                      └─────────────┘
//	                (reassignment allowed)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unclassified is the initial status of a freshly created order.
	// Orders in this status carry no category yet and cannot be assigned.
	Unclassified

	// Unassigned indicates the order has been classified and is waiting
	// for a worker.
	Unassigned

	// Assigned indicates the order is bound to a worker.
	// Orders can be reassigned to a different worker while in this status.
	Assigned

	// Finished indicates the work has been completed.
	// This is a final state; finished orders are immutable.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Unclassified: "Unclassified",
		Unassigned:   "Unassigned",
		Assigned:     "Assigned",
		Finished:     "Finished",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unclassified: "Unclassified",
		Unassigned:   "Unassigned",
		Assigned:     "Assigned",
		Finished:     "Finished",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks whether the status allows a worker assignment
// without performing the transition. Assignment is allowed from Unassigned
// (initial assignment) and Assigned (reassignment); a finished or
// unclassified order cannot be assigned.
func (s Status) ValidateAssign() error {
	if s != Unassigned && s != Assigned {
		return fmt.Errorf("%w: cannot assign order in status %s", ErrInvalidTransition, s)
	}
	return nil
}

// ValidateCanHaveWorker validates the consistency between order status and
// worker assignment when restoring from persistence:
// only Assigned and Finished orders carry a worker.
func (s Status) ValidateCanHaveWorker(hasWorker bool) error {
	if hasWorker && s != Assigned && s != Finished {
		return fmt.Errorf("%w: status %s cannot have a worker", ErrInvalidTransition, s)
	}

	if !hasWorker && (s == Assigned || s == Finished) {
		return fmt.Errorf("%w: status %s must have a worker", ErrInvalidTransition, s)
	}

	return nil
}

// Classify transitions the status from Unclassified to Unassigned.
// Any other starting status fails: a category is recorded exactly once.
func (s Status) Classify() (Status, error) {
	if s != Unclassified {
		return 0, fmt.Errorf("%w: cannot classify order in status %s", ErrInvalidTransition, s)
	}

	return Unassigned, nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Unassigned -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different worker)
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Finish transitions the status from Assigned to Finished.
// Finished is terminal; no further transitions are possible.
func (s Status) Finish() (Status, error) {
	if s != Assigned {
		return 0, fmt.Errorf("%w: cannot finish order in status %s", ErrInvalidTransition, s)
	}

	return Finished, nil
}
