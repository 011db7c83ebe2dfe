package worker

import (
	"errors"
	"slices"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a worker without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a worker without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrWorkerIsNotConstructed is returned when using an improperly initialized Worker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker constructor")
)

// Worker represents a member of the fixed field-worker pool.
//
// Workers are provisioned by an external user-management flow and are
// read-only to the assignment core: the core never changes a worker's role or
// capabilities, it only reads them to build candidate sets. A worker's
// calendar lives in the schedule package, keyed by the worker's ID.
//
// Capability tags are category codes ("serviceType/zone"); a worker is a
// candidate for an order when its tags contain the order's category code.
type Worker struct {
	id           kernel.UUID
	name         string
	email        string
	role         Role
	capabilities []string

	guard guard.ConstructorGuard
}

// NewWorker creates a Worker with the given identity, role, and capability tags.
// All parameters except capabilities are required; a worker without tags is
// valid but will never be an assignment candidate.
func NewWorker(id kernel.UUID, name, email string, role Role, capabilities []string) (*Worker, error) {
	w := &Worker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setEmail(email),
		w.setRole(role),
	); err != nil {
		return nil, err
	}

	w.capabilities = slices.Clone(capabilities)
	return w, nil
}

// RestoreWorker reconstructs a Worker from persistence.
func RestoreWorker(id kernel.UUID, name, email string, role Role, capabilities []string) (*Worker, error) {
	return NewWorker(id, name, email, role, capabilities)
}

// Validate ensures the Worker was constructed through a constructor.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// IsEqual compares two workers by their unique identifiers.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's display name.
func (w *Worker) Name() string {
	return w.name
}

// Email returns the worker's notification address.
func (w *Worker) Email() string {
	return w.email
}

// Role returns the worker's organizational role.
func (w *Worker) Role() Role {
	return w.role
}

// Capabilities returns the worker's capability tags.
func (w *Worker) Capabilities() []string {
	return slices.Clone(w.capabilities)
}

// CanHandle reports whether the worker's capability tags cover the given
// order category.
func (w *Worker) CanHandle(category order.Category) bool {
	return slices.Contains(w.capabilities, category.Code())
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Worker) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	w.email = email
	return nil
}

func (w *Worker) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	w.role = role
	return nil
}
