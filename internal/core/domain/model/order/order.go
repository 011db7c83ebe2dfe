package order

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotClassified is returned when an operation requires a category
	// but the order has not been classified yet.
	ErrOrderNotClassified = errors.New("order has no category yet")

	// ErrOrderAlreadyClassified is returned when a second classification is
	// attempted. A category is recorded exactly once.
	ErrOrderAlreadyClassified = errors.New("order category is already recorded")
)

// Order is the aggregate root for a customer service order. It owns the order
// lifecycle from creation through classification and worker assignment to
// completion.
//
// Invariants:
//   - Valid unique identifier, non-empty city/street, non-zero requested date
//   - At most one active assignment at a time; reassignment supersedes,
//     never duplicates
//   - The category is set once, by explicit classification
//   - A finished order is immutable
//
// The assignment record (worker id plus assigned-at timestamp) survives
// finishing for history; it is cleared only when a fresh assignment
// supersedes it.
type Order struct {
	id            kernel.UUID
	city          string
	street        string
	serviceType   string
	description   string
	requestedDate time.Time
	category      *Category
	status        Status
	workerID      *kernel.UUID
	assignedAt    *time.Time

	// version supports optimistic concurrency control in the repository:
	// it matches the stored row version at load time and the repository
	// refuses stale writes.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Unclassified status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - city, street: service address; the city feeds zone classification
//   - serviceType: requested service attribute, matched against the taxonomy
//   - description: free-form customer description of the job
//   - requestedDate: the calendar day the customer asked the work for
//
// All validation errors are aggregated and returned together.
func NewOrder(
	id kernel.UUID,
	city string,
	street string,
	serviceType string,
	description string,
	requestedDate time.Time,
) (*Order, error) {
	o := &Order{
		status:      Unclassified,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCity(city),
		o.setStreet(street),
		o.setServiceType(serviceType),
		o.setRequestedDate(requestedDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence.
// Unlike NewOrder it accepts the full persisted state, including status,
// category, assignment, and row version, and validates their consistency.
func RestoreOrder(
	id kernel.UUID,
	city string,
	street string,
	serviceType string,
	description string,
	requestedDate time.Time,
	category *Category,
	status Status,
	workerID *kernel.UUID,
	assignedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCity(city),
		o.setStreet(street),
		o.setServiceType(serviceType),
		o.setRequestedDate(requestedDate),
		status.Validate(),
		status.ValidateCanHaveWorker(workerID != nil),
	); err != nil {
		return nil, err
	}

	if category != nil {
		if err := category.Validate(); err != nil {
			return nil, err
		}
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	o.category = category
	o.status = status
	o.workerID = workerID
	o.assignedAt = assignedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// City returns the service address city.
func (o *Order) City() string {
	return o.city
}

// Street returns the service address street.
func (o *Order) Street() string {
	return o.street
}

// ServiceType returns the requested service attribute.
func (o *Order) ServiceType() string {
	return o.serviceType
}

// Description returns the customer's description of the job.
func (o *Order) Description() string {
	return o.description
}

// RequestedDate returns the calendar day the work was requested for.
func (o *Order) RequestedDate() time.Time {
	return o.requestedDate
}

// Category returns the recorded classification, or nil before classification.
func (o *Order) Category() *Category {
	return o.category
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Worker returns the assigned worker's ID, or nil if unassigned.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// AssignedAt returns the time of the current assignment, or nil if unassigned.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// Version returns the optimistic-concurrency row version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// Classify records the category derived by the classifier and moves the order
// to Unassigned. A category is recorded exactly once; calling Classify on an
// already-classified order returns ErrOrderAlreadyClassified.
func (o *Order) Classify(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if o.category != nil {
		return ErrOrderAlreadyClassified
	}

	newStatus, err := o.status.Classify()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.category = &category
	return nil
}

// Assign binds the order to a worker at the given time and moves the status
// to Assigned.
//
// Business rules:
//   - The order must be classified (ErrOrderNotClassified otherwise)
//   - Assignment is allowed from Unassigned and Assigned status; assigning an
//     already-assigned order supersedes the previous assignment
func (o *Order) Assign(workerID kernel.UUID, at time.Time) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if o.category == nil {
		return ErrOrderNotClassified
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	assignedAt := at.UTC()
	o.status = newStatus
	o.workerID = &workerID
	o.assignedAt = &assignedAt
	return nil
}

// Finish marks the order as completed. Only Assigned orders can be finished;
// the assignment record is retained for history.
func (o *Order) Finish() error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	o.city = city
	return nil
}

func (o *Order) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	o.street = street
	return nil
}

func (o *Order) setServiceType(serviceType string) error {
	if serviceType == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setRequestedDate(requestedDate time.Time) error {
	if requestedDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedDate")
	}
	o.requestedDate = kernel.Date(requestedDate)
	return nil
}
