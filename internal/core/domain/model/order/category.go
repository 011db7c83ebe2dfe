package order

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// Category is the assignment classification of an order: the service type it
// requires crossed with the geographic zone it falls into, plus an urgency
// flag. Workers advertise the category codes they can handle as capability
// tags, and the assigner only considers workers whose tags include the
// order's category code.
//
// Category is a value object: immutable, derived exactly once per order by
// the classifier, and never recomputed implicitly afterwards.
type Category struct {
	serviceType string
	zone        string
	urgent      bool
}

// NewCategory creates a Category from a service type and zone identifier.
// Both must be non-empty; they come from the classification taxonomy, not
// free-form user input.
func NewCategory(serviceType, zone string, urgent bool) (Category, error) {
	if serviceType == "" {
		return Category{}, errs.NewValueIsRequiredError("serviceType")
	}
	if zone == "" {
		return Category{}, errs.NewValueIsRequiredError("zone")
	}

	return Category{
		serviceType: serviceType,
		zone:        zone,
		urgent:      urgent,
	}, nil
}

// ServiceType returns the service-type component of the category.
func (c Category) ServiceType() string {
	return c.serviceType
}

// Zone returns the geographic zone component of the category.
func (c Category) Zone() string {
	return c.zone
}

// Urgent reports whether the order was classified as urgent.
func (c Category) Urgent() bool {
	return c.urgent
}

// Code returns the canonical "serviceType/zone" tag matched against worker
// capability tags. Urgency is not part of the code: it affects scheduling
// policy, not which workers are capable.
func (c Category) Code() string {
	return fmt.Sprintf("%s/%s", c.serviceType, c.zone)
}

// IsEqual compares two categories by all components.
func (c Category) IsEqual(other Category) bool {
	return c == other
}

// Validate checks the category carries both taxonomy components.
func (c Category) Validate() error {
	if c.serviceType == "" || c.zone == "" {
		return errs.NewValueIsRequiredError("category must be created via NewCategory")
	}
	return nil
}
