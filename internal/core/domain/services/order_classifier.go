package services

import (
	"errors"
	"fmt"
	"strings"

	"fieldops/internal/core/domain/model/order"
)

// ErrInvalidOrderInput is returned when order attributes cannot be classified:
// a required attribute is missing, the service type is not in the taxonomy, or
// the city does not map to any zone.
var ErrInvalidOrderInput = errors.New("invalid order input")

// Taxonomy is the static classification configuration loaded at startup.
// Zones maps a zone name to the cities it covers; UrgencyMarkers are
// case-insensitive prefixes of the order description that flag urgency.
type Taxonomy struct {
	ServiceTypes   []string            `yaml:"serviceTypes"`
	Zones          map[string][]string `yaml:"zones"`
	UrgencyMarkers []string            `yaml:"urgencyMarkers"`
}

// OrderClassifier derives an order's Category from its attributes.
//
// Classification is pure and deterministic: the same attributes always yield
// the same category, and classifying never mutates the order. The category is
// the service type crossed with the zone the order's city belongs to, plus an
// urgency flag read from description markers. Urgency never changes the
// category code, so it never narrows the candidate worker set.
type OrderClassifier struct {
	serviceTypes map[string]string
	cityZones    map[string]string
	markers      []string
}

// NewOrderClassifier builds a classifier from the given taxonomy.
// The taxonomy must define at least one service type and one zone.
func NewOrderClassifier(taxonomy Taxonomy) (OrderClassifier, error) {
	if len(taxonomy.ServiceTypes) == 0 {
		return OrderClassifier{}, fmt.Errorf("%w: taxonomy defines no service types", ErrInvalidOrderInput)
	}
	if len(taxonomy.Zones) == 0 {
		return OrderClassifier{}, fmt.Errorf("%w: taxonomy defines no zones", ErrInvalidOrderInput)
	}

	c := OrderClassifier{
		serviceTypes: make(map[string]string, len(taxonomy.ServiceTypes)),
		cityZones:    make(map[string]string),
		markers:      make([]string, 0, len(taxonomy.UrgencyMarkers)),
	}

	for _, st := range taxonomy.ServiceTypes {
		c.serviceTypes[normalize(st)] = st
	}
	for zone, cities := range taxonomy.Zones {
		for _, city := range cities {
			c.cityZones[normalize(city)] = zone
		}
	}
	for _, m := range taxonomy.UrgencyMarkers {
		c.markers = append(c.markers, normalize(m))
	}

	return c, nil
}

// Classify derives the category for the given order.
//
// Returns ErrInvalidOrderInput when the order's city, street, or service type
// is missing, the service type is unknown, or the city maps to no zone.
func (c OrderClassifier) Classify(o *order.Order) (order.Category, error) {
	if err := o.Validate(); err != nil {
		return order.Category{}, err
	}

	if o.City() == "" || o.Street() == "" || o.ServiceType() == "" {
		return order.Category{}, fmt.Errorf("%w: city, street and service type are required",
			ErrInvalidOrderInput)
	}

	serviceType, ok := c.serviceTypes[normalize(o.ServiceType())]
	if !ok {
		return order.Category{}, fmt.Errorf("%w: unknown service type %q", ErrInvalidOrderInput,
			o.ServiceType())
	}

	zone, ok := c.cityZones[normalize(o.City())]
	if !ok {
		return order.Category{}, fmt.Errorf("%w: city %q belongs to no zone", ErrInvalidOrderInput,
			o.City())
	}

	return order.NewCategory(serviceType, zone, c.isUrgent(o.Description()))
}

func (c OrderClassifier) isUrgent(description string) bool {
	d := normalize(description)
	for _, marker := range c.markers {
		if strings.HasPrefix(d, marker) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
