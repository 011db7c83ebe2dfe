// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for the read side of the CQRS architecture:
// handlers bypass the domain model and read the database directly.
package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves the assignment backlog: classified orders
// still waiting for a worker.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve the backlog.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse is one backlog entry.
type GetUnassignedOrdersQueryResponse struct {
	ID            kernel.UUID
	City          string
	Street        string
	CategoryCode  string
	Urgent        bool
	RequestedDate time.Time
}
