// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Category columns are null until the order is classified; the version column
// backs the optimistic concurrency check on assignment.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	City                string    `gorm:"type:varchar(255);not null"`
	Street              string    `gorm:"type:varchar(255);not null"`
	ServiceType         string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text"`
	RequestedDate       time.Time `gorm:"type:date;not null;index"`
	CategoryServiceType *string   `gorm:"type:varchar(255)"`
	CategoryZone        *string   `gorm:"type:varchar(255)"`
	CategoryUrgent      bool
	Status              int        `gorm:"index"`
	WorkerID            *uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt          *time.Time
	Version             int `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		City:          aggregate.City(),
		Street:        aggregate.Street(),
		ServiceType:   aggregate.ServiceType(),
		Description:   aggregate.Description(),
		RequestedDate: aggregate.RequestedDate(),
		Status:        int(aggregate.Status()),
		WorkerID:      workerID,
		AssignedAt:    aggregate.AssignedAt(),
		Version:       aggregate.Version(),
	}

	if category := aggregate.Category(); category != nil {
		serviceType := category.ServiceType()
		zone := category.Zone()
		dto.CategoryServiceType = &serviceType
		dto.CategoryZone = &zone
		dto.CategoryUrgent = category.Urgent()
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including category, status, and
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var category *order.Category
	if dto.CategoryServiceType != nil && dto.CategoryZone != nil {
		c, catErr := order.NewCategory(*dto.CategoryServiceType, *dto.CategoryZone, dto.CategoryUrgent)
		if catErr != nil {
			return nil, catErr
		}
		category = &c
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	return order.RestoreOrder(id, dto.City, dto.Street, dto.ServiceType, dto.Description,
		dto.RequestedDate, category, order.Status(dto.Status), workerID, dto.AssignedAt, dto.Version)
}
