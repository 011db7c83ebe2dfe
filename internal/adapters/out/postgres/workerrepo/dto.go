// Package workerrepo provides data transfer objects and mapping functions for worker persistence.
// Capability tags live in a child table so the capability match on assignment
// is a plain indexed join.
package workerrepo

import (
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
type WorkerDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Email        string          `gorm:"type:varchar(255);not null"`
	Role         string          `gorm:"type:varchar(32);not null"`
	Capabilities []CapabilityDTO `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// CapabilityDTO is one capability tag of a worker.
type CapabilityDTO struct {
	WorkerID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryCode string    `gorm:"type:varchar(255);primaryKey;index"`
}

// TableName specifies the database table name for worker entities.
func (WorkerDTO) TableName() string {
	return "workers"
}

// TableName specifies the database table name for capability tags.
func (CapabilityDTO) TableName() string {
	return "worker_capabilities"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(aggregate *worker.Worker) WorkerDTO {
	tags := aggregate.Capabilities()
	capabilities := make([]CapabilityDTO, 0, len(tags))
	for _, tag := range tags {
		capabilities = append(capabilities, CapabilityDTO{
			WorkerID:     aggregate.ID().Bytes(),
			CategoryCode: tag,
		})
	}

	return WorkerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Role:         aggregate.Role().String(),
		Capabilities: capabilities,
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := worker.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	capabilities := make([]string, 0, len(dto.Capabilities))
	for _, capability := range dto.Capabilities {
		capabilities = append(capabilities, capability.CategoryCode)
	}

	return worker.RestoreWorker(id, dto.Name, dto.Email, role, capabilities)
}
