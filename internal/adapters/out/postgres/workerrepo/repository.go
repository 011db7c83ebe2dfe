package workerrepo

import (
	"context"
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkerRepository implements WorkerRepository using GORM.
// The worker pool is provisioned externally, so the repository is read-mostly:
// Add serves provisioning flows, everything else is lookups.
type GormWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerRepository {
	return &GormWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new worker and its capability tags to the database.
func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a worker by ID, capability tags included.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).Preload("Capabilities").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a worker and takes a FOR UPDATE lock on its row.
// Inside a transaction the lock holds until commit or rollback, serializing
// every availability-affecting write for that worker; outside one it is a
// plain read.
func (r *GormWorkerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Capabilities").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole worker pool.
func (r *GormWorkerRepository) GetAll(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Preload("Capabilities").
		Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByCapability retrieves the workers whose capability tags contain the
// given category code. The matching worker rows are locked FOR UPDATE for the
// duration of the transaction; rows are read in id order, so concurrent
// callers acquire the locks in the same order and cannot deadlock.
func (r *GormWorkerRepository) GetAllByCapability(ctx context.Context,
	categoryCode string) ([]*worker.Worker, error) {
	if categoryCode == "" {
		return nil, errs.NewValueIsRequiredError("categoryCode")
	}

	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Preload("Capabilities").
		Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Table:    clause.Table{Name: "workers"},
		}).
		Joins("JOIN worker_capabilities ON worker_capabilities.worker_id = workers.id").
		Where("worker_capabilities.category_code = ?", categoryCode).
		Order("workers.id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []WorkerDTO) ([]*worker.Worker, error) {
	workers := make([]*worker.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, nil
}
