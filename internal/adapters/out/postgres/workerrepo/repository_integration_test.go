package workerrepo_test

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/adapters/out/postgres/workerrepo"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// WorkerRepositoryIntegrationTestSuite provides integration tests for WorkerRepository
// using PostgreSQL containers to verify database persistence behavior.
type WorkerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *workerrepo.GormWorkerRepository
	tracker    *MockAggregateTracker
}

func (suite *WorkerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&workerrepo.WorkerDTO{}, &workerrepo.CapabilityDTO{}))
}

func (suite *WorkerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE workers CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE worker_capabilities").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = workerrepo.NewGormWorkerRepository(suite.db, suite.tracker)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsCapabilities() {
	ctx := context.Background()

	testWorker := suite.createWorker("Alice", worker.RoleEmployee, "repair/zoneA", "installation/zoneB")

	suite.tracker.On("TrackAggregate", testWorker.ID(), testWorker).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testWorker))

	retrieved, err := suite.repository.Get(ctx, testWorker.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testWorker.ID()))
	suite.Equal("Alice", retrieved.Name())
	suite.Equal(worker.RoleEmployee, retrieved.Role())
	suite.ElementsMatch([]string{"repair/zoneA", "installation/zoneB"}, retrieved.Capabilities())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGet_NonExistentWorker_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetAll_ReturnsWholePool() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createWorker("Alice", worker.RoleEmployee, "repair/zoneA")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createWorker("Bob", worker.RoleEmployee)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createWorker("Carol", worker.RoleManager, "repair/zoneA")))

	pool, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(pool, 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetAllByCapability_FiltersByTag() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	capable := suite.createWorker("Alice", worker.RoleEmployee, "repair/zoneA", "repair/zoneB")
	alsoCapable := suite.createWorker("Bob", worker.RoleEmployee, "repair/zoneA")
	other := suite.createWorker("Carol", worker.RoleEmployee, "installation/zoneA")

	suite.Require().NoError(suite.repository.Add(ctx, capable))
	suite.Require().NoError(suite.repository.Add(ctx, alsoCapable))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	matched, err := suite.repository.GetAllByCapability(ctx, "repair/zoneA")
	suite.Require().NoError(err)
	suite.Len(matched, 2)

	for _, w := range matched {
		suite.False(w.ID().IsEqual(other.ID()))
		suite.Contains(w.Capabilities(), "repair/zoneA")
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetAllByCapability_NoMatch_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createWorker("Alice", worker.RoleEmployee, "repair/zoneA")))

	matched, err := suite.repository.GetAllByCapability(ctx, "cleaning/zoneC")
	suite.Require().NoError(err)
	suite.Empty(matched)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentTransactions() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()
	testWorker := suite.createWorker("Alice", worker.RoleEmployee, "repair/zoneA")
	suite.Require().NoError(suite.repository.Add(ctx, testWorker))

	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	holder := workerrepo.NewGormWorkerRepository(tx1, new(MockAggregateTracker))

	locked, err := holder.GetForUpdate(ctx, testWorker.ID())
	suite.Require().NoError(err)
	suite.True(locked.ID().IsEqual(testWorker.ID()))

	acquired := make(chan error, 1)
	go func() {
		tx2 := suite.db.Begin()
		if tx2.Error != nil {
			acquired <- tx2.Error
			return
		}
		defer tx2.Rollback()

		waiter := workerrepo.NewGormWorkerRepository(tx2, new(MockAggregateTracker))
		_, lockErr := waiter.GetForUpdate(ctx, testWorker.ID())
		acquired <- lockErr
	}()

	select {
	case <-acquired:
		suite.Fail("second transaction acquired the worker row while the first still held it")
	case <-time.After(200 * time.Millisecond):
	}

	suite.Require().NoError(tx1.Rollback().Error)

	select {
	case err := <-acquired:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the worker row after release")
	}
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGetAllByCapability_LocksMatchedRows() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()
	testWorker := suite.createWorker("Alice", worker.RoleEmployee, "repair/zoneA")
	suite.Require().NoError(suite.repository.Add(ctx, testWorker))

	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	assignSide := workerrepo.NewGormWorkerRepository(tx1, new(MockAggregateTracker))

	matched, err := assignSide.GetAllByCapability(ctx, "repair/zoneA")
	suite.Require().NoError(err)
	suite.Require().Len(matched, 1)

	acquired := make(chan error, 1)
	go func() {
		tx2 := suite.db.Begin()
		if tx2.Error != nil {
			acquired <- tx2.Error
			return
		}
		defer tx2.Rollback()

		reviewSide := workerrepo.NewGormWorkerRepository(tx2, new(MockAggregateTracker))
		_, lockErr := reviewSide.GetForUpdate(ctx, testWorker.ID())
		acquired <- lockErr
	}()

	select {
	case <-acquired:
		suite.Fail("candidate row was lockable while an assignment transaction held it")
	case <-time.After(200 * time.Millisecond):
	}

	suite.Require().NoError(tx1.Rollback().Error)

	select {
	case err := <-acquired:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("candidate row never became lockable after release")
	}
}

func (suite *WorkerRepositoryIntegrationTestSuite) createWorker(name string, role worker.Role,
	capabilities ...string) *worker.Worker {
	w, err := worker.NewWorker(kernel.NewUUID(), name, name+"@fieldops.example", role, capabilities)
	suite.Require().NoError(err)
	return w
}

func TestWorkerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryIntegrationTestSuite))
}
