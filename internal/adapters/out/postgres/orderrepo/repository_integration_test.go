package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"freighthub/internal/adapters/out/postgres/orderrepo"
	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/order"
	"freighthub/internal/core/domain/model/participant"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createOpenOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresAllFields() {
	ctx := context.Background()

	original := suite.createOpenOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.CustomerID().IsEqual(original.CustomerID()))
	suite.Equal(vehicle.LongbedTarpaulin, retrieved.TruckType())
	suite.Equal("20 pallets of tile", retrieved.Cargo())
	suite.Equal("Warehouse 4, Omsk", retrieved.PickupAddress())
	suite.Equal("Lenina 10, Novosibirsk", retrieved.DeliveryAddress())
	suite.Equal("2026-09-14", retrieved.DeliveryDate())
	suite.Equal(order.Open, retrieved.Status())
	suite.WithinDuration(original.WindowCloseAt(), retrieved.WindowCloseAt(), time.Second)
	suite.Nil(retrieved.Winner())
	suite.Nil(retrieved.WinningPrice())
	suite.False(retrieved.CustomerConfirmed())
	suite.False(retrieved.CarrierConfirmed())
	suite.Nil(retrieved.Cancellation())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WinnerAssignment_Persisted() {
	ctx := context.Background()

	testOrder := suite.createOpenOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	winnerID := kernel.NewUUID()
	price, err := kernel.NewPrice(45000)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.CloseWindow(true))
	suite.Require().NoError(testOrder.AssignWinner(winnerID, price))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.Winner())
	suite.True(retrieved.Winner().IsEqual(winnerID))
	suite.Equal(int64(45000), retrieved.WinningPrice().Amount())
}

// Covers the reopen transition: nulled winner columns and reset confirmation
// flags must overwrite the previously persisted values.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CarrierCancellation_ClearsWinnerColumns() {
	ctx := context.Background()

	testOrder := suite.createOpenOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	winnerID := kernel.NewUUID()
	price, err := kernel.NewPrice(45000)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.CloseWindow(true))
	suite.Require().NoError(testOrder.AssignWinner(winnerID, price))
	_, _, err = testOrder.Confirm(participant.Customer)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.CancelByCarrier("truck broke down", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AwaitingSelection, retrieved.Status())
	suite.Nil(retrieved.Winner())
	suite.Nil(retrieved.WinningPrice())
	suite.False(retrieved.CustomerConfirmed())
	suite.False(retrieved.CarrierConfirmed())
	suite.Require().NotNil(retrieved.Cancellation())
	suite.Equal("truck broke down", retrieved.Cancellation().Reason)
	suite.Equal(participant.Carrier, retrieved.Cancellation().Role)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CustomerCancellation_Persisted() {
	ctx := context.Background()

	testOrder := suite.createOpenOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.CancelByCustomer("plans changed", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Require().NotNil(retrieved.Cancellation())
	suite.Equal("plans changed", retrieved.Cancellation().Reason)
	suite.Equal(participant.Customer, retrieved.Cancellation().Role)
	suite.True(retrieved.Cancellation().By.IsEqual(testOrder.CustomerID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createOpenOrder()
	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) createOpenOrder() *order.Order {
	now := time.Now().UTC()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), vehicle.LongbedTarpaulin,
		"20 pallets of tile", "Warehouse 4, Omsk", "Lenina 10, Novosibirsk", "2026-09-14",
		now, now.Add(time.Hour))
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
