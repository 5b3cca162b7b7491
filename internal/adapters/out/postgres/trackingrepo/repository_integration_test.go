package trackingrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/trackingrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TrackingRepositoryIntegrationTestSuite verifies the append-only event trail
// against a real PostgreSQL instance.
type TrackingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *trackingrepo.GormTrackingRepository
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&trackingrepo.EventDTO{}))
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events").Error)
	suite.repository = trackingrepo.NewGormTrackingRepository(suite.db)
}

func (suite *TrackingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestAdd_ThenGetByOrder_RoundTrips() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	actor, err := tracking.NewActor(kernel.NewUUID(), tracking.RoleCarrier)
	suite.Require().NoError(err)

	point, err := kernel.NewGeoPoint(23.8103, 90.4125)
	suite.Require().NoError(err)

	event, err := tracking.NewEvent(
		kernel.NewUUID(), orderID, order.Shipped, actor, &point, "picked up at hub",
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, event))

	events, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)

	retrieved := events[0]
	suite.True(event.ID().IsEqual(retrieved.ID()))
	suite.True(orderID.IsEqual(retrieved.OrderID()))
	suite.Equal(order.Shipped, retrieved.Status())
	suite.True(actor.ID().IsEqual(retrieved.ActorID()))
	suite.Equal(tracking.RoleCarrier, retrieved.ActorRole())
	suite.Require().NotNil(retrieved.Point())
	suite.True(point.IsEqual(*retrieved.Point()))
	suite.Equal("picked up at hub", retrieved.Note())
	suite.WithinDuration(event.OccurredAt(), retrieved.OccurredAt(), time.Millisecond)
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestAdd_WithoutPoint_RoundTripsNil() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	actor, err := tracking.NewActor(kernel.NewUUID(), tracking.RoleBuyer)
	suite.Require().NoError(err)

	event, err := tracking.NewEvent(kernel.NewUUID(), orderID, order.Placed, actor, nil, "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, event))

	events, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Nil(events[0].Point())
	suite.Empty(events[0].Note())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestGetByOrder_ReturnsOldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	actor, err := tracking.NewActor(kernel.NewUUID(), tracking.RoleCarrier)
	suite.Require().NoError(err)

	statuses := []order.Status{order.Placed, order.Assigned, order.Shipped}
	timestamps := []time.Time{
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	}

	// Insert out of chronological order.
	for _, i := range []int{2, 0, 1} {
		event, restoreErr := tracking.RestoreEvent(
			kernel.NewUUID(), orderID, statuses[i],
			actor.ID(), actor.Role(), nil, "", timestamps[i],
		)
		suite.Require().NoError(restoreErr)
		suite.Require().NoError(suite.repository.Add(ctx, event))
	}

	events, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)
	suite.Equal(order.Placed, events[0].Status())
	suite.Equal(order.Assigned, events[1].Status())
	suite.Equal(order.Shipped, events[2].Status())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestGetByOrder_UnknownOrder_ReturnsEmptySlice() {
	events, err := suite.repository.GetByOrder(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(events)
}

func TestTrackingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingRepositoryIntegrationTestSuite))
}
