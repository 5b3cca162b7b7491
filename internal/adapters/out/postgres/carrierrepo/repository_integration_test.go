package carrierrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/carrierrepo"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CarrierRepositoryIntegrationTestSuite verifies carrier persistence and the
// zone directory lookup against a real PostgreSQL instance.
type CarrierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *carrierrepo.GormCarrierRepository
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&carrierrepo.CarrierDTO{}))
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carriers").Error)
	suite.repository = carrierrepo.NewGormCarrierRepository(suite.db)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()

	original := suite.createCarrier("Northwind Logistics", "NORTH", false)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal("Northwind Logistics", retrieved.Name())
	suite.Equal("NORTH", retrieved.Zone().Code())
	suite.False(retrieved.IsVerified())
	suite.True(retrieved.IsActive())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_NonExistentCarrier_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_PersistsVerificationAndActivity() {
	ctx := context.Background()

	testCarrier := suite.createCarrier("Northwind Logistics", "NORTH", false)
	suite.Require().NoError(suite.repository.Add(ctx, testCarrier))

	testCarrier.Verify()
	testCarrier.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, testCarrier))

	retrieved, err := suite.repository.Get(ctx, testCarrier.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsVerified())
	suite.False(retrieved.IsActive())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestUpdate_NonExistentCarrier_ReturnsNotFoundError() {
	err := suite.repository.Update(
		context.Background(),
		suite.createCarrier("Ghost Carrier", "NORTH", true),
	)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestFindVerifiedByZone_FiltersEligibility() {
	ctx := context.Background()

	verified := suite.createCarrier("Verified North", "NORTH", true)
	unverified := suite.createCarrier("Unverified North", "NORTH", false)
	inactive := suite.createCarrier("Inactive North", "NORTH", true)
	inactive.Deactivate()
	otherZone := suite.createCarrier("Verified South", "SOUTH", true)

	for _, c := range []*carrier.Carrier{verified, unverified, inactive, otherZone} {
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	northZone, err := kernel.NewZone("NORTH")
	suite.Require().NoError(err)

	carriers, err := suite.repository.FindVerifiedByZone(ctx, northZone)
	suite.Require().NoError(err)
	suite.Require().Len(carriers, 1)
	suite.True(verified.ID().IsEqual(carriers[0].ID()))
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestFindVerifiedByZone_OrdersByID() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c := suite.createCarrier("Carrier", "NORTH", true)
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	northZone, err := kernel.NewZone("NORTH")
	suite.Require().NoError(err)

	carriers, err := suite.repository.FindVerifiedByZone(ctx, northZone)
	suite.Require().NoError(err)
	suite.Require().Len(carriers, 3)

	for i := 1; i < len(carriers); i++ {
		suite.Less(carriers[i-1].ID().String(), carriers[i].ID().String())
	}
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestFindVerifiedByZone_EmptyZone_ReturnsEmptySlice() {
	emptyZone, err := kernel.NewZone("EAST")
	suite.Require().NoError(err)

	carriers, err := suite.repository.FindVerifiedByZone(context.Background(), emptyZone)
	suite.Require().NoError(err)
	suite.Empty(carriers)
}

func (suite *CarrierRepositoryIntegrationTestSuite) createCarrier(
	name, zoneCode string, verified bool,
) *carrier.Carrier {
	zone, err := kernel.NewZone(zoneCode)
	suite.Require().NoError(err)

	c, err := carrier.NewCarrier(kernel.NewUUID(), name, zone)
	suite.Require().NoError(err)
	if verified {
		c.Verify()
	}
	return c
}

func TestCarrierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CarrierRepositoryIntegrationTestSuite))
}
