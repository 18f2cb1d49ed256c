package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CustomerRepositoryIntegrationTestSuite provides integration tests for the
// customer repository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer(name, email string) *customer.Customer {
	entity, err := customer.NewCustomer(name, email, "+1-555-0100")
	suite.Require().NoError(err)
	return entity
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	entity := suite.createTestCustomer("Alice", "alice@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, entity))

	restored, err := suite.repository.Get(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.Equal(entity.ID(), restored.ID())
	suite.Equal("Alice", restored.Name())
	suite.Equal("alice@example.com", restored.Email())
	suite.Equal("+1-555-0100", restored.Phone())
	suite.True(restored.Active())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NonExistentCustomer_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_ReturnsCustomersSortedByName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCustomer("Charlie", "charlie@example.com")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCustomer("Alice", "alice@example.com")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCustomer("Bob", "bob@example.com")))

	customers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(customers, 3)
	suite.Equal("Alice", customers[0].Name())
	suite.Equal("Bob", customers[1].Name())
	suite.Equal("Charlie", customers[2].Name())
}

func TestCustomerRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
