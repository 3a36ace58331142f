package queries_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for wiring repositories in tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetProductsQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetProductsQueryHandler
	productRepo *productrepo.GormProductRepository
}

func (suite *GetProductsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProductsQueryHandler(db)
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *GetProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsQueryHandlerTestSuite) addProduct(name string, availableQuantity int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, 9.99, availableQuantity, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), p))
	return p
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_ReturnsCatalogSortedByName() {
	suite.addProduct("Zinc Plate", 5)
	suite.addProduct("Anvil", 3)
	suite.addProduct("Mallet", 7)

	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Anvil", result[0].Name)
	suite.Equal("Mallet", result[1].Name)
	suite.Equal("Zinc Plate", result[2].Name)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_ServesPersistedCountersAndStatus() {
	p := suite.addProduct("Widget", 10)

	_, err := suite.productRepo.AdjustRequired(context.Background(), p.ID(), 15)
	suite.Require().NoError(err)
	err = suite.productRepo.UpdateStatus(context.Background(), p.ID(), product.OnDemand)
	suite.Require().NoError(err)

	_, err = suite.productRepo.RecordShipped(context.Background(), p.ID(), 4)
	suite.Require().NoError(err)

	query := queries.NewGetProductsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(p.ID(), result[0].ID)
	suite.Equal(10, result[0].AvailableQuantity)
	suite.Equal(11, result[0].TotalRequiredQuantity)
	suite.Equal(4, result[0].TotalShipped)
	suite.Equal("on_demand", result[0].Status, "read path must serve the stored status, not rederive it")
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProductsQuery constructor")
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addProduct("Widget", 10)

	query := queries.NewGetProductsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsQueryHandlerTestSuite))
}
