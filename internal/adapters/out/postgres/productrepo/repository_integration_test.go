package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

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

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers to verify the atomic counter
// statements against a real database.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	productRepository *productrepo.GormProductRepository
	tracker           *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.productRepository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// createTestProduct creates and persists a product with the given stock level.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(availableQuantity int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), "Test Widget", 9.99, availableQuantity, nil)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.productRepository.Add(context.Background(), p))
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	createdBy := kernel.NewUUID()

	original, err := product.NewProduct(kernel.NewUUID(), "Widget", 19.5, 10, &createdBy)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.productRepository.Add(ctx, original))

	retrieved, err := suite.productRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Widget", retrieved.Name())
	suite.InDelta(19.5, retrieved.Price(), 0.001)
	suite.Equal(10, retrieved.AvailableQuantity())
	suite.Equal(0, retrieved.TotalRequiredQuantity())
	suite.Equal(0, retrieved.TotalShipped())
	suite.Equal(product.Sufficient, retrieved.Status())
	suite.Require().NotNil(retrieved.CreatedBy())
	suite.True(retrieved.CreatedBy().IsEqual(createdBy))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.productRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustRequired_Accumulates() {
	ctx := context.Background()
	p := suite.createTestProduct(10)

	counters, err := suite.productRepository.AdjustRequired(ctx, p.ID(), 5)
	suite.Require().NoError(err)
	suite.Equal(ports.ProductCounters{TotalRequiredQuantity: 5, TotalShipped: 0, AvailableQuantity: 10}, counters)

	counters, err = suite.productRepository.AdjustRequired(ctx, p.ID(), 3)
	suite.Require().NoError(err)
	suite.Equal(8, counters.TotalRequiredQuantity)

	counters, err = suite.productRepository.AdjustRequired(ctx, p.ID(), -2)
	suite.Require().NoError(err)
	suite.Equal(6, counters.TotalRequiredQuantity)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustRequired_ClampsAtZero() {
	ctx := context.Background()
	p := suite.createTestProduct(10)

	_, err := suite.productRepository.AdjustRequired(ctx, p.ID(), 5)
	suite.Require().NoError(err)

	counters, err := suite.productRepository.AdjustRequired(ctx, p.ID(), -50)
	suite.Require().NoError(err)
	suite.Equal(0, counters.TotalRequiredQuantity, "demand counter must never go negative")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustRequired_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.productRepository.AdjustRequired(ctx, kernel.NewUUID(), 5)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustRequired_ConcurrentDeltas_AllApply() {
	ctx := context.Background()
	p := suite.createTestProduct(100)

	const workers = 10
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.productRepository.AdjustRequired(ctx, p.ID(), 5)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	retrieved, err := suite.productRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(workers*5, retrieved.TotalRequiredQuantity(),
		"every concurrent delta must land exactly once")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRecordShipped_MovesDemandIntoShippedBucket() {
	ctx := context.Background()
	p := suite.createTestProduct(10)

	_, err := suite.productRepository.AdjustRequired(ctx, p.ID(), 8)
	suite.Require().NoError(err)

	counters, err := suite.productRepository.RecordShipped(ctx, p.ID(), 5)
	suite.Require().NoError(err)
	suite.Equal(3, counters.TotalRequiredQuantity)
	suite.Equal(5, counters.TotalShipped)

	counters, err = suite.productRepository.RecordShipped(ctx, p.ID(), 5)
	suite.Require().NoError(err)
	suite.Equal(0, counters.TotalRequiredQuantity, "demand clamps at zero when over-shipped")
	suite.Equal(10, counters.TotalShipped, "shipped total keeps accumulating")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRecordShipped_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	p := suite.createTestProduct(10)

	_, err := suite.productRepository.RecordShipped(ctx, p.ID(), 0)
	suite.Require().Error(err)

	_, err = suite.productRepository.RecordShipped(ctx, p.ID(), -3)
	suite.Require().Error(err)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdateStatus_PreservesCounters() {
	ctx := context.Background()
	p := suite.createTestProduct(10)

	_, err := suite.productRepository.AdjustRequired(ctx, p.ID(), 15)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.productRepository.UpdateStatus(ctx, p.ID(), product.OnDemand))

	retrieved, err := suite.productRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(product.OnDemand, retrieved.Status())
	suite.Equal(15, retrieved.TotalRequiredQuantity())
	suite.Equal(10, retrieved.AvailableQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdateStatus_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.productRepository.UpdateStatus(ctx, kernel.NewUUID(), product.OnDemand)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsZeroedCounters() {
	ctx := context.Background()
	p := suite.createTestProduct(10)

	_, err := suite.productRepository.AdjustRequired(ctx, p.ID(), 5)
	suite.Require().NoError(err)

	// Restore with counters back at zero and write the full row.
	reset, err := product.RestoreProduct(p.ID(), p.Name(), p.Price(), 10, 0, 0, product.Sufficient, nil)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", reset.ID(), reset).Once()
	suite.Require().NoError(suite.productRepository.Update(ctx, reset))

	retrieved, err := suite.productRepository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.TotalRequiredQuantity(), "zero-valued columns must overwrite stored values")

	suite.tracker.AssertExpectations(suite.T())
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
