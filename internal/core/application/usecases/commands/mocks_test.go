package commands_test

import (
	"context"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/employee"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/truck"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustRequired(
	ctx context.Context,
	id kernel.UUID,
	delta int,
) (ports.ProductCounters, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(ports.ProductCounters), args.Error(1)
}

func (m *MockProductRepository) RecordShipped(
	ctx context.Context,
	id kernel.UUID,
	qty int,
) (ports.ProductCounters, error) {
	args := m.Called(ctx, id, qty)
	return args.Get(0).(ports.ProductCounters), args.Error(1)
}

func (m *MockProductRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status product.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) HasInTransitForEmployee(
	ctx context.Context,
	employeeID, excludeShipmentID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, employeeID, excludeShipmentID)
	return args.Bool(0), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetAllWithoutTruck(ctx context.Context) ([]*employee.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employee.Employee), args.Error(1)
}

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAllAvailable(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) Claim(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTruckRepository) Release(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockTruckUoWFactory struct{ mock.Mock }

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockSyncCredentialRepository struct{ mock.Mock }

func (m *MockSyncCredentialRepository) GetByUser(ctx context.Context, userID kernel.UUID) (ports.SyncCredentials, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(ports.SyncCredentials), args.Error(1)
}

type MockProductSyncClient struct{ mock.Mock }

func (m *MockProductSyncClient) SyncProduct(
	ctx context.Context,
	creds ports.SyncCredentials,
	name string,
	price float64,
	quantity int,
) (int64, error) {
	args := m.Called(ctx, creds, name, price, quantity)
	return args.Get(0).(int64), args.Error(1)
}
