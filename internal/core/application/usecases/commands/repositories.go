// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Every handler follows the same shape: validate the command,
// capture prior state inside a transaction, compute the effect, persist
// partial updates, commit. Each entity-changing event either applies all
// of its correlated row updates or none of them.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// TruckRepoFactory provides access to the truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW manages transactions for operations that touch an order and
	// its owning product's demand counters together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipmentUoW manages transactions for shipment operations, which span
	// the shipment, its order, the product counters, and the employee's truck.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
		ProductRepoFactory
		EmployeeRepoFactory
		TruckRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// EmployeeUoW manages transactions for employee lifecycle operations,
	// which always pair the employee with the truck pool.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		TruckRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// TruckUoW manages transactions for truck pool maintenance.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}
)
