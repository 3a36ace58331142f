package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists only the status field, leaving concurrent
	// unrelated field changes untouched.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders in an active status (pending or
	// allocated), the set whose quantities make up product demand.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
