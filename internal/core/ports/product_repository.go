// Package ports defines the contracts between the domain core and
// infrastructure adapters: per-aggregate repositories, the unit of work, and
// the external product sync collaborator. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
)

// ProductCounters carries the demand counters of a product as returned by an
// atomic in-place update, so the caller can derive the status from fresh
// values instead of a stale read.
type ProductCounters struct {
	TotalRequiredQuantity int
	TotalShipped          int
	AvailableQuantity     int
}

// ProductRepository defines the persistence contract for product aggregates.
//
// Counter mutations are expressed as atomic in-place updates rather than
// read-then-write sequences: two concurrent order events on the same product
// must serialize at the row so neither delta is lost. Each mutation persists
// only the fields it computes, never the full row.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// AdjustRequired applies a signed delta to the product's total required
	// quantity as a single atomic expression, clamping the result at a floor
	// of 0, and returns the resulting counters.
	AdjustRequired(ctx context.Context, id kernel.UUID, delta int) (ProductCounters, error)

	// RecordShipped atomically decrements the total required quantity by qty
	// (floored at 0) and increments total shipped by the same amount,
	// returning the resulting counters. Used only by the shipment delivery
	// finalize path.
	RecordShipped(ctx context.Context, id kernel.UUID, qty int) (ProductCounters, error)

	// UpdateStatus persists only the derived status field.
	UpdateStatus(ctx context.Context, id kernel.UUID, status product.Status) error
}
