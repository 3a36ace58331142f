package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for the truck pool.
//
// Claim and Release are compare-and-swap operations on the availability flag,
// never blind writes: employee creation and shipment delivery can contend for
// the same truck, and exactly one claimant may win.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAllAvailable retrieves all claimable trucks ordered by ID, so
	// allocation stays deterministic.
	GetAllAvailable(ctx context.Context) ([]*truck.Truck, error)

	// Claim marks the truck unavailable iff it is currently available.
	// Returns truck.ErrTruckIsNotAvailable when a concurrent claimant won
	// the swap.
	Claim(ctx context.Context, id kernel.UUID) error

	// Release marks the truck available again. The one-to-one allocation
	// makes the release unconditional.
	Release(ctx context.Context, id kernel.UUID) error
}
