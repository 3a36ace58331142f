package services

import (
	"errors"
	"sort"

	"supplychain/internal/core/domain/model/truck"
)

// ErrNoTruckAvailable is returned when the pool has no claimable truck.
// Callers treat this as a normal operating state, not a failure: the employee
// simply stays unbound until allocation is retried.
var ErrNoTruckAvailable = errors.New("no truck available")

// TruckAllocator is a domain service selecting which pool truck an employee
// should claim.
//
// Business rules:
//   - Allocation is strictly one-to-one: a claimed truck belongs to exactly
//     one employee
//   - Selection is deterministic: the available truck with the lowest ID
//     (lexicographic UUID order) wins, so repeated runs over the same pool
//     pick the same truck
//
// The allocator only selects; the actual claim is a compare-and-swap on the
// truck's availability flag performed by the caller, so a concurrent
// claimant losing the race can fall back to the next candidate.
type TruckAllocator struct{}

// NewTruckAllocator creates a new TruckAllocator instance.
func NewTruckAllocator() TruckAllocator {
	return TruckAllocator{}
}

// Select picks the available candidate with the lowest ID.
// Returns ErrNoTruckAvailable when no candidate can be claimed.
func (TruckAllocator) Select(candidates []*truck.Truck) (*truck.Truck, error) {
	available := make([]*truck.Truck, 0, len(candidates))
	for _, t := range candidates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if t.IsAvailable() {
			available = append(available, t)
		}
	}

	if len(available) == 0 {
		return nil, ErrNoTruckAvailable
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].ID().String() < available[j].ID().String()
	})

	return available[0], nil
}
