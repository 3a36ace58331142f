package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/employee"
	"supplychain/internal/core/domain/model/truck"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
)

// allocateTruck binds the lowest-ID available truck to the employee using
// the allocator's deterministic selection and the repository's
// compare-and-swap claim. Losing a claim race to a concurrent claimant moves
// on to the next candidate instead of failing.
//
// Returns true when a truck was bound. An already-bound employee is an
// idempotent no-op and an empty pool leaves the employee unbound; both
// return false with no error.
func allocateTruck(ctx context.Context, emp *employee.Employee, truckRepo ports.TruckRepository) (bool, error) {
	if emp.HasTruck() {
		return false, nil
	}

	candidates, err := truckRepo.GetAllAvailable(ctx)
	if err != nil {
		return false, err
	}

	allocator := services.NewTruckAllocator()
	for len(candidates) > 0 {
		selected, selectErr := allocator.Select(candidates)
		if errors.Is(selectErr, services.ErrNoTruckAvailable) {
			return false, nil
		}
		if selectErr != nil {
			return false, selectErr
		}

		claimErr := truckRepo.Claim(ctx, selected.ID())
		if errors.Is(claimErr, truck.ErrTruckIsNotAvailable) {
			candidates = withoutTruck(candidates, selected)
			continue
		}
		if claimErr != nil {
			return false, claimErr
		}

		if err = emp.AssignTruck(selected.ID()); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// withoutTruck removes one truck from the candidate set.
func withoutTruck(candidates []*truck.Truck, exclude *truck.Truck) []*truck.Truck {
	remaining := make([]*truck.Truck, 0, len(candidates))
	for _, t := range candidates {
		if !t.IsEqual(exclude) {
			remaining = append(remaining, t)
		}
	}
	return remaining
}
