package truck

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrTruckIsNotConstructed is returned when a Truck instance was not created
	// through NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

	// ErrPlateNumberIsRequired is returned when attempting to create a truck without a plate number.
	ErrPlateNumberIsRequired = errs.NewValueIsRequiredError("plateNumber")

	// ErrTruckIsNotAvailable is returned when claiming a truck that is already taken.
	ErrTruckIsNotAvailable = errors.New("truck is not available")
)

// Truck is the pooled delivery resource. Availability is the single shared
// flag the rest of the system contends on: employee creation claims a truck,
// employee removal releases it, and shipment delivery releases it once the
// employee has nothing left in transit.
//
// A truck is bound to at most one employee at a time; the persistence layer
// enforces the claim with a compare-and-swap on the availability flag so that
// two concurrent claimants cannot both win.
type Truck struct {
	// id is the unique identifier for the truck
	id kernel.UUID

	// plateNumber is the registration plate; identifies the vehicle to operators
	plateNumber string

	// isAvailable reports whether the truck can be claimed by an employee
	isAvailable bool

	// isConstructed ensures the truck was created via a constructor
	isConstructed bool
}

// NewTruck creates a new available Truck.
func NewTruck(id kernel.UUID, plateNumber string) (*Truck, error) {
	t := &Truck{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlateNumber(plateNumber),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a Truck from persistence with its stored availability.
func RestoreTruck(id kernel.UUID, plateNumber string, isAvailable bool) (*Truck, error) {
	t, err := NewTruck(id, plateNumber)
	if err != nil {
		return nil, err
	}

	t.isAvailable = isAvailable
	return t, nil
}

// Validate ensures the Truck instance was properly constructed.
func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

// IsEqual compares two trucks by their unique identifiers.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// PlateNumber returns the truck's registration plate.
func (t *Truck) PlateNumber() string {
	return t.plateNumber
}

// IsAvailable reports whether the truck can be claimed.
func (t *Truck) IsAvailable() bool {
	return t.isAvailable
}

// Claim marks the truck as taken. Returns ErrTruckIsNotAvailable when the
// truck is already bound, so callers never blindly overwrite the flag.
func (t *Truck) Claim() error {
	if !t.isAvailable {
		return ErrTruckIsNotAvailable
	}
	t.isAvailable = false
	return nil
}

// Release returns the truck to the pool unconditionally. The allocation is
// strictly one-to-one, so no other employee can still depend on it.
func (t *Truck) Release() {
	t.isAvailable = true
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return ErrPlateNumberIsRequired
	}
	t.plateNumber = plateNumber
	return nil
}
