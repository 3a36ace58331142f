package employee

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
)

const (
	// defaultContact is recorded when an employee is hired without contact details.
	defaultContact = "Not Provided"
)

var (
	// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
	// created through NewEmployee or RestoreEmployee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

	// ErrEmployeeAlreadyHasTruck is returned when assigning a truck to an
	// employee who is already bound to one.
	ErrEmployeeAlreadyHasTruck = errors.New("employee already has a truck assigned")
)

// Employee represents a delivery worker. Each employee holds at most one
// truck from the pool; the binding is nullable and exclusive. An employee
// without a truck is a valid operating state, not an error; allocation is
// retried later when trucks free up.
type Employee struct {
	// id is the unique identifier for the employee
	id kernel.UUID

	// userID references the account this employee was created for
	userID kernel.UUID

	// contact is a free-form contact line, defaulting to "Not Provided"
	contact string

	// truckID is the exclusively bound truck (nil when none is available)
	truckID *kernel.UUID

	// isConstructed ensures the employee was created via a constructor
	isConstructed bool
}

// NewEmployee creates a new Employee without a truck. An empty contact is
// replaced with the default placeholder.
func NewEmployee(id, userID kernel.UUID, contact string) (*Employee, error) {
	e := &Employee{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setUserID(userID),
	); err != nil {
		return nil, err
	}

	e.setContact(contact)
	return e, nil
}

// RestoreEmployee reconstructs an Employee from persistence, including an
// optional truck binding.
func RestoreEmployee(id, userID kernel.UUID, contact string, truckID *kernel.UUID) (*Employee, error) {
	e, err := NewEmployee(id, userID, contact)
	if err != nil {
		return nil, err
	}

	if truckID != nil {
		if err = truckID.Validate(); err != nil {
			return nil, err
		}
		e.truckID = truckID
	}

	return e, nil
}

// Validate ensures the Employee instance was properly constructed.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// IsEqual compares two employees by their unique identifiers.
func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// UserID returns the identifier of the backing user account.
func (e *Employee) UserID() kernel.UUID {
	return e.userID
}

// Contact returns the employee's contact line.
func (e *Employee) Contact() string {
	return e.contact
}

// TruckID returns the bound truck's identifier, or nil when unbound.
func (e *Employee) TruckID() *kernel.UUID {
	return e.truckID
}

// HasTruck reports whether the employee is bound to a truck.
func (e *Employee) HasTruck() bool {
	return e.truckID != nil
}

// AssignTruck binds a truck to the employee. The binding is exclusive:
// assigning while already bound returns ErrEmployeeAlreadyHasTruck, which the
// allocator uses to keep repeat allocation attempts idempotent.
func (e *Employee) AssignTruck(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	if e.truckID != nil {
		return ErrEmployeeAlreadyHasTruck
	}

	e.truckID = &truckID
	return nil
}

// ReleaseTruck removes the truck binding and returns the released truck's
// identifier, or nil when the employee had none.
func (e *Employee) ReleaseTruck() *kernel.UUID {
	released := e.truckID
	e.truckID = nil
	return released
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	e.userID = userID
	return nil
}

func (e *Employee) setContact(contact string) {
	if contact == "" {
		contact = defaultContact
	}
	e.contact = contact
}
