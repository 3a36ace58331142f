package shipment

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents one delivery run fulfilling an order, executed by an
// employee with their assigned truck.
//
// Shipment follows these invariants:
//   - References exactly one order and one employee for its lifetime
//   - Starts in InTransit and transitions to Delivered at most once
//
// The delivery side effects on the order, the product counters, and the truck
// pool are applied by the delivery handler exactly once, keyed on this
// aggregate's status.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// orderID references the fulfilled order; immutable after construction
	orderID kernel.UUID

	// employeeID references the executing employee; immutable after construction
	employeeID kernel.UUID

	// status is the current state in the shipment lifecycle
	status Status

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a new Shipment in InTransit status.
func NewShipment(id, orderID, employeeID kernel.UUID) (*Shipment, error) {
	s := &Shipment{
		status:        InTransit,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence with its stored status.
func RestoreShipment(id, orderID, employeeID kernel.UUID, status Status) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s, err := NewShipment(id, orderID, employeeID)
	if err != nil {
		return nil, err
	}

	s.status = status
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the fulfilled order's identifier.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// EmployeeID returns the executing employee's identifier.
func (s *Shipment) EmployeeID() kernel.UUID {
	return s.employeeID
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// IsDelivered reports whether the shipment has already been delivered.
// Handlers use this as the idempotency check before applying delivery
// effects.
func (s *Shipment) IsDelivered() bool {
	return s.status == Delivered
}

// Deliver marks the shipment as delivered. Valid only from InTransit.
func (s *Shipment) Deliver() error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	s.employeeID = employeeID
	return nil
}
