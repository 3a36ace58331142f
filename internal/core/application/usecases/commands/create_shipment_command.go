package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents the dispatch of a shipment fulfilling an
// order, executed by an employee. The new shipment starts in transit, which
// holds the employee's truck.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	orderID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to dispatch a shipment.
func NewCreateShipmentCommand(shipmentID, orderID, employeeID kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the fulfilled order's identifier.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the executing employee's identifier.
func (c CreateShipmentCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}
