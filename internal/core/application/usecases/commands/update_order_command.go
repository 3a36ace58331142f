package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a state change of an existing order: a
// status transition, a quantity edit, or both. The command carries the full
// target state of the order; the handler captures the prior state inside the
// transaction and computes the demand delta from the two.
//
// The product ID is carried so the defensive creation fallback (update
// arriving for an order that does not exist) can still build the order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   kernel.UUID
	requiredQty int
	status      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command describing the target state of an
// order. Validates the IDs, the positive quantity, and the status value.
func NewUpdateOrderCommand(
	orderID, productID kernel.UUID,
	requiredQty int,
	status order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setRequiredQty(requiredQty),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the ordered product's identifier.
func (c UpdateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// RequiredQty returns the target number of units.
func (c UpdateOrderCommand) RequiredQty() int {
	return c.requiredQty
}

// Status returns the target order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateOrderCommand) setRequiredQty(requiredQty int) error {
	if requiredQty <= 0 {
		return ErrRequiredQtyIsInvalid
	}
	c.requiredQty = requiredQty
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
