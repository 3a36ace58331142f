package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrRequiredQtyIsInvalid = errors.New("required quantity must be greater than 0")
)

// PlaceOrderCommand represents a retailer's request for product units.
// The new order starts in pending status, so its quantity immediately joins
// the product's demand pool.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   kernel.UUID
	requiredQty int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both IDs are valid and the quantity is positive.
func NewPlaceOrderCommand(orderID, productID kernel.UUID, requiredQty int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setRequiredQty(requiredQty),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the ordered product's identifier.
func (c PlaceOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// RequiredQty returns the requested number of units.
func (c PlaceOrderCommand) RequiredQty() int {
	return c.requiredQty
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *PlaceOrderCommand) setRequiredQty(requiredQty int) error {
	if requiredQty <= 0 {
		return ErrRequiredQtyIsInvalid
	}
	c.requiredQty = requiredQty
	return nil
}
