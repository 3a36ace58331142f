package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("name is required")
	ErrPriceIsInvalid        = errors.New("price must not be negative")
	ErrQuantityIsInvalid     = errors.New("available quantity must not be negative")
)

// CreateProductCommand represents a request to register a new catalog
// product. Carries the attributes pushed to the external catalog system on
// creation and the creating user whose sync credentials are used.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID         kernel.UUID
	name              string
	price             float64
	availableQuantity int
	createdBy         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// createdBy may be nil when the creating user is unknown; external sync is
// then skipped.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	price float64,
	availableQuantity int,
	createdBy *kernel.UUID,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setAvailableQuantity(availableQuantity),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the catalog name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// AvailableQuantity returns the initial on-hand stock level.
func (c CreateProductCommand) AvailableQuantity() int {
	return c.availableQuantity
}

// CreatedBy returns the creating user's ID, or nil when unknown.
func (c CreateProductCommand) CreatedBy() *kernel.UUID {
	return c.createdBy
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setAvailableQuantity(qty int) error {
	if qty < 0 {
		return ErrQuantityIsInvalid
	}
	c.availableQuantity = qty
	return nil
}

func (c *CreateProductCommand) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy == nil {
		return nil
	}
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("createdBy is invalid", err)
	}
	c.createdBy = createdBy
	return nil
}
