package product

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is the aggregate holding the derived inventory counters for one
// catalog item. It is mutated exclusively by the order, shipment, and
// employee event handlers; no other code computes these values ad hoc.
//
// Product maintains these invariants:
//   - totalRequiredQuantity equals the sum of required quantities over orders
//     currently in an active status, and is never negative (clamped at 0)
//   - totalShipped is never negative and only grows
//   - status is always DeriveStatus(totalRequiredQuantity, availableQuantity)
//
// The struct uses private fields to ensure encapsulation; every counter
// mutation recomputes the status through the single derivation function.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the catalog name pushed to the external system on creation
	name string

	// price is the unit price pushed to the external system on creation
	price float64

	// availableQuantity is the stock currently on hand
	availableQuantity int

	// totalRequiredQuantity is the demand accumulated from active orders
	totalRequiredQuantity int

	// totalShipped counts units moved out through delivered shipments
	totalShipped int

	// status is the derived supply state, set only via DeriveStatus
	status Status

	// createdBy references the user whose sync credentials are used (nil if unknown)
	createdBy *kernel.UUID

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product with zeroed demand counters and a derived
// status. createdBy may be nil when the creating user is unknown; the
// external sync is then skipped.
func NewProduct(
	id kernel.UUID,
	name string,
	price float64,
	availableQuantity int,
	createdBy *kernel.UUID,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setAvailableQuantity(availableQuantity),
		p.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	p.recompute()
	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Counters are taken as stored; the status is validated against the
// derivation rule rather than recomputed, so drift surfaces as an error.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price float64,
	availableQuantity int,
	totalRequiredQuantity int,
	totalShipped int,
	status Status,
	createdBy *kernel.UUID,
) (*Product, error) {
	if totalRequiredQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalRequiredQuantity is invalid",
			fmt.Errorf("%d is negative", totalRequiredQuantity))
	}
	if totalShipped < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalShipped is invalid",
			fmt.Errorf("%d is negative", totalShipped))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setAvailableQuantity(availableQuantity),
		p.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	p.totalRequiredQuantity = totalRequiredQuantity
	p.totalShipped = totalShipped
	p.status = status
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// AvailableQuantity returns the stock currently on hand.
func (p *Product) AvailableQuantity() int {
	return p.availableQuantity
}

// TotalRequiredQuantity returns the demand accumulated from active orders.
func (p *Product) TotalRequiredQuantity() int {
	return p.totalRequiredQuantity
}

// TotalShipped returns the units moved out through delivered shipments.
func (p *Product) TotalShipped() int {
	return p.totalShipped
}

// Status returns the derived supply status.
func (p *Product) Status() Status {
	return p.status
}

// CreatedBy returns the creating user's ID, or nil when unknown.
func (p *Product) CreatedBy() *kernel.UUID {
	return p.createdBy
}

// AdjustRequired applies a signed delta to the demand counter, clamping the
// result at a floor of 0, and recomputes the status. A negative result is a
// policy situation, not an error: over-decrement simply empties the counter.
func (p *Product) AdjustRequired(delta int) {
	p.totalRequiredQuantity += delta
	if p.totalRequiredQuantity < 0 {
		p.totalRequiredQuantity = 0
	}
	p.recompute()
}

// RecordShipped moves qty units of demand into the shipped bucket: the demand
// counter is decremented (floored at 0) and totalShipped is incremented by
// the same amount. Used exclusively by the shipment delivery path.
func (p *Product) RecordShipped(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty is invalid",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	p.totalRequiredQuantity -= qty
	if p.totalRequiredQuantity < 0 {
		p.totalRequiredQuantity = 0
	}
	p.totalShipped += qty
	p.recompute()
	return nil
}

// ChangeAvailableQuantity replaces the on-hand stock level and recomputes the
// status, since the derivation depends on both operands.
func (p *Product) ChangeAvailableQuantity(qty int) error {
	if err := p.setAvailableQuantity(qty); err != nil {
		return err
	}
	p.recompute()
	return nil
}

// recompute refreshes the derived status after a counter mutation.
func (p *Product) recompute() {
	p.status = DeriveStatus(p.totalRequiredQuantity, p.availableQuantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setAvailableQuantity(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQuantity is invalid",
			fmt.Errorf("%d is negative", qty))
	}
	p.availableQuantity = qty
	return nil
}

func (p *Product) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy == nil {
		return nil
	}
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}
