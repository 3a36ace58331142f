package order

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a retailer's request for product units. It is the
// aggregate whose status transitions drive the product demand deltas.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - References exactly one product for its lifetime (immutable relation)
//   - Required quantity must be positive
//   - Status transitions follow the rules defined on Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// productID references the ordered product; immutable after construction
	productID kernel.UUID

	// requiredQty is the number of units requested (must be positive)
	requiredQty int

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// Snapshot captures the demand-relevant state of an order at a point in time.
// Handlers receive explicit previous/next snapshots instead of reading hidden
// state stashed on the entity, which keeps the delta computation pure and
// safe under concurrency.
type Snapshot struct {
	Status      Status
	RequiredQty int
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create a valid Order besides RestoreOrder, ensuring all business
// invariants hold from the start.
func NewOrder(id kernel.UUID, productID kernel.UUID, requiredQty int) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setRequiredQty(requiredQty),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status.
func RestoreOrder(id kernel.UUID, productID kernel.UUID, requiredQty int, status Status) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, productID, requiredQty)
	if err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// RequiredQty returns the requested number of units.
func (o *Order) RequiredQty() int {
	return o.requiredQty
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Snapshot returns the demand-relevant state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{Status: o.status, RequiredQty: o.requiredQty}
}

// Allocate reserves the order for fulfillment.
func (o *Order) Allocate() error {
	newStatus, err := o.status.Allocate()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver marks the order as fulfilled. Called by the shipment delivery
// handler, never directly by API consumers.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel withdraws the order before fulfillment.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reopen returns a terminal order to Pending.
func (o *Order) Reopen() error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ChangeRequiredQty updates the requested quantity. Allowed in any status;
// edits while terminal carry no business meaning and contribute no demand
// delta.
func (o *Order) ChangeRequiredQty(requiredQty int) error {
	return o.setRequiredQty(requiredQty)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setRequiredQty(requiredQty int) error {
	if requiredQty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requiredQty is invalid",
			fmt.Errorf("%d is not greater than 0", requiredQty))
	}
	o.requiredQty = requiredQty
	return nil
}
