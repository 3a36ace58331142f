package services

import (
	"supplychain/internal/core/domain/model/order"
)

// DemandPolicy is a domain service computing the signed delta an order status
// transition applies to the owning product's total required quantity.
//
// The policy works on explicit snapshots of the order's state captured before
// and after the write, never on hidden state stashed on the entity. The
// previous snapshot is nil only on creation.
//
// Transition table (previous -> next, delta applied to demand):
//
//	(none)            -> active            +next.RequiredQty
//	(none)            -> terminal           0
//	active            -> terminal          -previous.RequiredQty
//	terminal          -> active            +next.RequiredQty
//	active            -> active             next.RequiredQty - previous.RequiredQty
//	terminal          -> terminal           0
//
// where active is {pending, allocated} and terminal is {delivered, cancelled}.
// Quantity edits while terminal carry no delta: terminal orders contribute
// nothing to demand regardless of their stored quantity.
//
// The delivery finalize path of the shipment handler intentionally bypasses
// this table, because delivery must move quantity into the shipped bucket
// rather than merely decrement demand.
type DemandPolicy struct{}

// NewDemandPolicy creates a new DemandPolicy instance.
func NewDemandPolicy() DemandPolicy {
	return DemandPolicy{}
}

// RequiredQuantityDelta computes the demand delta for one order transition.
// previous is nil when the order was just created. The returned delta is
// applied to the product's total required quantity, which the aggregate
// clamps at a floor of 0.
func (DemandPolicy) RequiredQuantityDelta(previous *order.Snapshot, next order.Snapshot) int {
	if previous == nil {
		if next.Status.IsActive() {
			return next.RequiredQty
		}
		return 0
	}

	switch {
	case previous.Status.IsActive() && next.Status.IsTerminal():
		return -previous.RequiredQty
	case previous.Status.IsTerminal() && next.Status.IsActive():
		return next.RequiredQty
	case previous.Status.IsActive() && next.Status.IsActive():
		return next.RequiredQty - previous.RequiredQty
	default:
		return 0
	}
}
