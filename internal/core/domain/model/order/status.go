package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions that drive the
// product demand deltas.
//
// State transitions:
//
//	Pending ──┬──> Allocated ──┬──> Delivered
//	          │        │       │
//	          │        └───────┴──> Cancelled
//	          └──> Delivered / Cancelled
//	Delivered / Cancelled ──> Pending (reopen)
//
// Pending and Allocated are the active states that contribute to a product's
// total required quantity. Delivered and Cancelled are terminal in business
// meaning: an order in one of them contributes nothing to demand, even if its
// quantity is later edited.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a retailer places an order.
	Pending

	// Allocated indicates the order has been reserved for fulfillment.
	Allocated

	// Delivered indicates the order was fulfilled by a delivered shipment.
	Delivered

	// Cancelled indicates the order was withdrawn before fulfillment.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Allocated: "allocated",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Allocated: "allocated",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Allocated, Delivered, and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status contributes to a product's demand.
// Pending and Allocated orders are counted in total_required_quantity.
func (s Status) IsActive() bool {
	return s == Pending || s == Allocated
}

// IsTerminal reports whether the status ends the order's business lifecycle.
// Delivered and Cancelled orders contribute nothing to demand.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Allocate transitions the status to Allocated.
// Valid only from Pending or Allocated (re-allocation is a no-op transition).
func (s Status) Allocate() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to allocate", s.String()))
	}
	return Allocated, nil
}

// Deliver transitions the status to Delivered.
// Valid from either active state; delivering a Delivered order is rejected so
// the exactly-once delivery effects stay with the shipment handler.
func (s Status) Deliver() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from either active state.
func (s Status) Cancel() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}
	return Cancelled, nil
}

// Reopen transitions a terminal status back to Pending, returning the order's
// quantity to the product's demand pool.
func (s Status) Reopen() (Status, error) {
	if !s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()))
	}
	return Pending, nil
}
