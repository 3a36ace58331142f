package product

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the supply state of a product. It is a pure function of
// the demand counter and the available quantity: a product is OnDemand when
// more units are required by active orders than are on hand, and Sufficient
// otherwise.
//
// Status is never assigned directly by handlers; DeriveStatus is the single
// place the rule lives.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Sufficient indicates available stock covers the required quantity.
	Sufficient

	// OnDemand indicates active orders require more units than are available.
	OnDemand
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Sufficient: "sufficient",
		OnDemand:   "on_demand",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Sufficient: "sufficient",
		OnDemand:   "on_demand",
	}
}

// DeriveStatus computes the supply status from the two counters it depends
// on. It must be invoked after every mutation of either operand; no other
// code sets a product's status.
func DeriveStatus(totalRequiredQuantity, availableQuantity int) Status {
	if totalRequiredQuantity > availableQuantity {
		return OnDemand
	}
	return Sufficient
}

// StatusFromString parses a persisted status value.
// Returns an error for anything other than "sufficient" or "on_demand".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid product status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Sufficient and OnDemand.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid product status", s))
	}
	return nil
}

// String returns the persisted name of the status: "sufficient" or
// "on_demand". Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
