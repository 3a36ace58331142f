package shipment

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	InTransit ──> Delivered
//
// Delivered is final: a shipment transitions there at most once in its
// lifetime, which anchors the exactly-once delivery accounting.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InTransit is the initial status when a shipment leaves for an order.
	InTransit

	// Delivered indicates the shipment reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InTransit: "in_transit",
		Delivered: "delivered",
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
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Deliver transitions the status to Delivered.
// Valid only from InTransit; a delivered shipment stays delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}
