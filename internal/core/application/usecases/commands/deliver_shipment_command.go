package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrDeliverShipmentCommandIsNotConstructed = errors.New(
		"DeliverShipmentCommand must be created via NewDeliverShipmentCommand constructor",
	)
)

// DeliverShipmentCommand represents the arrival of a shipment. Observing the
// same delivery event more than once is expected and harmless: the handler
// applies the finalize effects exactly once per shipment.
type DeliverShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverShipmentCommand creates a command to finalize a shipment delivery.
func NewDeliverShipmentCommand(shipmentID kernel.UUID) (DeliverShipmentCommand, error) {
	cmd := DeliverShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DeliverShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeliverShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c DeliverShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeliverShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}
