package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrRegisterTruckCommandIsNotConstructed = errors.New(
		"RegisterTruckCommand must be created via NewRegisterTruckCommand constructor",
	)
)

// RegisterTruckCommand represents adding a truck to the pool.
// New trucks enter available and get picked up by the next allocation sweep.
type RegisterTruckCommand struct { //nolint:recvcheck //using for validation
	truckID     kernel.UUID
	plateNumber string

	guard guard.ConstructorGuard
}

// NewRegisterTruckCommand creates a command to register a truck.
func NewRegisterTruckCommand(truckID kernel.UUID, plateNumber string) (RegisterTruckCommand, error) {
	cmd := RegisterTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTruckID(truckID),
		cmd.setPlateNumber(plateNumber),
	); err != nil {
		return RegisterTruckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTruckCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTruckCommandIsNotConstructed)
}

// TruckID returns the unique identifier for the truck.
func (c RegisterTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// PlateNumber returns the truck's plate number.
func (c RegisterTruckCommand) PlateNumber() string {
	return c.plateNumber
}

func (c *RegisterTruckCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	c.truckID = truckID
	return nil
}

func (c *RegisterTruckCommand) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	c.plateNumber = plateNumber
	return nil
}
