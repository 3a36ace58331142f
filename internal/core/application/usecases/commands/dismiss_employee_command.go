package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrDismissEmployeeCommandIsNotConstructed = errors.New(
		"DismissEmployeeCommand must be created via NewDismissEmployeeCommand constructor",
	)
)

// DismissEmployeeCommand represents the removal of an employee. Their truck,
// if any, returns to the pool unconditionally: the one-to-one allocation
// guarantees no other employee depends on it.
type DismissEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDismissEmployeeCommand creates a command to dismiss an employee.
func NewDismissEmployeeCommand(employeeID kernel.UUID) (DismissEmployeeCommand, error) {
	cmd := DismissEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmployeeID(employeeID); err != nil {
		return DismissEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DismissEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDismissEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the employee.
func (c DismissEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *DismissEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}
