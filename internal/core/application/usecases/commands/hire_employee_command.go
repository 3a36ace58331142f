package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrHireEmployeeCommandIsNotConstructed = errors.New(
		"HireEmployeeCommand must be created via NewHireEmployeeCommand constructor",
	)
)

// HireEmployeeCommand represents the creation of a delivery employee for a
// user account. Hiring attempts to claim one truck from the pool; when none
// is free the employee starts unbound, a valid operating state.
type HireEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	userID     kernel.UUID
	contact    string

	guard guard.ConstructorGuard
}

// NewHireEmployeeCommand creates a command to hire an employee.
// contact may be empty; a placeholder is recorded in that case.
func NewHireEmployeeCommand(employeeID, userID kernel.UUID, contact string) (HireEmployeeCommand, error) {
	cmd := HireEmployeeCommand{
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setUserID(userID),
	); err != nil {
		return HireEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HireEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrHireEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the employee.
func (c HireEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// UserID returns the backing user account's identifier.
func (c HireEmployeeCommand) UserID() kernel.UUID {
	return c.userID
}

// Contact returns the contact line supplied at hire time.
func (c HireEmployeeCommand) Contact() string {
	return c.contact
}

func (c *HireEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}

func (c *HireEmployeeCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
