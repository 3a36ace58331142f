package commands

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrAssignTrucksCommandIsNotConstructed = errors.New(
	"AssignTrucksCommand must be created via NewAssignTrucksCommand constructor",
)

// AssignTrucksCommand triggers a sweep that binds free trucks to employees
// left without one. Employees can end up truckless when they were hired
// during a pool drought, so the sweep runs periodically to repair that.
//
// Example:
//
//	cmd := NewAssignTrucksCommand()
//	handler := NewAssignTrucksCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoUnassignedEmployees) {
//	    log.Println("Everyone already has a truck")
//	}
type AssignTrucksCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignTrucksCommand creates a new command to trigger the truck
// allocation sweep. The command carries no parameters.
func NewAssignTrucksCommand() AssignTrucksCommand {
	return AssignTrucksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignTrucksCommandIsNotConstructed if validation fails.
func (c *AssignTrucksCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignTrucksCommandIsNotConstructed,
	)
}
