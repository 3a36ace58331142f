package commands

import (
	"context"

	"supplychain/internal/core/domain/model/employee"
)

// HireEmployeeCommandHandler handles employee creation and the initial truck
// allocation. Employee row and truck claim commit in one transaction: either
// the employee exists with their truck held, or neither change applies.
type HireEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewHireEmployeeCommandHandler creates a handler for hiring employees.
func NewHireEmployeeCommandHandler(uowFactory EmployeeUoWFactory) HireEmployeeCommandHandler {
	return HireEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hire command. An empty truck pool is not an error:
// the employee is created unbound and picked up by the allocation sweep
// later.
func (h HireEmployeeCommandHandler) Handle(ctx context.Context, cmd HireEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	emp, err := employee.NewEmployee(cmd.EmployeeID(), cmd.UserID(), cmd.Contact())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = allocateTruck(ctx, emp, uow.TruckRepository()); err != nil {
		return err
	}

	if err = uow.EmployeeRepository().Add(ctx, emp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
