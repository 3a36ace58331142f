package commands

import (
	"context"
)

// DismissEmployeeCommandHandler handles employee removal. Deleting the row
// and releasing the bound truck commit in one transaction so the truck can
// never stay stranded in the unavailable state after its holder is gone.
type DismissEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewDismissEmployeeCommandHandler creates a handler for dismissing employees.
func NewDismissEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DismissEmployeeCommandHandler {
	return DismissEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dismiss command.
func (h DismissEmployeeCommandHandler) Handle(ctx context.Context, cmd DismissEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()
	emp, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	releasedTruckID := emp.ReleaseTruck()

	if err = employeeRepo.Delete(ctx, emp.ID()); err != nil {
		return err
	}

	if releasedTruckID != nil {
		if err = uow.TruckRepository().Release(ctx, *releasedTruckID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
