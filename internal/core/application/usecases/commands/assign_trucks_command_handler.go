package commands

import (
	"context"
	"errors"
)

var (
	// ErrNoUnassignedEmployees signals a sweep that found nobody to serve.
	// Business no-op, not a failure; callers typically log it at debug level.
	ErrNoUnassignedEmployees = errors.New("no unassigned employees found")
)

// AssignTrucksCommandHandler walks every employee without a truck and tries
// to claim one for each, lowest truck ID first. The sweep is idempotent:
// employees already bound are never touched, and an exhausted pool simply
// leaves the remainder for the next run.
type AssignTrucksCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewAssignTrucksCommandHandler creates a handler for the truck allocation sweep.
func NewAssignTrucksCommandHandler(uowFactory EmployeeUoWFactory) AssignTrucksCommandHandler {
	return AssignTrucksCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. All bindings of a single run commit in
// one transaction. Returns ErrNoUnassignedEmployees when there was nothing
// to do.
func (h AssignTrucksCommandHandler) Handle(ctx context.Context, cmd AssignTrucksCommand) error {
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
	unassigned, err := employeeRepo.GetAllWithoutTruck(ctx)
	if err != nil {
		return err
	}
	if len(unassigned) == 0 {
		return ErrNoUnassignedEmployees
	}

	for _, emp := range unassigned {
		bound, allocErr := allocateTruck(ctx, emp, uow.TruckRepository())
		if allocErr != nil {
			return allocErr
		}
		if !bound {
			break
		}

		if err = employeeRepo.Update(ctx, emp); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
