package commands

import (
	"context"

	"supplychain/internal/core/domain/model/truck"
)

// RegisterTruckCommandHandler handles adding trucks to the pool.
type RegisterTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

// NewRegisterTruckCommandHandler creates a handler for truck registration.
func NewRegisterTruckCommandHandler(uowFactory TruckUoWFactory) RegisterTruckCommandHandler {
	return RegisterTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the register command.
func (h RegisterTruckCommandHandler) Handle(ctx context.Context, cmd RegisterTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	t, err := truck.NewTruck(cmd.TruckID(), cmd.PlateNumber())
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

	if err = uow.TruckRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
