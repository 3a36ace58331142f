package commands

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/truck"
	"supplychain/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles shipment dispatch. Creates the
// shipment in transit, marks the fulfilled order allocated, and holds the
// executing employee's truck.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment dispatch.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment dispatch command.
// The employee's truck is claimed with a compare-and-swap; a truck already
// held (the employee's other shipment in transit) is the desired end state,
// not a failure.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	orderRepo := uow.OrderRepository()
	fulfilledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Dispatching reserves the order. Pending -> allocated is a pure status
	// change: the quantity already counts toward demand, so no delta applies.
	if fulfilledOrder.Status() == order.Pending {
		if err = fulfilledOrder.Allocate(); err != nil {
			return err
		}
		if err = orderRepo.UpdateStatus(ctx, fulfilledOrder.ID(), fulfilledOrder.Status()); err != nil {
			return err
		}
	} else if !fulfilledOrder.Status().IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("order is invalid",
			fmt.Errorf("%s order cannot be shipped", fulfilledOrder.Status().String()))
	}

	emp, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(cmd.ShipmentID(), fulfilledOrder.ID(), emp.ID())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	if emp.HasTruck() {
		err = uow.TruckRepository().Claim(ctx, *emp.TruckID())
		if err != nil && !errors.Is(err, truck.ErrTruckIsNotAvailable) {
			return err
		}
	}

	return uow.Commit(ctx)
}
