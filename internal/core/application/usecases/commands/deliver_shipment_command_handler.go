package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/pkg/errs"
)

// DeliverShipmentCommandHandler finalizes a shipment delivery. In one
// transaction it marks the shipment and its order delivered, moves the
// order's quantity from the product's demand counter into the shipped
// bucket, rederives the product status, and releases the employee's truck
// once nothing of theirs is left in transit.
//
// Idempotency is tracked by the shipment's own status: a shipment already
// delivered short-circuits before any side effect, so a duplicate event
// cannot double-decrement demand or double-increment the shipped counter.
//
// The demand decrement intentionally bypasses the generic transition delta
// table: delivery moves quantity into total_shipped, a distinct accounting
// bucket, rather than merely shrinking demand.
type DeliverShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeliverShipmentCommandHandler creates a handler for delivery finalization.
func NewDeliverShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeliverShipmentCommandHandler {
	return DeliverShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command. All row updates commit together or
// not at all; a duplicate delivery is a successful no-op.
func (h DeliverShipmentCommandHandler) Handle(ctx context.Context, cmd DeliverShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	sh, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if sh.IsDelivered() {
		return nil
	}

	if err = sh.Deliver(); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, sh); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	fulfilledOrder, err := orderRepo.Get(ctx, sh.OrderID())
	if err != nil {
		return err
	}

	if fulfilledOrder.Status() != order.Delivered {
		if err = fulfilledOrder.Deliver(); err != nil {
			return err
		}
		if err = orderRepo.UpdateStatus(ctx, fulfilledOrder.ID(), order.Delivered); err != nil {
			return err
		}
	}

	productRepo := uow.ProductRepository()
	counters, err := productRepo.RecordShipped(ctx, fulfilledOrder.ProductID(), fulfilledOrder.RequiredQty())
	if err != nil {
		return err
	}

	status := product.DeriveStatus(counters.TotalRequiredQuantity, counters.AvailableQuantity)
	if err = productRepo.UpdateStatus(ctx, fulfilledOrder.ProductID(), status); err != nil {
		return err
	}

	if err = h.releaseTruckIfIdle(ctx, uow, sh.EmployeeID(), sh.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseTruckIfIdle returns the employee's truck to the pool when no other
// shipment of theirs is still in transit. An employee dismissed mid-run has
// no truck to release; that is recovered locally, not surfaced.
func (h DeliverShipmentCommandHandler) releaseTruckIfIdle(
	ctx context.Context,
	uow ShipmentUoW,
	employeeID, shipmentID kernel.UUID,
) error {
	emp, err := uow.EmployeeRepository().Get(ctx, employeeID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !emp.HasTruck() {
		return nil
	}

	stillBusy, err := uow.ShipmentRepository().HasInTransitForEmployee(ctx, emp.ID(), shipmentID)
	if err != nil {
		return err
	}
	if stillBusy {
		return nil
	}

	return uow.TruckRepository().Release(ctx, *emp.TruckID())
}
