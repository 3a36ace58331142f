package commands

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles order edits: status transitions and
// quantity changes. The prior order state is captured inside the same
// transaction that persists the change, so racing updates to one order
// cannot compute deltas off stale reads.
//
// A missing prior order is recovered locally by treating the event as a
// creation. That is a fallback, not an expected path.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.DemandPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDemandPolicy(),
	}
}

// Handle processes the order update command.
// Applies the delta-table row for the (previous, next) snapshot pair to the
// owning product and rederives the product status from the fresh counters.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	var (
		previous *order.Snapshot
		updated  *order.Order
	)

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No prior state: fall back to the creation path.
		updated, err = order.RestoreOrder(cmd.OrderID(), cmd.ProductID(), cmd.RequiredQty(), cmd.Status())
		if err != nil {
			return err
		}
		if err = orderRepo.Add(ctx, updated); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		snapshot := existing.Snapshot()
		previous = &snapshot

		if err = existing.ChangeRequiredQty(cmd.RequiredQty()); err != nil {
			return err
		}
		if err = applyStatusTransition(existing, cmd.Status()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
	}

	productRepo := uow.ProductRepository()
	delta := h.policy.RequiredQuantityDelta(previous, updated.Snapshot())

	counters, err := productRepo.AdjustRequired(ctx, updated.ProductID(), delta)
	if err != nil {
		return err
	}

	status := product.DeriveStatus(counters.TotalRequiredQuantity, counters.AvailableQuantity)
	if err = productRepo.UpdateStatus(ctx, updated.ProductID(), status); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyStatusTransition moves the order to the target status through the
// aggregate's transition methods.
func applyStatusTransition(o *order.Order, target order.Status) error {
	current := o.Status()
	if current == target {
		return nil
	}

	switch target {
	case order.Allocated:
		return o.Allocate()
	case order.Delivered:
		return o.Deliver()
	case order.Cancelled:
		return o.Cancel()
	case order.Pending:
		return o.Reopen()
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid target status", target.String()))
	}
}
