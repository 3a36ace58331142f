package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles order placement. Creates the order in
// pending status and applies the creation row of the demand delta table to
// the owning product, all within one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.DemandPolicy
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDemandPolicy(),
	}
}

// Handle processes the order placement command.
// The demand delta is applied as an atomic in-place update on the product
// row, and the product status is rederived from the returned counters.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ProductID(), cmd.RequiredQty())
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	delta := h.policy.RequiredQuantityDelta(nil, newOrder.Snapshot())

	counters, err := productRepo.AdjustRequired(ctx, newOrder.ProductID(), delta)
	if err != nil {
		return err
	}

	status := product.DeriveStatus(counters.TotalRequiredQuantity, counters.AvailableQuantity)
	if err = productRepo.UpdateStatus(ctx, newOrder.ProductID(), status); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
