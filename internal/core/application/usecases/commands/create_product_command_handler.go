package commands

import (
	"context"
	"errors"
	"log/slog"

	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// CreateProductCommandHandler handles the business logic for product
// creation. Persists the new product and then notifies the external catalog
// system once, as a best-effort side effect outside the transaction.
//
// The sync is fire-and-forget by contract: missing credentials mean the user
// opted out, and a collaborator failure is logged and swallowed so inventory
// state is never blocked by sync outages.
type CreateProductCommandHandler struct {
	uowFactory  ProductUoWFactory
	credentials ports.SyncCredentialRepository
	syncClient  ports.ProductSyncClient
	logger      *slog.Logger
}

// NewCreateProductCommandHandler creates a handler for product creation.
// Requires the transactional factory plus the sync collaborator pair.
func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	credentials ports.SyncCredentialRepository,
	syncClient ports.ProductSyncClient,
	logger *slog.Logger,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory:  uowFactory,
		credentials: credentials,
		syncClient:  syncClient,
		logger:      logger.With("component", "create_product_handler"),
	}
}

// Handle processes the product creation command.
// The product is persisted transactionally; the external sync fires only
// after a successful commit and cannot fail the creation.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Price(),
		cmd.AvailableQuantity(),
		cmd.CreatedBy(),
	)
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

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyExternalCatalog(ctx, newProduct)
	return nil
}

// notifyExternalCatalog pushes the product to the external system once.
// Every failure path recovers locally: no error reaches the caller.
func (h CreateProductCommandHandler) notifyExternalCatalog(ctx context.Context, p *product.Product) {
	if p.CreatedBy() == nil {
		h.logger.InfoContext(ctx, "No user associated with the product, skipping external sync",
			"product_id", p.ID().String())
		return
	}

	creds, err := h.credentials.GetByUser(ctx, *p.CreatedBy())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.InfoContext(ctx, "No sync credentials configured for user, skipping external sync",
			"user_id", p.CreatedBy().String())
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load sync credentials", "error", err)
		return
	}

	externalID, err := h.syncClient.SyncProduct(ctx, creds, p.Name(), p.Price(), p.AvailableQuantity())
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to sync product to external catalog",
			"product_id", p.ID().String(), "error", err)
		return
	}

	// The external identifier is deliberately discarded: no mapping is
	// persisted and no retry path exists.
	h.logger.InfoContext(ctx, "Product synced to external catalog",
		"product_id", p.ID().String(), "external_id", externalID)
}
