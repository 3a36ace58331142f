package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	createdBy := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, 10, &createdBy)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	creds := ports.SyncCredentials{Database: "catalog", Username: "svc", Password: "secret"}
	credentials := new(MockSyncCredentialRepository)
	credentials.On("GetByUser", mock.Anything, createdBy).Return(creds, nil).Once()

	syncClient := new(MockProductSyncClient)
	syncClient.On("SyncProduct", mock.Anything, creds, "Widget", 9.99, 10).Return(int64(42), nil).Once()

	h := commands.NewCreateProductCommandHandler(factory, credentials, syncClient, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	productRepo.AssertExpectations(t)
	credentials.AssertExpectations(t)
	syncClient.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_AnonymousProductSkipsSync(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, 10, nil)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	credentials := new(MockSyncCredentialRepository)
	syncClient := new(MockProductSyncClient)

	h := commands.NewCreateProductCommandHandler(factory, credentials, syncClient, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	credentials.AssertNotCalled(t, "GetByUser", mock.Anything, mock.Anything)
	syncClient.AssertNotCalled(t, "SyncProduct",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_MissingCredentialsSkipsSync(t *testing.T) {
	ctx := t.Context()
	createdBy := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, 10, &createdBy)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	credentials := new(MockSyncCredentialRepository)
	credentials.On("GetByUser", mock.Anything, createdBy).
		Return(ports.SyncCredentials{}, errs.NewObjectNotFoundError("sync credentials", createdBy.String())).Once()

	syncClient := new(MockProductSyncClient)

	h := commands.NewCreateProductCommandHandler(factory, credentials, syncClient, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	syncClient.AssertNotCalled(t, "SyncProduct",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_SyncFailureDoesNotFailCreation(t *testing.T) {
	ctx := t.Context()
	createdBy := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, 10, &createdBy)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	creds := ports.SyncCredentials{Database: "catalog", Username: "svc", Password: "secret"}
	credentials := new(MockSyncCredentialRepository)
	credentials.On("GetByUser", mock.Anything, createdBy).Return(creds, nil).Once()

	syncClient := new(MockProductSyncClient)
	syncClient.On("SyncProduct", mock.Anything, creds, "Widget", 9.99, 10).
		Return(int64(0), errors.New("catalog unreachable")).Once()

	h := commands.NewCreateProductCommandHandler(factory, credentials, syncClient, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	syncClient.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, 10, nil)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(
		factory, new(MockSyncCredentialRepository), new(MockProductSyncClient), discardLogger())
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", ctx)
}
