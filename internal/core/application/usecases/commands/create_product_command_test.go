package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	createdBy := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, "Widget", 9.99, 10, &createdBy)
	require.NoError(t, err)
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, "Widget", cmd.Name())
	assert.InDelta(t, 9.99, cmd.Price(), 0.001)
	assert.Equal(t, 10, cmd.AvailableQuantity())
	require.NotNil(t, cmd.CreatedBy())
	assert.True(t, cmd.CreatedBy().IsEqual(createdBy))
}

func TestNewCreateProductCommand_NilCreatedBy(t *testing.T) {
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, 10, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.CreatedBy())
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "", 9.99, 10, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
}

func TestNewCreateProductCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", -1, 10, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewCreateProductCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Widget", 9.99, -1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestCreateProductCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateProductCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}
