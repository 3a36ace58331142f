package queries_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductsQuery_Valid(t *testing.T) {
	query := queries.NewGetProductsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProductsQueryIsNotConstructed)
}
