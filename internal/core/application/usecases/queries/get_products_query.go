package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the full product catalog with its derived
// demand counters. The counters are served exactly as persisted; no
// recomputation happens on the read path.
//
// Example:
//
//	query := NewGetProductsQuery()
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve products: %w", err)
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s: required=%d shipped=%d (%s)\n",
//	        p.Name, p.TotalRequiredQuantity, p.TotalShipped, p.Status)
//	}
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve all products.
// This is a parameterless query that fetches the complete catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents product information in the read model.
// Carries both the catalog attributes and the aggregate demand counters.
type GetProductsQueryResponse struct {
	ID                    kernel.UUID
	Name                  string
	Price                 float64
	AvailableQuantity     int
	TotalRequiredQuantity int
	TotalShipped          int
	Status                string
}
