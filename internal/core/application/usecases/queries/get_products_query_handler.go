package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the product catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetProductsQueryHandler(db)
//	query := NewGetProductsQuery()
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get products: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d products\n", len(products))
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products.
// Returns a slice of product read models sorted by name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			available_quantity,
			total_required_quantity,
			total_shipped,
			status
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp GetProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&productResp.Name,
			&productResp.Price,
			&productResp.AvailableQuantity,
			&productResp.TotalRequiredQuantity,
			&productResp.TotalShipped,
			&productResp.Status,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
