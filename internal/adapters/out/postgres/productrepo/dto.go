// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// The demand counters live in the same row as the catalog attributes so a
// single atomic UPDATE can adjust a counter and return the fresh values.
type ProductDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                  string
	Price                 float64
	AvailableQuantity     int
	TotalRequiredQuantity int
	TotalShipped          int
	Status                string     `gorm:"index"`
	CreatedBy             *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	var createdBy *uuid.UUID
	if id := p.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	return ProductDTO{
		ID:                    p.ID().Bytes(),
		Name:                  p.Name(),
		Price:                 p.Price(),
		AvailableQuantity:     p.AvailableQuantity(),
		TotalRequiredQuantity: p.TotalRequiredQuantity(),
		TotalShipped:          p.TotalShipped(),
		Status:                p.Status().String(),
		CreatedBy:             createdBy,
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Reconstructs the complete aggregate including the stored counters using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		cID, createdByErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if createdByErr != nil {
			return nil, createdByErr
		}

		createdBy = &cID
	}

	status, err := product.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Price,
		dto.AvailableQuantity,
		dto.TotalRequiredQuantity,
		dto.TotalShipped,
		status,
		createdBy,
	)
}
