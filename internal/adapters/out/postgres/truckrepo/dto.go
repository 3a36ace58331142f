// Package truckrepo provides data transfer objects and mapping functions for truck persistence.
// This package implements the repository pattern for the truck pool, handling
// the conversion between domain entities and database representations.
package truckrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
// The availability flag is the target of the compare-and-swap claim.
type TruckDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNumber string
	IsAvailable bool `gorm:"index"`
}

// TableName specifies the database table name for truck entities.
// Overrides GORM's default naming convention to use "trucks".
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database representation.
func fromDomain(t *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:          t.ID().Bytes(),
		PlateNumber: t.PlateNumber(),
		IsAvailable: t.IsAvailable(),
	}
}

// toDomain converts a database DTO to a truck domain aggregate.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, dto.PlateNumber, dto.IsAvailable)
}
