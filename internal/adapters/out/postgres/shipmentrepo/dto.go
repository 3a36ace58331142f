// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Indexed by employee since the truck release decision scans an employee's
// in-transit shipments.
type ShipmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Status     string
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:         s.ID().Bytes(),
		OrderID:    s.OrderID().Bytes(),
		EmployeeID: s.EmployeeID().Bytes(),
		Status:     s.Status().String(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, employeeID, status)
}
