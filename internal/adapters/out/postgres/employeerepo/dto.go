// Package employeerepo provides data transfer objects and mapping functions for employee persistence.
// This package implements the repository pattern for the employee domain aggregate, handling
// the conversion between domain entities and database representations.
package employeerepo

import (
	"supplychain/internal/core/domain/model/employee"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employee aggregates.
// TruckID is nullable; an unbound employee is a valid operating state.
type EmployeeDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Contact string
	TruckID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for employee entities.
// Overrides GORM's default naming convention to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

// fromDomain converts an employee domain aggregate to its database representation.
func fromDomain(e *employee.Employee) EmployeeDTO {
	var truckID *uuid.UUID
	if id := e.TruckID(); id != nil {
		raw := id.Bytes()
		truckID = &raw
	}

	return EmployeeDTO{
		ID:      e.ID().Bytes(),
		UserID:  e.UserID().Bytes(),
		Contact: e.Contact(),
		TruckID: truckID,
	}
}

// toDomain converts a database DTO to an employee domain aggregate.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var truckID *kernel.UUID
	if dto.TruckID != nil {
		tID, truckErr := kernel.UUIDFromBytes((*dto.TruckID)[:])
		if truckErr != nil {
			return nil, truckErr
		}

		truckID = &tID
	}

	return employee.RestoreEmployee(id, userID, dto.Contact, truckID)
}
