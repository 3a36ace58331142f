package ports

import (
	"context"

	"supplychain/internal/core/domain/model/employee"
	"supplychain/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employee aggregates.
type EmployeeRepository interface {
	// Add persists a new employee aggregate to storage.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Update persists changes to an existing employee aggregate.
	Update(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// Delete removes an employee. The caller is responsible for releasing
	// the employee's truck within the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllWithoutTruck retrieves employees lacking a truck binding, the
	// candidates for the periodic re-allocation sweep.
	GetAllWithoutTruck(ctx context.Context) ([]*employee.Employee, error)
}
