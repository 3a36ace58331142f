package employeerepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/employee"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee to the database.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing employee to the database. All columns are
// written so a cleared truck binding persists as NULL.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an employee row. Releasing the employee's truck is the
// caller's responsibility within the same transaction.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EmployeeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", id.String())
	}

	return nil
}

// GetAllWithoutTruck retrieves employees lacking a truck binding, ordered by
// ID so the allocation sweep processes them deterministically.
func (r *GormEmployeeRepository) GetAllWithoutTruck(ctx context.Context) ([]*employee.Employee, error) {
	var dtos []EmployeeDTO
	err := r.db.WithContext(ctx).
		Where("truck_id IS NULL").
		Order("id").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	employees := make([]*employee.Employee, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}
