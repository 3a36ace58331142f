package truckrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/truck"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM.
//
// Claim and Release operate on the availability flag with a guarded UPDATE
// rather than a read-then-write, so two concurrent claimants of the same
// truck resolve to exactly one winner at the database.
type GormTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new truck to the database.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
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

// Get retrieves a truck by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all claimable trucks ordered by ID.
func (r *GormTruckRepository) GetAllAvailable(ctx context.Context) ([]*truck.Truck, error) {
	var dtos []TruckDTO
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("id").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}

// Claim flips the truck to unavailable iff it is currently available. The
// availability predicate is part of the UPDATE, so losing a race surfaces as
// zero affected rows, reported as truck.ErrTruckIsNotAvailable.
func (r *GormTruckRepository) Claim(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TruckDTO{}).
		Where("id = ? AND is_available = ?", id.Bytes(), true).
		Update("is_available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return truck.ErrTruckIsNotAvailable
	}

	return nil
}

// Release flips the truck back to available unconditionally.
func (r *GormTruckRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TruckDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_available", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truck", id.String())
	}

	return nil
}
