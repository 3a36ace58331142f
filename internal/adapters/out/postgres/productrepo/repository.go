package productrepo

import (
	"context"
	"database/sql"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
//
// The counter mutations (AdjustRequired, RecordShipped) run as single UPDATE
// statements with the arithmetic inside the SQL expression. Two concurrent
// order events on the same product then serialize on the row lock and both
// deltas survive, which a read-modify-write through the aggregate could not
// guarantee.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves an existing product to the database. All columns are written,
// including zero-valued counters.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AdjustRequired applies a signed delta to the demand counter in one atomic
// statement, clamped at a floor of 0, and returns the counters after the
// update.
func (r *GormProductRepository) AdjustRequired(
	ctx context.Context,
	id kernel.UUID,
	delta int,
) (ports.ProductCounters, error) {
	if err := id.Validate(); err != nil {
		return ports.ProductCounters{}, err
	}

	row := r.db.WithContext(ctx).Raw(`
		UPDATE products
		SET total_required_quantity = GREATEST(total_required_quantity + ?, 0)
		WHERE id = ?
		RETURNING total_required_quantity, total_shipped, available_quantity
	`, delta, id.Bytes()).Row()

	return scanCounters(row, id)
}

// RecordShipped atomically moves qty units of demand into the shipped bucket
// and returns the counters after the update.
func (r *GormProductRepository) RecordShipped(
	ctx context.Context,
	id kernel.UUID,
	qty int,
) (ports.ProductCounters, error) {
	if err := id.Validate(); err != nil {
		return ports.ProductCounters{}, err
	}
	if qty <= 0 {
		return ports.ProductCounters{}, errs.NewValueIsInvalidError("qty must be greater than 0")
	}

	row := r.db.WithContext(ctx).Raw(`
		UPDATE products
		SET total_required_quantity = GREATEST(total_required_quantity - ?, 0),
		    total_shipped = total_shipped + ?
		WHERE id = ?
		RETURNING total_required_quantity, total_shipped, available_quantity
	`, qty, qty, id.Bytes()).Row()

	return scanCounters(row, id)
}

// UpdateStatus persists only the derived status column.
func (r *GormProductRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status product.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// scanCounters reads the RETURNING clause of a counter update.
func scanCounters(row *sql.Row, id kernel.UUID) (ports.ProductCounters, error) {
	var counters ports.ProductCounters
	err := row.Scan(
		&counters.TotalRequiredQuantity,
		&counters.TotalShipped,
		&counters.AvailableQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ProductCounters{}, errs.NewObjectNotFoundError("product", id.String())
	}
	if err != nil {
		return ports.ProductCounters{}, err
	}

	return counters, nil
}
