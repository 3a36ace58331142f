package syncrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSyncCredentialRepository implements SyncCredentialRepository using GORM.
// Lookups run outside any unit of work: a missing row is an expected outcome
// meaning sync is skipped for that user, never a transaction concern.
type GormSyncCredentialRepository struct {
	db *gorm.DB
}

// NewGormSyncCredentialRepository creates a new GORM credential repository.
func NewGormSyncCredentialRepository(db *gorm.DB) *GormSyncCredentialRepository {
	return &GormSyncCredentialRepository{db: db}
}

// GetByUser retrieves the credentials stored for a user.
// Returns errs.ErrObjectNotFound when the user has none configured.
func (r *GormSyncCredentialRepository) GetByUser(
	ctx context.Context,
	userID kernel.UUID,
) (ports.SyncCredentials, error) {
	if err := userID.Validate(); err != nil {
		return ports.SyncCredentials{}, err
	}

	var dto SyncCredentialDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SyncCredentials{}, errs.NewObjectNotFoundError("sync credentials", userID.String())
		}
		return ports.SyncCredentials{}, err
	}

	return ports.SyncCredentials{
		Database: dto.Database,
		Username: dto.Username,
		Password: dto.Password,
	}, nil
}
