package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
)

// SyncCredentials holds one user's access to the external catalog system.
// Absence of credentials means sync is simply skipped for that user.
type SyncCredentials struct {
	Database string
	Username string
	Password string
}

// SyncCredentialRepository looks up per-user external sync credentials.
type SyncCredentialRepository interface {
	// GetByUser retrieves the credentials stored for a user.
	// Returns errs.ErrObjectNotFound when the user has none configured.
	GetByUser(ctx context.Context, userID kernel.UUID) (SyncCredentials, error)
}

// ProductSyncClient pushes newly created products to the external catalog
// system. The push is fire-and-forget: the returned identifier is discarded,
// failures are logged by the caller and never block inventory state.
type ProductSyncClient interface {
	// SyncProduct creates the product in the external system and returns the
	// external identifier.
	SyncProduct(ctx context.Context, creds SyncCredentials, name string, price float64, quantity int) (int64, error)
}
