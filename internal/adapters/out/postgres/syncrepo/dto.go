// Package syncrepo provides persistence for per-user external catalog
// credentials. Credentials are read-only from the application's point of
// view; they are provisioned out of band.
package syncrepo

import (
	"github.com/google/uuid"
)

// SyncCredentialDTO represents the database structure for stored external
// catalog credentials, one row per user.
type SyncCredentialDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Database string
	Username string
	Password string
}

// TableName specifies the database table name for credential entities.
// Overrides GORM's default naming convention to use "sync_credentials".
func (SyncCredentialDTO) TableName() string {
	return "sync_credentials"
}
