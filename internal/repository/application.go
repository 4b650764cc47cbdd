package repository

import (
	"context"

	"jobboard/internal/model"
)

// ApplicationRepository defines data access for job applications.
type ApplicationRepository interface {
	// Create inserts a new application record and returns it as stored.
	Create(ctx context.Context, app *model.Application) (*model.Application, error)
}

// MediaRepository defines data access for media records.
type MediaRepository interface {
	// Create inserts a new media record.
	Create(ctx context.Context, m *model.Media) (*model.Media, error)

	// Delete removes a media record by ID. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context, id string) error
}

// UserRepository defines data access for admin users.
type UserRepository interface {
	// FindByEmail returns a user by email. Returns ErrNoDocument when absent.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuditRepository writes audit trail entries.
type AuditRepository interface {
	Write(ctx context.Context, entry *model.AuditLog) error
}
