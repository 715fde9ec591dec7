package repository

import (
	"context"
	"errors"

	"chocoshop/internal/domain/entity"
)

// ErrManagerNotFound is a domain-specific error returned when no manager
// record exists for a username.
var ErrManagerNotFound = errors.New("manager not found")

// ManagerRepository defines the operations for authorized store manager records.
type ManagerRepository interface {
	// FindByUsername retrieves a single manager by exact username match.
	FindByUsername(ctx context.Context, username string) (*entity.Manager, error)

	// Create persists a new manager record. Used only by the out-of-band
	// provisioning tool, never by the web surface.
	Create(ctx context.Context, manager *entity.Manager) error
}
