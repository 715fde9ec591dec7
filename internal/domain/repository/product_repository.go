// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chocoshop/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// ListAll retrieves every product document in catalog order.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// FindBySlug retrieves a single product by its document key.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// Save writes a product document keyed by its slug. Saving a product
	// whose slug already exists replaces the stored document.
	Save(ctx context.Context, product *entity.Product) error

	// Note: products are never deleted through the application.
}
