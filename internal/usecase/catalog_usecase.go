// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"chocoshop/internal/domain/entity"
)

// --- Input DTOs ---

// AddProductInput defines the data required to ingest a new product.
// The image is streamed, not buffered: the reader is consumed exactly once
// during the blob upload.
type AddProductInput struct {
	Name        string
	Category    string
	Price       float64
	Weight      float64
	Description string
	Keywords    string

	ImageContentType string
	Image            io.Reader
}

// --- Output DTOs ---

// AddProductOutput returns the persisted catalog entry, including the
// derived image URL and document key.
type AddProductOutput struct {
	Product *entity.Product
}

// CatalogUsecase defines the interface for catalog-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListProducts returns the catalog, filtered to one category when the
	// category argument is non-empty.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct retrieves one product by its slug.
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)

	// AddProduct uploads the product image to blob storage and writes the
	// catalog document. Re-adding a product with the same name replaces
	// the stored document.
	AddProduct(ctx context.Context, input *AddProductInput) (*AddProductOutput, error)

	// Search runs the keyword search over the catalog and returns matches
	// in catalog order.
	Search(ctx context.Context, query string) ([]*entity.Product, error)
}
