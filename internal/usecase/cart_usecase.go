package usecase

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// CartView is the rendered state of one visitor's cart.
type CartView struct {
	Items []entity.Product
	Count int
	Total float64
}

// CartUsecase defines the interface for cart bookkeeping. Every operation is
// scoped to a single cart ID so visitors never share state.
type CartUsecase interface {
	// View returns the cart contents with the running item count and total.
	View(ctx context.Context, cartID string) (*CartView, error)

	// AddProduct looks the product up in the authoritative catalog by slug
	// and appends the stored record to the cart.
	AddProduct(ctx context.Context, cartID string, slug string) (*entity.Product, error)

	// Remove deletes the first cart entry matching the product name.
	Remove(ctx context.Context, cartID string, name string) error
}
