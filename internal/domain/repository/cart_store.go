package repository

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// CartStore keeps per-visitor carts keyed by cart ID. Carts are transient:
// nothing survives a process restart, and an unknown cart ID behaves like
// an empty cart.
type CartStore interface {
	// Get returns the cart for the given ID, empty if none exists yet.
	Get(ctx context.Context, cartID string) (*entity.Cart, error)

	// Append adds a product record to the end of the cart.
	Append(ctx context.Context, cartID string, item entity.Product) error

	// RemoveFirst deletes the first item whose name matches, leaving any
	// later duplicates intact. Removing from an empty cart is a no-op.
	RemoveFirst(ctx context.Context, cartID string, name string) error
}
