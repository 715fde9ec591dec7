// Package cart implements the session cart store in process memory.
//
// Carts are transient by design: nothing is persisted, and a restart empties
// every cart. The store is keyed by cart ID so concurrent visitors never
// share state, and a mutex guards the map against concurrent requests
// mutating the same cart.
package cart

import (
	"context"
	"sync"

	"chocoshop/internal/domain/entity"
	"chocoshop/internal/domain/repository"
)

// memoryStore is a concrete implementation of the CartStore interface.
type memoryStore struct {
	mu    sync.Mutex
	carts map[string][]entity.Product
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() repository.CartStore {
	return &memoryStore{
		carts: make(map[string][]entity.Product),
	}
}

// Get returns a snapshot of the cart for the given ID. An unknown ID yields
// an empty cart rather than an error.
func (s *memoryStore) Get(_ context.Context, cartID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	snapshot := make([]entity.Product, len(items))
	copy(snapshot, items)

	return &entity.Cart{
		ID:    cartID,
		Items: snapshot,
	}, nil
}

// Append adds a product record to the end of the cart. Duplicates are
// permitted.
func (s *memoryStore) Append(_ context.Context, cartID string, item entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cartID] = append(s.carts[cartID], item)

	return nil
}

// RemoveFirst deletes the first item whose name matches, leaving later
// duplicates intact. Removing a name that is not present is a no-op.
func (s *memoryStore) RemoveFirst(_ context.Context, cartID string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	for i, item := range items {
		if item.Name == name {
			s.carts[cartID] = append(items[:i:i], items[i+1:]...)

			break
		}
	}

	return nil
}
