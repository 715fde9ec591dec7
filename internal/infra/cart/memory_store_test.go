package cart

import (
	"context"
	"sync"
	"testing"

	"chocoshop/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_EmptyCart(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cart, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, 0.0, cart.Total())
}

func TestMemoryStore_AppendAndTotals(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Dark Bar", Price: 5.0}))
	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Milk Bar", Price: 4.0}))

	cart, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count())
	assert.Equal(t, 9.0, cart.Total())

	require.NoError(t, store.RemoveFirst(ctx, "visitor-1", "Dark Bar"))

	cart, err = store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count())
	assert.Equal(t, 4.0, cart.Total())
}

func TestMemoryStore_RemoveFirstLeavesDuplicates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Dark Bar", Price: 5.0}))
	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Milk Bar", Price: 4.0}))
	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Dark Bar", Price: 5.0}))

	require.NoError(t, store.RemoveFirst(ctx, "visitor-1", "Dark Bar"))

	cart, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	require.Equal(t, 2, cart.Count())
	assert.Equal(t, "Milk Bar", cart.Items[0].Name)
	assert.Equal(t, "Dark Bar", cart.Items[1].Name)
}

func TestMemoryStore_RemoveUnknownNameIsNoop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Dark Bar", Price: 5.0}))
	require.NoError(t, store.RemoveFirst(ctx, "visitor-1", "Truffle Box"))

	cart, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count())
}

func TestMemoryStore_CartsAreIsolatedPerID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "visitor-1", entity.Product{Name: "Dark Bar", Price: 5.0}))

	cart, err := store.Get(ctx, "visitor-2")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count())
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const goroutines = 32

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, "visitor-1", entity.Product{Name: "Dark Bar", Price: 5.0})
		}()
	}
	wg.Wait()

	cart, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, goroutines, cart.Count())
	assert.Equal(t, float64(goroutines)*5.0, cart.Total())
}
