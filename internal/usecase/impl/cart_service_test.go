package impl

import (
	"context"
	"testing"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	mockRepo "chocoshop/internal/mocks/repository"
	"chocoshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (*mockRepo.MockCartStore, *mockRepo.MockProductRepository, usecase.CartUsecase) {
	cartStore := mockRepo.NewMockCartStore(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartStore:   cartStore,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartStore, productRepo, service
}

func TestCartService_View(t *testing.T) {
	cartStore, _, service := newCartService(t)
	ctx := context.Background()

	cart := &entity.Cart{
		ID: "cart-1",
		Items: []entity.Product{
			{Name: "Dark Bar", Price: 5.0},
			{Name: "Milk Truffle", Price: 4.0},
		},
	}
	cartStore.EXPECT().Get(ctx, "cart-1").Return(cart, nil)

	view, err := service.View(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, view.Items)
	assert.Equal(t, 2, view.Count)
	assert.InDelta(t, 9.0, view.Total, 0.0001)
}

func TestCartService_View_EmptyCart(t *testing.T) {
	cartStore, _, service := newCartService(t)
	ctx := context.Background()

	cartStore.EXPECT().Get(ctx, "cart-1").Return(&entity.Cart{ID: "cart-1"}, nil)

	view, err := service.View(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Count)
	assert.Zero(t, view.Total)
}

func TestCartService_AddProduct(t *testing.T) {
	cartStore, productRepo, service := newCartService(t)
	ctx := context.Background()

	product := &entity.Product{Name: "Dark Bar", Category: entity.CategoryChocolate, Price: 5.0}

	productRepo.EXPECT().FindBySlug(ctx, "dark_bar").Return(product, nil)
	cartStore.EXPECT().Append(ctx, "cart-1", *product).Return(nil)

	added, err := service.AddProduct(ctx, "cart-1", "dark_bar")
	require.NoError(t, err)
	assert.Equal(t, product, added)
}

func TestCartService_AddProduct_UnknownSlug(t *testing.T) {
	_, productRepo, service := newCartService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrProductNotFound)

	added, err := service.AddProduct(ctx, "cart-1", "missing")
	require.Error(t, err)
	assert.Nil(t, added)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_Remove(t *testing.T) {
	cartStore, _, service := newCartService(t)
	ctx := context.Background()

	cartStore.EXPECT().RemoveFirst(ctx, "cart-1", "Dark Bar").Return(nil)

	err := service.Remove(ctx, "cart-1", "Dark Bar")
	require.NoError(t, err)
}

func TestCartService_Remove_StoreError(t *testing.T) {
	cartStore, _, service := newCartService(t)
	ctx := context.Background()

	cartStore.EXPECT().RemoveFirst(ctx, "cart-1", "Dark Bar").Return(assert.AnError)

	err := service.Remove(ctx, "cart-1", "Dark Bar")
	require.Error(t, err)
}
