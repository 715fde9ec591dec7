package impl

import (
	"context"
	"log/slog"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartStore   repository.CartStore
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService. It receives all dependencies as interfaces.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartStore:   params.CartStore,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// View returns the cart contents with the running item count and total price.
func (srv *cartService) View(ctx context.Context, cartID string) (*usecase.CartView, error) {
	cart, err := srv.cartStore.Get(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return &usecase.CartView{
		Items: cart.Items,
		Count: cart.Count(),
		Total: cart.Total(),
	}, nil
}

// AddProduct appends the authoritative catalog record for the given slug to
// the cart. The record always comes from the catalog, never from
// client-supplied data.
func (srv *cartService) AddProduct(ctx context.Context, cartID string, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to add product to cart")
		}

		return nil, errors.Wrap(err, "failed to add product to cart")
	}

	if err := srv.cartStore.Append(ctx, cartID, *product); err != nil {
		return nil, errors.Wrap(err, "failed to append product to cart")
	}

	srv.logger.Debug("Product added to cart", slog.String("cartID", cartID), slog.String("slug", slug))

	return product, nil
}

// Remove deletes the first cart entry matching the product name, leaving any
// duplicates of the same name intact.
func (srv *cartService) Remove(ctx context.Context, cartID string, name string) error {
	if err := srv.cartStore.RemoveFirst(ctx, cartID, name); err != nil {
		return errors.Wrap(err, "failed to remove product from cart")
	}

	srv.logger.Debug("Product removed from cart", slog.String("cartID", cartID), slog.String("name", name))

	return nil
}
