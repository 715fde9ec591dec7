package impl

import (
	"context"
	"log/slog"
	"strings"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/domain/service"
	"chocoshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchTokenLimit truncates each query token before matching, so a query
// for "strawberries" matches the same products as "straw".
const searchTokenLimit = 5

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService. It receives all dependencies as interfaces.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

// ListProducts returns the catalog, filtered to one category when requested.
// The filter runs server-side; an unknown category is rejected rather than
// silently returning the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	if category == "" {
		return products, nil
	}

	if !entity.Category(category).Valid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "failed to list products")
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.Category == entity.Category(category) {
			filtered = append(filtered, product)
		}
	}

	return filtered, nil
}

// GetProduct retrieves one product by its slug.
func (srv *catalogService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to get product")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// AddProduct ingests a new catalog entry: the image is uploaded to blob
// storage first, then the document is written keyed by the product slug.
// There is no rollback of the uploaded image if the document write fails.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*usecase.AddProductOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}

	category := entity.Category(input.Category)
	if !category.Valid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "failed to add product")
	}

	if input.Image == nil {
		return nil, errors.Wrap(domainerrors.ErrImageRequired, "failed to add product")
	}

	product := &entity.Product{
		Name:        input.Name,
		Category:    category,
		Price:       input.Price,
		Weight:      input.Weight,
		Description: input.Description,
		Keywords:    strings.ToLower(input.Keywords),
	}

	// Images live under "<category>/<slug>", mirroring the catalog key.
	imageKey := string(category) + "/" + product.Slug()

	imageURL, err := srv.imageStore.Upload(ctx, imageKey, input.ImageContentType, input.Image)
	if err != nil {
		srv.logger.Error("Failed to upload product image", slog.String("key", imageKey), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, "failed to add product")
	}
	product.Image = imageURL

	if err := srv.productRepo.Save(ctx, product); err != nil {
		srv.logger.Error("Failed to save product document", slog.String("slug", product.Slug()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save product")
	}

	srv.logger.Info("Product added", slog.String("slug", product.Slug()), slog.String("category", string(category)))

	return &usecase.AddProductOutput{Product: product}, nil
}

// Search filters the catalog by matching query tokens against each
// product's precomputed lowercase keywords string. Tokens are truncated to
// searchTokenLimit characters and lowercased; a product is included exactly
// once as soon as any token matches by substring containment. Matches keep
// catalog retrieval order; there is no ranking.
func (srv *catalogService) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	tokens := searchTokens(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	var matched []*entity.Product
	for _, product := range products {
		for _, token := range tokens {
			if strings.Contains(product.Keywords, token) {
				matched = append(matched, product)

				break
			}
		}
	}

	return matched, nil
}

// searchTokens splits the query on whitespace and normalizes each token.
func searchTokens(query string) []string {
	fields := strings.Fields(query)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, truncateToken(strings.ToLower(field)))
	}

	return tokens
}

func truncateToken(token string) string {
	runes := []rune(token)
	if len(runes) > searchTokenLimit {
		return string(runes[:searchTokenLimit])
	}

	return token
}
