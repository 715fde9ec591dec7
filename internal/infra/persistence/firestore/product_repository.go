package firestore

import (
	"context"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// productDocument is the persistence shape of a catalog entry.
type productDocument struct {
	Name        string  `firestore:"name"`
	Category    string  `firestore:"category"`
	Price       float64 `firestore:"price"`
	Weight      float64 `firestore:"weight"`
	Image       string  `firestore:"image"`
	Description string  `firestore:"description"`
	Keywords    string  `firestore:"keywords"`
}

// productRepository implements the repository.ProductRepository interface
// on top of the products collection.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a repository.ProductRepository interface,
// adhering to dependency inversion.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// ListAll streams every product document and returns the catalog in
// retrieval order.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	iter := repo.client.Collection(CollectionProducts).Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to stream products")
		}

		var docData productDocument
		if err := doc.DataTo(&docData); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode product document")
		}

		products = append(products, docData.toEntity())
	}

	return products, nil
}

// FindBySlug retrieves a single product by its document key.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	doc, err := repo.client.Collection(CollectionProducts).Doc(slug).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get product document")
	}

	var docData productDocument
	if err := doc.DataTo(&docData); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode product document")
	}

	return docData.toEntity(), nil
}

// Save writes the product document keyed by its slug. Set semantics: an
// existing document with the same key is silently replaced.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	docData := productDocument{
		Name:        product.Name,
		Category:    string(product.Category),
		Price:       product.Price,
		Weight:      product.Weight,
		Image:       product.Image,
		Description: product.Description,
		Keywords:    product.Keywords,
	}

	if _, err := repo.client.Collection(CollectionProducts).Doc(product.Slug()).Set(ctx, docData); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set product document")
	}

	return nil
}

func (d productDocument) toEntity() *entity.Product {
	return &entity.Product{
		Name:        d.Name,
		Category:    entity.Category(d.Category),
		Price:       d.Price,
		Weight:      d.Weight,
		Image:       d.Image,
		Description: d.Description,
		Keywords:    d.Keywords,
	}
}
