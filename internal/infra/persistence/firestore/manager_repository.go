package firestore

import (
	"context"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// managerDocument is the persistence shape of an authorized manager record.
type managerDocument struct {
	Username string `firestore:"username"`
	Password string `firestore:"password"` // salted bcrypt hash
}

// managerRepository implements the repository.ManagerRepository interface
// on top of the store_managers collection.
type managerRepository struct {
	client *firestore.Client
}

// NewManagerRepository is the constructor for managerRepository.
func NewManagerRepository(client *firestore.Client) repository.ManagerRepository {
	return &managerRepository{client: client}
}

// FindByUsername looks up a single manager record by exact username. The
// collection uses auto-generated document IDs, so this is a field query,
// not a key lookup.
func (repo *managerRepository) FindByUsername(ctx context.Context, username string) (*entity.Manager, error) {
	iter := repo.client.Collection(CollectionManagers).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrManagerNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query manager record")
	}

	var docData managerDocument
	if err := doc.DataTo(&docData); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode manager document")
	}

	return &entity.Manager{
		Username:     docData.Username,
		PasswordHash: docData.Password,
	}, nil
}

// Create adds a new manager record with an auto-generated document ID,
// matching how records are provisioned out-of-band.
func (repo *managerRepository) Create(ctx context.Context, manager *entity.Manager) error {
	docData := managerDocument{
		Username: manager.Username,
		Password: manager.PasswordHash,
	}

	if _, _, err := repo.client.Collection(CollectionManagers).Add(ctx, docData); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add manager record")
	}

	return nil
}
