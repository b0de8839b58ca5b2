package mongo

import (
	"context"

	"rolodex/config"
	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit caps full-collection scans.
const listLimit = 100

// contactRepository implements the domain.ContactRepository interface using the MongoDB driver.
type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository is the constructor for contactRepository.
// It reuses the shared client; the collection handle is cheap and safe for concurrent use.
// It returns the repository as a domain.ContactRepository interface, adhering to dependency inversion.
func NewContactRepository(client *mongo.Client, cfg *config.Config) repository.ContactRepository {
	return &contactRepository{
		coll: client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection),
	}
}

// ListAll retrieves up to listLimit contacts in store order. No sort is applied,
// so the order is store-defined and not guaranteed stable across calls.
func (repo *contactRepository) ListAll(ctx context.Context) ([]*entity.Contact, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}
	defer cursor.Close(ctx)

	contacts := make([]*entity.Contact, 0, listLimit)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, errors.Wrap(err, "failed to decode contacts")
	}

	return contacts, nil
}

// GetByName retrieves a single contact by its unique name.
func (repo *contactRepository) GetByName(ctx context.Context, name string) (*entity.Contact, error) {
	var contact entity.Contact
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "contact_name", Value: name}}).Decode(&contact); err != nil {
		// If the error is 'no documents', return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by name")
	}

	return &contact, nil
}

// Insert persists a new contact. The unique index on contact_name makes the
// duplicate check atomic against concurrent writers.
func (repo *contactRepository) Insert(ctx context.Context, contact *entity.Contact) error {
	if _, err := repo.coll.InsertOne(ctx, contact); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrContactExists
		}

		return errors.Wrap(err, "failed to insert contact")
	}

	return nil
}
