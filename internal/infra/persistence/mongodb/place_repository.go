package mongodb

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type placeRepository struct {
	coll *mongo.Collection
}

// NewPlaceRepository creates a MongoDB-backed place repository.
func NewPlaceRepository(db *mongo.Database, cfg *config.Config) repository.PlaceRepository {
	return &placeRepository{coll: db.Collection(cfg.Mongo.PlacesCollection)}
}

func (r *placeRepository) FindByID(ctx context.Context, id string) (*entity.Place, error) {
	var place entity.Place
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&place)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "find place failed")
	}

	return &place, nil
}

func (r *placeRepository) FindByNormalizedAddress(ctx context.Context, street, city string) ([]*entity.Place, error) {
	filter := bson.D{
		{Key: "normalized.address", Value: street},
		{Key: "normalized.city", Value: city},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find places by normalized address failed")
	}

	var places []*entity.Place
	if err := cursor.All(ctx, &places); err != nil {
		return nil, errors.Wrap(err, "decode places failed")
	}

	return places, nil
}
