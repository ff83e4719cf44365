package mongodb

import (
	"context"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a MongoDB-backed event repository.
func NewEventRepository(db *mongo.Database, cfg *config.Config) repository.EventRepository {
	return &eventRepository{coll: db.Collection(cfg.Mongo.EventsCollection)}
}

func exists(want bool) bson.D {
	return bson.D{{Key: "$exists", Value: want}}
}

func (r *eventRepository) FindMatchable(ctx context.Context, processAll bool) ([]*entity.Event, error) {
	filter := bson.D{{Key: "ubernear.lookup_completed", Value: exists(true)}}
	if !processAll {
		filter = bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "ubernear.lookup_completed", Value: exists(true)}},
			bson.D{{Key: "ubernear.match_completed", Value: exists(false)}},
			bson.D{{Key: "ubernear.match_failed", Value: exists(false)}},
		}}}
	}

	return r.find(ctx, filter)
}

func (r *eventRepository) FindFallbackCandidates(ctx context.Context, processAll bool) ([]*entity.Event, error) {
	filter := bson.D{{Key: "ubernear.lookup_completed", Value: exists(true)}}
	if !processAll {
		hasName := bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "facebook.location", Value: exists(true)}},
			bson.D{{Key: "facebook.owner.name", Value: exists(true)}},
		}}}
		filter = bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "ubernear.match_completed", Value: exists(false)}},
			bson.D{{Key: "ubernear.match_failed", Value: repository.MatchFailedNoPlace}},
			bson.D{{Key: "facebook.venue.latitude", Value: exists(true)}},
			bson.D{{Key: "facebook.venue.longitude", Value: exists(true)}},
			bson.D{{Key: "facebook.venue.street", Value: exists(true)}},
			bson.D{{Key: "facebook.venue.city", Value: exists(true)}},
			hasName,
		}}}
	}

	return r.find(ctx, filter)
}

// find runs the filter sorted by fetch timestamp ascending, so the
// backlog is worked oldest first.
func (r *eventRepository) find(ctx context.Context, filter bson.D) ([]*entity.Event, error) {
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "ubernear.fetched", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find events failed")
	}

	var events []*entity.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, errors.Wrap(err, "decode events failed")
	}

	return events, nil
}

func (r *eventRepository) SaveMatch(ctx context.Context, eventID string, match *entity.Match, completedAt time.Time) error {
	doc, err := marshalDoc(match)
	if err != nil {
		return err
	}

	set := bson.D{
		{Key: "match", Value: doc},
		{Key: "ubernear.match_completed", Value: completedAt},
	}

	return saveNoReplace(ctx, r.coll, eventID, set, nil)
}

func (r *eventRepository) MarkMatchFailed(ctx context.Context, eventID string, reason string) error {
	set := bson.D{{Key: "ubernear.match_failed", Value: reason}}

	return saveNoReplace(ctx, r.coll, eventID, set, nil)
}
