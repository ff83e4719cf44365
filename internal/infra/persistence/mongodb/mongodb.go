// Package mongodb implements the repository interfaces on the MongoDB
// document store shared with the ingestion pipeline.
package mongodb

import (
	"context"
	"log/slog"

	"nearby/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the parameters required for the database handle
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New connects to MongoDB and returns the configured database handle.
// The client disconnects on application shutdown.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), params.Config.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo failed")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "ping mongo failed")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from mongo")

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}

// EnsureIndexes creates the indexes the matcher and its query surface
// rely on: 2d geo indexes on the indexed coordinate pairs and the
// normalized street+city index backing the third search strategy.
func EnsureIndexes(ctx context.Context, db *mongo.Database, cfg *config.Config) error {
	events := db.Collection(cfg.Mongo.EventsCollection)
	places := db.Collection(cfg.Mongo.PlacesCollection)

	if _, err := events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "match.ubernear.location", Value: "2d"}},
	}); err != nil {
		return errors.Wrap(err, "create event location index failed")
	}

	if _, err := places.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ubernear.location", Value: "2d"}}},
		{Keys: bson.D{
			{Key: "normalized.address", Value: 1},
			{Key: "normalized.city", Value: 1},
		}},
	}); err != nil {
		return errors.Wrap(err, "create place indexes failed")
	}

	return nil
}
