package mongodb

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// distanceField is injected into each result document by $geoNear and
// stripped again during decoding.
const distanceField = "geo_distance"

type geoSearcher struct {
	coll *mongo.Collection
}

// NewGeoSearcher creates a spherical proximity searcher over the places
// collection.
func NewGeoSearcher(db *mongo.Database, cfg *config.Config) repository.GeoSearcher {
	return &geoSearcher{coll: db.Collection(cfg.Mongo.PlacesCollection)}
}

type geoRow struct {
	Distance float64      `bson:"geo_distance"`
	Place    entity.Place `bson:",inline"`
}

func (g *geoSearcher) Nearby(ctx context.Context, center orb.Point, maxAngle, distanceMultiplier float64) ([]repository.GeoResult, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.A{center[0], center[1]}},
			{Key: "distanceField", Value: distanceField},
			{Key: "spherical", Value: true},
			{Key: "maxDistance", Value: maxAngle},
			{Key: "distanceMultiplier", Value: distanceMultiplier},
		}}},
	}

	cursor, err := g.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "geoNear aggregation failed")
	}

	var rows []geoRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode geoNear results failed")
	}

	results := make([]repository.GeoResult, 0, len(rows))
	for _, row := range rows {
		place := row.Place
		results = append(results, repository.GeoResult{
			Distance: row.Distance,
			Place:    &place,
		})
	}

	return results, nil
}
