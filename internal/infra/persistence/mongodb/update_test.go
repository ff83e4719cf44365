package mongodb

import (
	"testing"
	"time"

	"nearby/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFlattenSet(t *testing.T) {
	doc := bson.D{
		{Key: "match", Value: bson.D{
			{Key: "ubernear", Value: bson.D{
				{Key: "score", Value: 300},
				{Key: "place_id", Value: "place-1"},
			}},
			{Key: "place", Value: bson.D{
				{Key: "address", Value: "6506 Hollywood Blvd"},
			}},
		}},
		{Key: "ubernear", Value: bson.D{
			{Key: "match_completed", Value: "2026-08-31"},
		}},
	}

	flat := flattenSet(doc)

	assert.Equal(t, bson.D{
		{Key: "match.ubernear.score", Value: 300},
		{Key: "match.ubernear.place_id", Value: "place-1"},
		{Key: "match.place.address", Value: "6506 Hollywood Blvd"},
		{Key: "ubernear.match_completed", Value: "2026-08-31"},
	}, flat)
}

func TestFlattenSetDropsNilLeaves(t *testing.T) {
	doc := bson.D{
		{Key: "kept", Value: "value"},
		{Key: "dropped", Value: nil},
		{Key: "nested", Value: bson.D{
			{Key: "also_dropped", Value: nil},
			{Key: "also_kept", Value: 1},
		}},
	}

	flat := flattenSet(doc)

	assert.Equal(t, bson.D{
		{Key: "kept", Value: "value"},
		{Key: "nested.also_kept", Value: 1},
	}, flat)
}

func TestFlattenSetKeepsArrays(t *testing.T) {
	doc := bson.D{
		{Key: "ubernear", Value: bson.D{
			{Key: "matched", Value: bson.A{"page", "coord"}},
		}},
	}

	flat := flattenSet(doc)

	require.Len(t, flat, 1)
	assert.Equal(t, "ubernear.matched", flat[0].Key)
	assert.Equal(t, bson.A{"page", "coord"}, flat[0].Value)
}

func TestMarshalDocOmitsEmptyMatchFields(t *testing.T) {
	match := &entity.Match{
		Ubernear: entity.MatchInfo{
			PlaceID:  "event-1",
			Source:   "facebook",
			Location: orb.Point{-118.33079, 34.10156},
		},
		Place: entity.PlaceAddress{
			Address:   "6506 Hollywood Blvd",
			Locality:  "Los Angeles",
			Name:      "Playhouse",
			Latitude:  34.10156,
			Longitude: -118.33079,
		},
	}

	doc, err := marshalDoc(match)
	require.NoError(t, err)

	flat := flattenSet(doc)
	keys := make([]string, 0, len(flat))
	for _, elem := range flat {
		keys = append(keys, elem.Key)
	}

	assert.Contains(t, keys, "ubernear.place_id")
	assert.Contains(t, keys, "place.address")
	// Venue matches carry no score, origin tag or distance.
	assert.NotContains(t, keys, "ubernear.score")
	assert.NotContains(t, keys, "ubernear.search_type")
	assert.NotContains(t, keys, "ubernear.distance")
	assert.NotContains(t, keys, "place.postcode")
}

func TestMarshalDocRoundTripsTimestamps(t *testing.T) {
	completed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	doc, err := marshalDoc(bson.D{{Key: "match_completed", Value: completed}})
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "match_completed", doc[0].Key)
}
