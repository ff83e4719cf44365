package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCoordinateUnmarshalKeepsNumericType(t *testing.T) {
	type doc struct {
		Latitude *Coordinate `bson:"latitude"`
	}

	tests := []struct {
		name     string
		value    any
		want     float64
		integral bool
	}{
		{"double", 34.10156, 34.10156, false},
		{"whole double", 34.0, 34, false},
		{"int32", int32(34), 34, true},
		{"int64", int64(34), 34, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bson.Marshal(bson.D{{Key: "latitude", Value: tt.value}})
			require.NoError(t, err)

			var got doc
			require.NoError(t, bson.Unmarshal(data, &got))
			require.NotNil(t, got.Latitude)
			assert.Equal(t, tt.want, got.Latitude.Value)
			assert.Equal(t, tt.integral, got.Latitude.Integral)
		})
	}
}

func TestCoordinateUnmarshalRejectsNonNumeric(t *testing.T) {
	type doc struct {
		Latitude *Coordinate `bson:"latitude"`
	}

	data, err := bson.Marshal(bson.D{{Key: "latitude", Value: "34.1"}})
	require.NoError(t, err)

	var got doc
	assert.Error(t, bson.Unmarshal(data, &got))
}

func TestCoordinateMarshalRoundTrip(t *testing.T) {
	type doc struct {
		Latitude  *Coordinate `bson:"latitude"`
		Longitude *Coordinate `bson:"longitude"`
	}

	data, err := bson.Marshal(doc{
		Latitude:  Float(34.10156),
		Longitude: Integer(-118),
	})
	require.NoError(t, err)

	var got doc
	require.NoError(t, bson.Unmarshal(data, &got))
	assert.Equal(t, Float(34.10156), got.Latitude)
	assert.Equal(t, Integer(-118), got.Longitude)
}
