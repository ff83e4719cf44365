package repository

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/paulmach/orb"
)

// GeoResult is one proximity hit: the raw place document and its
// distance from the query center, already scaled by the caller's
// distance multiplier.
type GeoResult struct {
	Distance float64
	Place    *entity.Place
}

// GeoSearcher runs spherical nearest-neighbor queries against the place
// store. The center is [longitude, latitude]; maxAngle bounds the search
// as an angular radius in radians, and distanceMultiplier scales the
// reported angular distances (pass the sphere radius to get meters).
type GeoSearcher interface {
	Nearby(ctx context.Context, center orb.Point, maxAngle, distanceMultiplier float64) ([]GeoResult, error)
}
