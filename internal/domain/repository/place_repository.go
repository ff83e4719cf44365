package repository

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPlaceNotFound is returned when a place id has no record.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the read-only place-store operations used by
// the candidate search strategies.
type PlaceRepository interface {
	// FindByID retrieves a place by its identifier.
	// Returns ErrPlaceNotFound if no place exists.
	FindByID(ctx context.Context, id string) (*entity.Place, error)

	// FindByNormalizedAddress retrieves every place whose normalized
	// street and city match exactly.
	FindByNormalizedAddress(ctx context.Context, street, city string) ([]*entity.Place, error)
}
