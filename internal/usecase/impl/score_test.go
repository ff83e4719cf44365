package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hollywoodPlace() *entity.Place {
	location := orb.Point{-118.33079, 34.10156}

	return &entity.Place{
		ID: "place-1",
		Ubernear: entity.PlaceStatus{
			Source:   "factual",
			Location: &location,
		},
		Normalized: &entity.NormalizedAddress{
			Address: "6506 hollywood blvd",
			City:    "los angeles",
			State:   "ca",
			Country: "usa",
			Zip5:    "90028",
			Name:    "playhouse",
		},
		Facebook: &entity.PlacePages{
			Pages: []entity.PageRef{{ID: "page-1"}},
		},
	}
}

func TestMatchWithPlace_CoordinateScenario(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Location: "Playhouse Nightclub",
			Venue: &entity.RawVenue{
				ID:        "page-1",
				Street:    "6506 Hollywood Boulevard",
				City:      "Los Angeles",
				Latitude:  entity.Float(34.10156),
				Longitude: entity.Float(-118.33079),
			},
		},
	}

	mocks.geo.EXPECT().
		Nearby(ctx, orb.Point{-118.33079, 34.10156}, maxAngle, float64(earthRadiusMeters)).
		Return([]repository.GeoResult{{Distance: 12.5, Place: hollywoodPlace()}}, nil)

	match := service.MatchWithPlace(ctx, event, nil)
	require.NotNil(t, match)

	assert.Equal(t, "place-1", match.Ubernear.PlaceID)
	assert.Equal(t, "factual", match.Ubernear.Source)
	assert.Equal(t, searchTypeCoordinate, match.Ubernear.SearchType)
	require.NotNil(t, match.Ubernear.Distance)
	assert.Equal(t, 12.5, *match.Ubernear.Distance)
	assert.Equal(t, orb.Point{-118.33079, 34.10156}, match.Ubernear.Location)

	// page, coord+name, coord+address, address+name and address+locality
	// each contribute.
	assert.Equal(t, 500, match.Ubernear.Score)
	assert.Equal(t, []string{"page", "coord", "address", "locality", "name"}, match.Ubernear.Matched)

	// The venue name that matched replaces the stored place name.
	assert.Equal(t, "Playhouse Nightclub", match.Place.Name)
	assert.Equal(t, "6506 Hollywood Blvd", match.Place.Address)
	assert.Equal(t, "Los Angeles", match.Place.Locality)
}

func TestMatchWithPlace_NameMismatchStillMatches(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Location: "Friday Night Salsa",
			Venue: &entity.RawVenue{
				ID:        "page-1",
				Street:    "6506 Hollywood Blvd",
				City:      "Los Angeles",
				Latitude:  entity.Float(34.10156),
				Longitude: entity.Float(-118.33079),
			},
		},
	}

	mocks.geo.EXPECT().
		Nearby(ctx, orb.Point{-118.33079, 34.10156}, maxAngle, float64(earthRadiusMeters)).
		Return([]repository.GeoResult{{Distance: 12.5, Place: hollywoodPlace()}}, nil)

	match := service.MatchWithPlace(ctx, event, nil)
	require.NotNil(t, match)

	assert.Equal(t, 300, match.Ubernear.Score)
	assert.Equal(t, []string{"page", "coord", "address", "locality"}, match.Ubernear.Matched)

	// No name matched, so the first venue name wins over the stored one.
	assert.Equal(t, "Friday Night Salsa", match.Place.Name)
}

func TestMatchWithPlace_NormalizedStrategy(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Location: "Playhouse",
		},
		Normalized: &entity.NormalizedAddress{
			Address: "6506 Hollywood Blvd",
			City:    "Los Angeles",
			State:   "CA",
			Country: "USA",
			Zip5:    "90028",
		},
	}

	mocks.places.EXPECT().
		FindByNormalizedAddress(ctx, "6506 Hollywood Blvd", "Los Angeles").
		Return([]*entity.Place{hollywoodPlace()}, nil)

	match := service.MatchWithPlace(ctx, event, nil)
	require.NotNil(t, match)

	assert.Equal(t, searchTypeNormalized, match.Ubernear.SearchType)
	assert.Nil(t, match.Ubernear.Distance)
	assert.Equal(t, 300, match.Ubernear.Score)
	assert.Equal(t,
		[]string{"address", "locality", "region", "postcode", "country", "name"},
		match.Ubernear.Matched)
}

func TestMatchWithPlace_DistanceTooFar(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Venue: &entity.RawVenue{
				Street:    "6506 Hollywood Blvd",
				City:      "Los Angeles",
				Latitude:  entity.Float(34.10156),
				Longitude: entity.Float(-118.33079),
			},
		},
	}

	mocks.geo.EXPECT().
		Nearby(ctx, orb.Point{-118.33079, 34.10156}, maxAngle, float64(earthRadiusMeters)).
		Return([]repository.GeoResult{{Distance: 150, Place: hollywoodPlace()}}, nil)

	assert.Nil(t, service.MatchWithPlace(ctx, event, nil))
}

func TestMatchWithPlace_BelowFloor(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Venue: &entity.RawVenue{
				Street: "1 Main St",
				City:   "Springfield",
			},
		},
	}

	mocks.places.EXPECT().
		FindByID(ctx, "place-1").
		Return(hollywoodPlace(), nil)

	assert.Nil(t, service.MatchWithPlace(ctx, event, []string{"place-1"}))
}

func TestMatchWithPlace_NoCandidates(t *testing.T) {
	service, _ := newTestLocator(t)

	event := &entity.Event{ID: "event-1"}

	assert.Nil(t, service.MatchWithPlace(context.Background(), event, nil))
}

func TestMatchWithPlace_DedupKeepsCoordinateOrigin(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Venue: &entity.RawVenue{
				Street:    "6506 Hollywood Blvd",
				City:      "Los Angeles",
				Latitude:  entity.Float(34.10156),
				Longitude: entity.Float(-118.33079),
			},
		},
	}

	mocks.geo.EXPECT().
		Nearby(ctx, orb.Point{-118.33079, 34.10156}, maxAngle, float64(earthRadiusMeters)).
		Return([]repository.GeoResult{{Distance: 5, Place: hollywoodPlace()}}, nil)
	mocks.places.EXPECT().
		FindByID(ctx, "place-1").
		Return(hollywoodPlace(), nil)

	match := service.MatchWithPlace(ctx, event, []string{"place-1"})
	require.NotNil(t, match)

	// The coordinate strategy saw the place first, so its origin tag and
	// distance survive the rediscovery.
	assert.Equal(t, searchTypeCoordinate, match.Ubernear.SearchType)
	require.NotNil(t, match.Ubernear.Distance)
	assert.Equal(t, 5.0, *match.Ubernear.Distance)
}

func TestMatchWithPlace_MissingPlaceIsSkipped(t *testing.T) {
	service, mocks := newTestLocator(t)
	ctx := context.Background()

	event := &entity.Event{
		ID: "event-1",
		Facebook: entity.FacebookEvent{
			Venue: &entity.RawVenue{
				Street: "6506 Hollywood Blvd",
				City:   "Los Angeles",
			},
		},
	}

	mocks.places.EXPECT().
		FindByID(ctx, "gone").
		Return(nil, repository.ErrPlaceNotFound)
	mocks.places.EXPECT().
		FindByID(ctx, "place-1").
		Return(hollywoodPlace(), nil)

	match := service.MatchWithPlace(ctx, event, []string{"gone", "place-1"})
	require.NotNil(t, match)
	assert.Equal(t, "place-1", match.Ubernear.PlaceID)
}

func TestPlaceSummary_RejectsIncompletePlaces(t *testing.T) {
	service, _ := newTestLocator(t)
	location := orb.Point{-118.33079, 34.10156}

	noCoords := hollywoodPlace()
	noCoords.Ubernear.Location = nil
	assert.Nil(t, service.placeSummary(noCoords))

	noName := hollywoodPlace()
	noName.Normalized.Name = ""
	assert.Nil(t, service.placeSummary(noName))

	noAddress := &entity.Place{
		ID:       "place-2",
		Ubernear: entity.PlaceStatus{Location: &location},
		Info:     &entity.PlaceInfo{Locality: "Los Angeles", Name: "Playhouse"},
	}
	assert.Nil(t, service.placeSummary(noAddress))
}

func TestPlaceSummary_PrefersNormalizedOverInfo(t *testing.T) {
	service, _ := newTestLocator(t)

	place := hollywoodPlace()
	place.Info = &entity.PlaceInfo{
		Address:  "6506 Hollywood Blvd Suite 2",
		Locality: "West Hollywood",
		Name:     "Old Name",
	}

	summary := service.placeSummary(place)
	require.NotNil(t, summary)

	assert.Equal(t, "6506 Hollywood Blvd", summary.Address.Address)
	assert.Equal(t, "Los Angeles", summary.Address.Locality)
	assert.Equal(t, "Playhouse", summary.Address.Name)
	assert.Equal(t, "CA", summary.Address.Region)
	assert.Equal(t, "USA", summary.Address.Country)
	assert.Equal(t, "90028", summary.Address.Postcode)
	assert.Equal(t, 34.10156, summary.Address.Latitude)
	assert.Equal(t, -118.33079, summary.Address.Longitude)
	assert.Equal(t, []string{"page-1"}, summary.PageIDs)
}

func TestScoreVector(t *testing.T) {
	tests := []struct {
		name   string
		vector entity.MatchVector
		want   int
	}{
		{"empty", entity.MatchVector{}, 0},
		{"page only", entity.MatchVector{Page: true}, 100},
		{"address and locality", entity.MatchVector{Address: true, Locality: true}, 100},
		{"postcode alone scores nothing", entity.MatchVector{Postcode: true}, 0},
		{"region and country score nothing", entity.MatchVector{Region: true, Country: true}, 0},
		{"coord with address and name", entity.MatchVector{Coord: true, Address: true, Name: true}, 300},
		{
			"everything",
			entity.MatchVector{
				Page: true, Coord: true, Address: true, Locality: true,
				Region: true, Postcode: true, Country: true, Name: true,
			},
			600,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreVector(tt.vector))
		})
	}
}

// Setting any additional dimension must never lower a vector's score.
func TestScoreVectorMonotonic(t *testing.T) {
	vectors := []entity.MatchVector{
		{},
		{Page: true},
		{Address: true},
		{Address: true, Locality: true},
		{Coord: true, Address: true, Name: true},
		{Page: true, Coord: true, Address: true, Locality: true, Name: true},
	}
	raise := []func(*entity.MatchVector){
		func(v *entity.MatchVector) { v.Page = true },
		func(v *entity.MatchVector) { v.Coord = true },
		func(v *entity.MatchVector) { v.Address = true },
		func(v *entity.MatchVector) { v.Locality = true },
		func(v *entity.MatchVector) { v.Region = true },
		func(v *entity.MatchVector) { v.Postcode = true },
		func(v *entity.MatchVector) { v.Country = true },
		func(v *entity.MatchVector) { v.Name = true },
	}

	for _, vector := range vectors {
		base := scoreVector(vector)
		for _, set := range raise {
			raised := vector
			set(&raised)
			assert.GreaterOrEqual(t, scoreVector(raised), base)
		}
	}
}

func scored(id string, vector entity.MatchVector) *scoredMatch {
	return &scoredMatch{
		match:  &entity.Match{Ubernear: entity.MatchInfo{PlaceID: id}},
		vector: vector,
		score:  scoreVector(vector),
	}
}

func TestBestMatch_HighestScoreWins(t *testing.T) {
	low := scored("low", entity.MatchVector{Address: true, Locality: true})
	high := scored("high", entity.MatchVector{Coord: true, Address: true, Locality: true})

	best := bestMatch([]*scoredMatch{low, high})
	require.NotNil(t, best)
	assert.Equal(t, "high", best.match.Ubernear.PlaceID)
}

func TestBestMatch_PageBreaksTie(t *testing.T) {
	// Both score 100.
	noPage := scored("no-page", entity.MatchVector{Address: true, Locality: true})
	page := scored("page", entity.MatchVector{Page: true})

	best := bestMatch([]*scoredMatch{noPage, page})
	require.NotNil(t, best)
	assert.Equal(t, "page", best.match.Ubernear.PlaceID)
}

func TestBestMatch_LocalityBeatsNameAtEqualScore(t *testing.T) {
	// Both score 100; address+locality outranks address+name.
	name := scored("name", entity.MatchVector{Address: true, Name: true})
	locality := scored("locality", entity.MatchVector{Address: true, Locality: true})

	best := bestMatch([]*scoredMatch{name, locality})
	require.NotNil(t, best)
	assert.Equal(t, "locality", best.match.Ubernear.PlaceID)
}

func TestBestMatch_RegionBreaksNameTie(t *testing.T) {
	plain := scored("plain", entity.MatchVector{Address: true, Name: true})
	withRegion := scored("with-region", entity.MatchVector{Address: true, Name: true, Region: true})

	best := bestMatch([]*scoredMatch{plain, withRegion})
	require.NotNil(t, best)
	assert.Equal(t, "with-region", best.match.Ubernear.PlaceID)
}

func TestBestMatch_EarlierCandidateKeepsUndecidedTie(t *testing.T) {
	first := scored("first", entity.MatchVector{Address: true, Locality: true})
	second := scored("second", entity.MatchVector{Address: true, Locality: true})

	best := bestMatch([]*scoredMatch{first, second})
	require.NotNil(t, best)
	assert.Equal(t, "first", best.match.Ubernear.PlaceID)
}

func TestBestMatch_FloorAppliesToFirstCandidateOnly(t *testing.T) {
	zero := scored("zero", entity.MatchVector{Postcode: true})
	accepted := scored("accepted", entity.MatchVector{Page: true})

	assert.Nil(t, bestMatch([]*scoredMatch{zero}))
	assert.Nil(t, bestMatch(nil))

	best := bestMatch([]*scoredMatch{zero, accepted})
	require.NotNil(t, best)
	assert.Equal(t, "accepted", best.match.Ubernear.PlaceID)
}
