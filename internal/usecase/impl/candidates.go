package impl

import (
	"context"
	"log/slog"
	"strings"

	"nearby/internal/address"
	"nearby/internal/domain/entity"
)

// Origin tags identify which strategy produced a candidate. They are
// retained on the final match for provenance.
const (
	searchTypeCoordinate = "coordinate"
	searchTypePlaceIDs   = "place_ids"
	searchTypeNormalized = "normalized"
)

// candidate pairs a validated place summary with the strategy that found
// it. Only the coordinate strategy carries a distance.
type candidate struct {
	summary    *entity.PlaceSummary
	searchType string
	distance   *float64
}

// nearbyCandidates searches for places within maxMeters of the venue
// coordinates. A failed query yields nothing: the event is retried next
// pass, not marked failed.
func (s *locatorService) nearbyCandidates(ctx context.Context, venue *entity.Venue, eventID string) []candidate {
	if venue.Coords == nil {
		return nil
	}

	results, err := s.geo.Nearby(ctx, *venue.Coords, maxAngle, earthRadiusMeters)
	if err != nil {
		s.logger.Error("GeoNear search returned error",
			slog.String("event_id", eventID),
			slog.Any("error", err),
		)

		return nil
	}

	var candidates []candidate
	for _, result := range results {
		summary := s.placeSummary(result.Place)
		if summary == nil {
			continue
		}

		// The store bounds the search already, but the contract is
		// enforced here too.
		if result.Distance > maxMeters {
			s.logger.Error("GeoNear search returned distance greater than allowed. Skipping place.",
				slog.Float64("distance", result.Distance),
				slog.Int("max_meters", maxMeters),
				slog.String("event_id", eventID),
				slog.String("place_id", summary.ID),
			)

			continue
		}

		distance := result.Distance
		candidates = append(candidates, candidate{
			summary:    summary,
			searchType: searchTypeCoordinate,
			distance:   &distance,
		})
	}

	return candidates
}

// placeIDCandidates looks up previously associated place ids, in list
// order.
func (s *locatorService) placeIDCandidates(ctx context.Context, placeIDs []string) []candidate {
	var candidates []candidate
	for _, placeID := range placeIDs {
		place, err := s.places.FindByID(ctx, placeID)
		if err != nil {
			s.logger.Error("Place lookup failed. Skipping place.",
				slog.String("place_id", placeID),
				slog.Any("error", err),
			)

			continue
		}

		summary := s.placeSummary(place)
		if summary == nil {
			continue
		}

		candidates = append(candidates, candidate{
			summary:    summary,
			searchType: searchTypePlaceIDs,
		})
	}

	return candidates
}

// normalizedCandidates searches places by the event's normalized street
// and city.
func (s *locatorService) normalizedCandidates(ctx context.Context, event *entity.Event) []candidate {
	if event.Normalized == nil {
		return nil
	}

	places, err := s.places.FindByNormalizedAddress(ctx, event.Normalized.Address, event.Normalized.City)
	if err != nil {
		s.logger.Error("Normalized address search returned error",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		return nil
	}

	var candidates []candidate
	for _, place := range places {
		summary := s.placeSummary(place)
		if summary == nil {
			continue
		}

		candidates = append(candidates, candidate{
			summary:    summary,
			searchType: searchTypeNormalized,
		})
	}

	return candidates
}

// requiredAddressFields is checked in order; only the first missing field
// is reported, and log consumers depend on that single-field message.
var requiredAddressFields = []struct {
	name    string
	missing func(entity.PlaceAddress) bool
}{
	{"address", func(a entity.PlaceAddress) bool { return a.Address == "" }},
	{"locality", func(a entity.PlaceAddress) bool { return a.Locality == "" }},
	{"name", func(a entity.PlaceAddress) bool { return a.Name == "" }},
}

func missingAddressField(addr entity.PlaceAddress) (string, bool) {
	for _, field := range requiredAddressFields {
		if field.missing(addr) {
			return field.name, true
		}
	}

	return "", false
}

// placeSummary extracts and validates the fields scoring needs from a raw
// place document. A place without indexed coordinates, or missing a
// required address field, is rejected with a logged error.
func (s *locatorService) placeSummary(place *entity.Place) *entity.PlaceSummary {
	if place.Ubernear.Location == nil {
		s.logger.Error("Place has no indexed coordinates. Skipping place",
			slog.String("place_id", place.ID))

		return nil
	}
	coords := *place.Ubernear.Location
	lng, lat := coords[0], coords[1]

	var addr entity.PlaceAddress
	switch {
	// Always prefer normalized addresses.
	case place.Normalized != nil:
		norm := place.Normalized
		addr = entity.PlaceAddress{
			Address:  address.TitleCase(norm.Address),
			Country:  strings.ToUpper(norm.Country),
			Locality: address.TitleCase(norm.City),
			Name:     address.TitleCase(norm.Name),
			Postcode: norm.Zip5,
			Region:   strings.ToUpper(norm.State),
		}
	case place.Info != nil:
		info := place.Info
		addr = entity.PlaceAddress{
			Address:  info.Address,
			Country:  info.Country,
			Locality: info.Locality,
			Name:     info.Name,
			Postcode: info.Postcode,
			Region:   info.Region,
		}
	}
	addr.Latitude = lat
	addr.Longitude = lng

	if field, ok := missingAddressField(addr); ok {
		s.logger.Error("Place is missing required field. Skipping place",
			slog.String("place_id", place.ID),
			slog.String("field", field),
		)

		return nil
	}

	summary := &entity.PlaceSummary{
		ID:      place.ID,
		Source:  place.Ubernear.Source,
		Coords:  coords,
		Address: addr,
	}
	if place.Facebook != nil {
		for _, page := range place.Facebook.Pages {
			summary.PageIDs = append(summary.PageIDs, page.ID)
		}
	}

	return summary
}
