// Package impl implements the application-layer services.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"nearby/internal/address"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/usecase"

	"github.com/paulmach/orb"
)

const (
	// Mean Earth radius, in meters.
	earthRadiusMeters = 6371000
	// Candidate places farther than this are never considered.
	maxMeters = 100
	// Angle, in radians, of an arc with length maxMeters on a sphere
	// with radius earthRadiusMeters.
	maxAngle = 0.000015696

	// Venue-synthesized matches carry the event source as provenance.
	sourceFacebook = "facebook"

	// Minimum decimal digits for a venue coordinate to be trusted as a
	// match anchor.
	minCoordPrecision = 5
)

type locatorService struct {
	events repository.EventRepository
	places repository.PlaceRepository
	geo    repository.GeoSearcher
	logger *slog.Logger
	now    func() time.Time
}

// NewLocatorService creates a new locator service instance.
func NewLocatorService(
	events repository.EventRepository,
	places repository.PlaceRepository,
	geo repository.GeoSearcher,
	logger *slog.Logger,
) usecase.Locator {
	return &locatorService{
		events: events,
		places: places,
		geo:    geo,
		logger: logger,
		now:    time.Now,
	}
}

// Locate runs Pass A (place matching) and Pass B (venue fallback) over
// pending events and reports whether any event was found.
func (s *locatorService) Locate(ctx context.Context, processAll bool) bool {
	now := s.now().UTC()
	foundWork := false

	events, err := s.events.FindMatchable(ctx, processAll)
	if err != nil {
		s.logger.Error("Event search failed", slog.Any("error", err))
	}
	if len(events) != 0 {
		s.logger.Info(countMessage("Matching", len(events), "event"))
	}
	for _, event := range events {
		foundWork = true
		match := s.MatchWithPlace(ctx, event, event.Ubernear.PlaceIDs)
		if match != nil {
			if err := s.events.SaveMatch(ctx, event.ID, match, now); err != nil {
				s.logger.Error("Failed to save match",
					slog.String("event_id", event.ID),
					slog.Any("error", err),
				)
			}

			continue
		}
		if err := s.events.MarkMatchFailed(ctx, event.ID, repository.MatchFailedNoPlace); err != nil {
			s.logger.Error("Failed to mark event",
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)
		}
	}

	events, err = s.events.FindFallbackCandidates(ctx, processAll)
	if err != nil {
		s.logger.Error("Event search failed", slog.Any("error", err))
	}
	if len(events) != 0 {
		s.logger.Info(countMessage("Resolving", len(events), "venue"))
	}
	for _, event := range events {
		foundWork = true
		match := s.MatchWithVenue(event)
		if match == nil {
			continue
		}
		if err := s.events.SaveMatch(ctx, event.ID, match, now); err != nil {
			s.logger.Error("Failed to save match",
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)
		}
	}

	return foundWork
}

// MatchWithVenue validates the event's own venue data and synthesizes a
// place from it. Rejections are debug-logged business outcomes, not
// errors.
func (s *locatorService) MatchWithVenue(event *entity.Event) *entity.Match {
	facebook := event.Facebook
	name := facebook.Location
	if name == "" && facebook.Owner != nil {
		name = facebook.Owner.Name
	}

	venue := facebook.Venue
	if venue == nil {
		s.logger.Debug("Event has no venue. Skipping.",
			slog.String("event_id", event.ID))

		return nil
	}

	street := address.NormalizeStreet(venue.Street)
	locality := address.NormalizeCity(venue.City)
	region := address.NormalizeState(venue.State)
	country := address.NormalizeCountry(venue.Country)

	if street == "" || locality == "" {
		s.logger.Debug("Event has invalid address or locality. Skipping.",
			slog.String("event_id", event.ID))

		return nil
	}

	street = address.TitleCase(street)
	locality = address.TitleCase(locality)

	// Coordinates of integer type are too ambiguous to be considered
	// good.
	lat := venue.Latitude
	lng := venue.Longitude
	if lat == nil || lng == nil || lat.Integral || lng.Integral {
		s.logger.Debug("Event has invalid latitude or longitude. Skipping.",
			slog.String("event_id", event.ID))

		return nil
	}

	// Coordinates with little precision are too ambiguous to be
	// considered good.
	if decimalDigits(lat.Value) < minCoordPrecision || decimalDigits(lng.Value) < minCoordPrecision {
		s.logger.Debug("Event has latitude or longitude with little precision. Skipping.",
			slog.String("event_id", event.ID))

		return nil
	}

	match := &entity.Match{
		Ubernear: entity.MatchInfo{
			PlaceID:  event.ID,
			Source:   sourceFacebook,
			Location: orb.Point{lng.Value, lat.Value},
		},
		Place: entity.PlaceAddress{
			Address:   street,
			Locality:  locality,
			Name:      name,
			Latitude:  lat.Value,
			Longitude: lng.Value,
		},
	}
	if region != "" {
		match.Place.Region = strings.ToUpper(region)
	}
	if country != "" {
		match.Place.Country = strings.ToUpper(country)
	}

	return match
}

// eventVenue builds the normalized venue view of an event. Raw venue
// fields are copied verbatim; a normalized address record, when present,
// always overrides them.
func eventVenue(event *entity.Event) *entity.Venue {
	venue := &entity.Venue{}

	if raw := event.Facebook.Venue; raw != nil {
		if raw.Latitude != nil && raw.Longitude != nil {
			coords := orb.Point{raw.Longitude.Value, raw.Latitude.Value}
			venue.Coords = &coords
		}
		venue.PageID = raw.ID
		venue.Address = raw.Street
		venue.Locality = raw.City
		venue.Region = raw.State
		venue.Country = raw.Country
		// Have never come across a raw venue with a zip code.
	}

	// Always prefer normalized addresses. Override any venue values.
	if norm := event.Normalized; norm != nil {
		venue.Address = norm.Address
		venue.Locality = norm.City
		venue.Region = norm.State
		venue.Country = norm.Country
		venue.Postcode = norm.Zip5
	}

	if event.Facebook.Location != "" {
		venue.Names = append(venue.Names, event.Facebook.Location)
	}
	if event.Facebook.Owner != nil && event.Facebook.Owner.Name != "" {
		venue.Names = append(venue.Names, event.Facebook.Owner.Name)
	}

	return venue
}

// decimalDigits counts the digits after the decimal point in the
// shortest decimal representation of v.
func decimalDigits(v float64) int {
	repr := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(repr, '.')
	if dot < 0 {
		return 0
	}

	return len(repr) - dot - 1
}

func countMessage(verb string, count int, noun string) string {
	plural := ""
	if count != 1 {
		plural = "s"
	}

	return fmt.Sprintf("%s %d %s%s", verb, count, noun, plural)
}
