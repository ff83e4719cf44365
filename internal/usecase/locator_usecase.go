// Package usecase declares the application-layer interfaces.
package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// Locator resolves pending events against the place store.
type Locator interface {
	// Locate runs the place-matching pass and then the venue-fallback
	// pass over pending events. It reports whether any event was found,
	// so an idle caller can back off. Store failures are logged and
	// contained; Locate never returns an error.
	Locate(ctx context.Context, processAll bool) bool

	// MatchWithPlace resolves one event against the place store using
	// the three candidate strategies. Returns nil when no candidate
	// reaches the acceptance floor.
	MatchWithPlace(ctx context.Context, event *entity.Event, placeIDs []string) *entity.Match

	// MatchWithVenue synthesizes a place from the event's own venue
	// data. Returns nil when the venue data is too imprecise.
	MatchWithVenue(event *entity.Event) *entity.Match
}
