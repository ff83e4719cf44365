// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
)

// MatchFailedNoPlace is the sentinel recorded when place matching found
// no acceptable candidate. The venue-fallback pass selects on exactly
// this string, so it must not be generalized.
const MatchFailedNoPlace = "No place match"

// EventRepository defines the event-store operations the batch
// orchestrator needs. All writes are idempotent partial upserts keyed by
// event id; other processes may write the same store concurrently.
type EventRepository interface {
	// FindMatchable retrieves events ready for place matching: lookup
	// completed, match neither completed nor failed. With processAll,
	// every looked-up event is returned regardless of prior outcome.
	// Results are ordered by fetch timestamp, oldest first.
	FindMatchable(ctx context.Context, processAll bool) ([]*entity.Event, error)

	// FindFallbackCandidates retrieves events for the venue-fallback
	// pass: match not completed, match_failed equal to
	// MatchFailedNoPlace, and carrying venue coordinates, street, city
	// and at least one display name. With processAll, every looked-up
	// event is returned. Ordered by fetch timestamp, oldest first.
	FindFallbackCandidates(ctx context.Context, processAll bool) ([]*entity.Event, error)

	// SaveMatch persists the match onto the event and marks match
	// completion. Absent match fields are dropped, not overwritten.
	SaveMatch(ctx context.Context, eventID string, match *entity.Match, completedAt time.Time) error

	// MarkMatchFailed records a terminal no-match outcome for this pass.
	MarkMatchFailed(ctx context.Context, eventID string, reason string) error
}
