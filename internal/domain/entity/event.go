// Package entity contains the core business objects of the project.
package entity

import "time"

// Event is a scraped social-network event awaiting place resolution.
// The matcher reads the raw facebook fields and the externally computed
// normalized address, and writes the Match plus the completion markers
// under Ubernear. Events are created by the ingestion pipeline and are
// never deleted here.
type Event struct {
	ID         string             `bson:"_id"`
	Facebook   FacebookEvent      `bson:"facebook"`
	Normalized *NormalizedAddress `bson:"normalized,omitempty"`
	Ubernear   EventStatus        `bson:"ubernear"`
	Match      *Match             `bson:"match,omitempty"`
}

// FacebookEvent holds the source-specific fields the matcher consumes.
type FacebookEvent struct {
	Venue    *RawVenue   `bson:"venue,omitempty"`
	Location string      `bson:"location,omitempty"` // display location, e.g. "Hollywood Bowl"
	Owner    *EventOwner `bson:"owner,omitempty"`
}

// EventOwner is the page or user that published the event.
type EventOwner struct {
	ID   string `bson:"id,omitempty"`
	Name string `bson:"name,omitempty"`
}

// RawVenue is the free-text venue block attached to an event by the
// source. Coordinates keep their BSON numeric type so the venue fallback
// can tell integer-typed values apart from real doubles.
type RawVenue struct {
	ID        string      `bson:"id,omitempty"` // external page id of the venue
	Street    string      `bson:"street,omitempty"`
	City      string      `bson:"city,omitempty"`
	State     string      `bson:"state,omitempty"`
	Country   string      `bson:"country,omitempty"`
	Latitude  *Coordinate `bson:"latitude,omitempty"`
	Longitude *Coordinate `bson:"longitude,omitempty"`
}

// EventStatus tracks the processing state markers set by the batch
// orchestrator. MatchCompleted and MatchFailed are mutually exclusive
// terminal outcomes of one pass.
type EventStatus struct {
	Fetched         *time.Time `bson:"fetched,omitempty"`
	LookupCompleted *time.Time `bson:"lookup_completed,omitempty"`
	MatchCompleted  *time.Time `bson:"match_completed,omitempty"`
	MatchFailed     string     `bson:"match_failed,omitempty"`
	PlaceIDs        []string   `bson:"place_ids,omitempty"`
}

// NormalizedAddress is the record written by the external address
// normalization service. Name is only present on place records.
type NormalizedAddress struct {
	Address string `bson:"address"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Country string `bson:"country"`
	Zip5    string `bson:"zip5"`
	Name    string `bson:"name,omitempty"`
}
