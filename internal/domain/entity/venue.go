package entity

import "github.com/paulmach/orb"

// Venue is the ephemeral, per-event view of where an event claims to
// occur. It is rebuilt from the raw event on every pass and never
// persisted. Names are ordered: name matching tries them in order and
// stops at the first hit.
type Venue struct {
	Coords   *orb.Point
	PageID   string
	Address  string
	Locality string
	Region   string
	Country  string
	Postcode string
	Names    []string
}
