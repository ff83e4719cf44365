package entity

import "github.com/paulmach/orb"

// Place is a canonical location record in the places store. The matcher
// only reads places, it never writes them. Location, like every
// coordinate pair in this module, is ordered [longitude, latitude].
type Place struct {
	ID         string             `bson:"_id"`
	Ubernear   PlaceStatus        `bson:"ubernear"`
	Normalized *NormalizedAddress `bson:"normalized,omitempty"`
	Info       *PlaceInfo         `bson:"info,omitempty"`
	Facebook   *PlacePages        `bson:"facebook,omitempty"`
}

// PlaceStatus carries the provenance tag and the indexed coordinate pair.
// A place without an indexed location cannot be a candidate.
type PlaceStatus struct {
	Source   string     `bson:"source"`
	Location *orb.Point `bson:"location,omitempty"`
}

// PlaceInfo is the unstructured address block imported with the place,
// used when no normalized record exists.
type PlaceInfo struct {
	Address  string `bson:"address,omitempty"`
	Country  string `bson:"country,omitempty"`
	Locality string `bson:"locality,omitempty"`
	Name     string `bson:"name,omitempty"`
	Postcode string `bson:"postcode,omitempty"`
	Region   string `bson:"region,omitempty"`
}

// PlacePages lists the external pages linked to a place.
type PlacePages struct {
	Pages []PageRef `bson:"pages,omitempty"`
}

// PageRef identifies one linked external page.
type PageRef struct {
	ID string `bson:"id"`
}

// PlaceAddress is the address block attached to a match. Address,
// Locality, Name, Latitude and Longitude are required; the rest may be
// empty.
type PlaceAddress struct {
	Address   string  `bson:"address"`
	Country   string  `bson:"country,omitempty"`
	Latitude  float64 `bson:"latitude"`
	Locality  string  `bson:"locality"`
	Longitude float64 `bson:"longitude"`
	Name      string  `bson:"name"`
	Postcode  string  `bson:"postcode,omitempty"`
	Region    string  `bson:"region,omitempty"`
}

// PlaceSummary is the candidate view of a place: the fields scoring needs,
// extracted and validated from the raw store document.
type PlaceSummary struct {
	ID      string
	Source  string
	Coords  orb.Point
	PageIDs []string
	Address PlaceAddress
}
