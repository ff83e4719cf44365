package entity

import "github.com/paulmach/orb"

// Match is the terminal output of place resolution for one event,
// written once per event. The Place block is denormalized onto the event
// so serving a matched event needs no further place lookups.
type Match struct {
	Ubernear MatchInfo    `bson:"ubernear"`
	Place    PlaceAddress `bson:"place"`
}

// MatchInfo records how the match was made. Score, SearchType, Matched
// and Distance are absent on matches synthesized from the venue itself.
type MatchInfo struct {
	Score      int       `bson:"score,omitempty"`
	PlaceID    string    `bson:"place_id"`
	Source     string    `bson:"source"`
	Location   orb.Point `bson:"location"`
	SearchType string    `bson:"search_type,omitempty"`
	Matched    []string  `bson:"matched,omitempty"`
	Distance   *float64  `bson:"distance,omitempty"`
}

// MatchVector is the boolean record of which dimensions matched between
// a venue and one candidate place.
type MatchVector struct {
	Page     bool
	Coord    bool
	Address  bool
	Locality bool
	Region   bool
	Postcode bool
	Country  bool
	Name     bool
}

// Dimensions returns the names of the true dimensions, in the canonical
// field order.
func (v MatchVector) Dimensions() []string {
	var dims []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"page", v.Page},
		{"coord", v.Coord},
		{"address", v.Address},
		{"locality", v.Locality},
		{"region", v.Region},
		{"postcode", v.Postcode},
		{"country", v.Country},
		{"name", v.Name},
	} {
		if f.set {
			dims = append(dims, f.name)
		}
	}

	return dims
}
