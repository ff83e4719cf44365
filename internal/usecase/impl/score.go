package impl

import (
	"context"
	"strings"

	"nearby/internal/address"
	"nearby/internal/collection"
	"nearby/internal/domain/entity"
)

const (
	// Each satisfied scoring rule contributes this many points. Rules
	// overlap, so a single candidate can stack several contributions.
	rulePoints = 100
	// A score of at least this much denotes a successful match.
	acceptanceFloor = 100
)

// scoreRules are the weighted rule combinations that turn a match vector
// into a score. Additive: every rule that holds adds rulePoints.
var scoreRules = []func(entity.MatchVector) bool{
	func(v entity.MatchVector) bool { return v.Coord && v.Name },
	func(v entity.MatchVector) bool { return v.Coord && v.Address },
	func(v entity.MatchVector) bool { return v.Address && v.Name },
	func(v entity.MatchVector) bool { return v.Address && v.Locality },
	func(v entity.MatchVector) bool { return v.Postcode && v.Address },
	func(v entity.MatchVector) bool { return v.Page },
}

func scoreVector(vector entity.MatchVector) int {
	score := 0
	for _, rule := range scoreRules {
		if rule(vector) {
			score += rulePoints
		}
	}

	return score
}

// tieBreakRules order candidates with equal scores. Rules are evaluated
// top to bottom; the first rule holding for exactly one of the two
// candidates decides, and later rules are never consulted.
var tieBreakRules = []func(entity.MatchVector) bool{
	// Page match weighs heaviest.
	func(v entity.MatchVector) bool { return v.Page },
	// Address and postcode match weighs next heaviest.
	func(v entity.MatchVector) bool { return v.Address && v.Postcode },
	// Address and locality match weighs next heaviest.
	func(v entity.MatchVector) bool { return v.Address && v.Locality },
	// Coord and address match weighs next heaviest.
	func(v entity.MatchVector) bool { return v.Coord && v.Address },
	// Coord and name match weighs next heaviest.
	func(v entity.MatchVector) bool { return v.Coord && v.Name },
	// Address and name match, tie broken first with region, then with
	// country.
	func(v entity.MatchVector) bool { return v.Address && v.Name && v.Region },
	func(v entity.MatchVector) bool { return v.Address && v.Name && v.Country },
}

// scoredMatch is one candidate's fully built match plus the vector and
// score it was derived from.
type scoredMatch struct {
	match  *entity.Match
	vector entity.MatchVector
	score  int
}

// MatchWithPlace runs the three candidate strategies in fixed order,
// scores every unique candidate and selects the best one. The coordinate
// strategy runs first so its distance information is not lost when a
// later strategy finds the same place.
func (s *locatorService) MatchWithPlace(ctx context.Context, event *entity.Event, placeIDs []string) *entity.Match {
	venue := eventVenue(event)

	candidates := s.nearbyCandidates(ctx, venue, event.ID)
	candidates = append(candidates, s.placeIDCandidates(ctx, placeIDs)...)
	candidates = append(candidates, s.normalizedCandidates(ctx, event)...)

	matches := collection.NewOrderedMap[string, *scoredMatch]()
	for _, cand := range candidates {
		// First occurrence wins: a place rediscovered by a later
		// strategy keeps its original origin tag and distance.
		if matches.Has(cand.summary.ID) {
			continue
		}
		matches.Set(cand.summary.ID, scoreCandidate(venue, cand))
	}

	best := bestMatch(matches.Values())
	if best == nil {
		return nil
	}

	// Reduce the winner's vector to the list of matched dimension
	// names.
	best.match.Ubernear.Matched = best.vector.Dimensions()

	return best.match
}

// scoreCandidate computes the match vector between venue and candidate
// and builds the would-be match record.
func scoreCandidate(venue *entity.Venue, cand candidate) *scoredMatch {
	summary := cand.summary
	var vector entity.MatchVector
	venueName := ""

	// Coord is never recomputed from coordinates; it means the place
	// came from the proximity search.
	if cand.distance != nil {
		vector.Coord = true
	}

	if venue.Address != "" {
		vector.Address = address.StreetsEqual(venue.Address, summary.Address.Address)
	}
	if venue.Locality != "" {
		vector.Locality = address.CitiesEqual(venue.Locality, summary.Address.Locality)
	}

	placeName := address.NormalizeString(summary.Address.Name)
	for _, name := range venue.Names {
		normalized := address.NormalizeString(name)
		if strings.Contains(normalized, placeName) || strings.Contains(placeName, normalized) {
			venueName = name
			vector.Name = true

			break
		}
	}

	if venue.Region != "" && summary.Address.Region != "" {
		vector.Region = address.StatesEqual(venue.Region, summary.Address.Region)
	}
	if venue.Country != "" && summary.Address.Country != "" {
		vector.Country = address.CountriesEqual(venue.Country, summary.Address.Country)
	}
	if venue.Postcode != "" && summary.Address.Postcode != "" {
		vector.Postcode = address.ZipcodesEqual(venue.Postcode, summary.Address.Postcode)
	}

	if len(summary.PageIDs) != 0 && venue.PageID != "" {
		for _, pageID := range summary.PageIDs {
			if pageID == venue.PageID {
				vector.Page = true

				break
			}
		}
	}

	match := &entity.Match{
		Ubernear: entity.MatchInfo{
			Score:      scoreVector(vector),
			PlaceID:    summary.ID,
			Source:     summary.Source,
			Location:   summary.Coords,
			SearchType: cand.searchType,
			Distance:   cand.distance,
		},
		// Address information is stored in the match so no place
		// lookups are necessary when serving the event.
		Place: summary.Address,
	}

	// Some places match on the address but carry a different name,
	// e.g. two businesses at the same address with different unit
	// numbers. The venue name is safer.
	if venueName != "" {
		match.Place.Name = venueName
	} else if len(venue.Names) != 0 {
		match.Place.Name = venue.Names[0]
	}

	return &scoredMatch{
		match:  match,
		vector: vector,
		score:  match.Ubernear.Score,
	}
}

// bestMatch walks the scored candidates in order and keeps the highest
// one. The first candidate is accepted only at or above the acceptance
// floor; equal scores fall through the tie-break cascade, and when
// nothing discriminates the earlier-seen candidate keeps its position.
func bestMatch(candidates []*scoredMatch) *scoredMatch {
	var highest *scoredMatch
	for _, cand := range candidates {
		if highest == nil {
			if cand.score >= acceptanceFloor {
				highest = cand
			}

			continue
		}

		switch {
		case cand.score > highest.score:
			highest = cand
		case cand.score < highest.score:
			continue
		default:
			for _, rule := range tieBreakRules {
				challenger, incumbent := rule(cand.vector), rule(highest.vector)
				if challenger && !incumbent {
					highest = cand

					break
				}
				if !challenger && incumbent {
					break
				}
			}
		}
	}

	return highest
}
