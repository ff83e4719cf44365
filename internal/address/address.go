// Package address normalizes free-text address parts and compares them.
//
// Normalization lower-cases, collapses whitespace, strips punctuation and
// substitutes the USPS abbreviation tables. Equality predicates normalize
// both sides; two values that both normalize to empty are never equal,
// since absence of data says nothing about a match.
package address

import (
	"strconv"
	"strings"
	"unicode"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NormalizeString lower-cases, collapses runs of whitespace to single
// spaces and removes punctuation.
func NormalizeString(item string) string {
	item = strings.Join(strings.Fields(item), " ")
	item = strings.ToLower(item)

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}

		return r
	}, item)
}

// substituteTokens replaces whole tokens per the table, in table order.
// Order matters: a token replaced by an early entry may match a later one.
func substituteTokens(parts []string, table []abbreviation) {
	for _, entry := range table {
		for _, option := range entry.longer {
			for i, part := range parts {
				if part == option {
					parts[i] = entry.abbr
				}
			}
		}
	}
}

// NormalizeStreet normalizes a street line, abbreviating cardinal
// directions and street suffixes.
func NormalizeStreet(street string) string {
	street = NormalizeString(street)

	parts := strings.Fields(street)
	substituteTokens(parts, cardinalAbbrevs)
	substituteTokens(parts, streetAbbrevs)

	return strings.Join(parts, " ")
}

// NormalizeCity normalizes a city name.
func NormalizeCity(city string) string {
	return NormalizeString(city)
}

// NormalizeState normalizes a state, mapping full US state names to their
// two-letter codes. Unmatched values pass through unchanged.
func NormalizeState(state string) string {
	state = NormalizeString(state)

	for _, entry := range stateAbbrevs {
		for _, option := range entry.longer {
			if option == state {
				return entry.abbr
			}
		}
	}

	return state
}

// NormalizeCountry normalizes a country, folding US variants to "usa".
func NormalizeCountry(country string) string {
	country = NormalizeString(country)

	for _, entry := range countryAbbrevs {
		for _, option := range entry.longer {
			if option == country {
				return entry.abbr
			}
		}
	}

	return country
}

// NormalizeZipcode returns the five-digit prefix before any dash, or the
// empty string when fewer than five numeric characters are present.
func NormalizeZipcode(zipcode string) string {
	if zipcode == "" {
		return ""
	}

	zip5, _, _ := strings.Cut(zipcode, "-")
	if len(zip5) < 5 {
		return ""
	}
	zip5 = zip5[:5]
	if _, err := strconv.Atoi(zip5); err != nil {
		return ""
	}

	return zip5
}

// StreetsEqual reports whether two street lines refer to the same street.
// One normalized value containing the other counts as equal, which
// tolerates unit-number suffixes.
func StreetsEqual(street1, street2 string) bool {
	street1 = NormalizeStreet(street1)
	street2 = NormalizeStreet(street2)

	if street1 == "" && street2 == "" {
		return false
	}

	return strings.Contains(street2, street1) || strings.Contains(street1, street2)
}

// CitiesEqual reports whether two city names normalize identically.
func CitiesEqual(city1, city2 string) bool {
	city1 = NormalizeCity(city1)
	city2 = NormalizeCity(city2)

	if city1 == "" && city2 == "" {
		return false
	}

	return city1 == city2
}

// StatesEqual reports whether two states normalize identically.
func StatesEqual(state1, state2 string) bool {
	state1 = NormalizeState(state1)
	state2 = NormalizeState(state2)

	if state1 == "" && state2 == "" {
		return false
	}

	return state1 == state2
}

// CountriesEqual reports whether two countries normalize identically.
func CountriesEqual(country1, country2 string) bool {
	country1 = NormalizeCountry(country1)
	country2 = NormalizeCountry(country2)

	if country1 == "" && country2 == "" {
		return false
	}

	return country1 == country2
}

// ZipcodesEqual reports whether two postal codes normalize identically.
func ZipcodesEqual(zip1, zip2 string) bool {
	zip1 = NormalizeZipcode(zip1)
	zip2 = NormalizeZipcode(zip2)

	if zip1 == "" && zip2 == "" {
		return false
	}

	return zip1 == zip2
}

// TitleCase upper-cases the first letter of every alphabetic run and
// lower-cases the rest, so "6506 hollywood blvd" becomes
// "6506 Hollywood Blvd".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true

			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}
