// Package gazetteer provides deterministic resolution of place names to
// geographic coordinates over a fixed in-memory table. It supports exact and
// prefix lookup, bounded edit-distance fuzzy matching, population ranking,
// and nearest-entry reverse lookup.
//
// A Gazetteer is immutable after construction and safe for concurrent
// readers without locking.
package gazetteer

import (
	"fmt"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

// Location is a single named place. Names are stored in canonical normalized
// form (lowercase, single-spaced) and are unique within a Gazetteer.
type Location struct {
	Name       string  // canonical normalized name, unique key
	Longitude  float64 // degrees, [-180, 180]
	Latitude   float64 // degrees, [-90, 90]
	Heading    float64 // degrees, [0, 360); meaningful only when HasHeading
	HasHeading bool    // false means no canonical orientation
	Population int64   // 0 means unknown, not zero people
}

// KnownPopulation reports whether the entry carries population data.
func (l Location) KnownPopulation() bool {
	return l.Population > 0
}

// Geohash returns the geohash of the location's coordinates, useful for
// listing and introspection callers.
func (l Location) Geohash() string {
	return geohash.Encode(l.Latitude, l.Longitude)
}

// Gazetteer is an immutable table of locations with a normalized-name index.
// Construct with New or LoadYAML; there is no ambient global instance.
type Gazetteer struct {
	locations []Location // insertion order preserved
	byName    map[string]int
}

// New builds a Gazetteer from the given locations, normalizing names and
// validating the table. Invariant violations (empty or duplicate normalized
// names, out-of-range coordinates or headings, negative populations) fail
// fast here rather than surfacing lazily during resolution.
func New(locations []Location) (*Gazetteer, error) {
	g := &Gazetteer{
		locations: make([]Location, 0, len(locations)),
		byName:    make(map[string]int, len(locations)),
	}

	for i, loc := range locations {
		key := Normalize(loc.Name)
		if key == "" {
			return nil, fmt.Errorf("gazetteer: entry %d has empty name", i)
		}
		if _, dup := g.byName[key]; dup {
			return nil, fmt.Errorf("gazetteer: duplicate name %q", key)
		}
		if loc.Longitude < -180 || loc.Longitude > 180 {
			return nil, fmt.Errorf("gazetteer: %q longitude %v out of range", key, loc.Longitude)
		}
		if loc.Latitude < -90 || loc.Latitude > 90 {
			return nil, fmt.Errorf("gazetteer: %q latitude %v out of range", key, loc.Latitude)
		}
		if loc.HasHeading && (loc.Heading < 0 || loc.Heading >= 360) {
			return nil, fmt.Errorf("gazetteer: %q heading %v out of range", key, loc.Heading)
		}
		if !loc.HasHeading && loc.Heading != 0 {
			return nil, fmt.Errorf("gazetteer: %q has heading %v without HasHeading", key, loc.Heading)
		}
		if loc.Population < 0 {
			return nil, fmt.Errorf("gazetteer: %q population %d is negative", key, loc.Population)
		}

		loc.Name = key
		g.byName[key] = len(g.locations)
		g.locations = append(g.locations, loc)
	}

	return g, nil
}

// All returns the full table in insertion order. The returned slice is the
// backing store; callers must treat it as read-only.
func (g *Gazetteer) All() []Location {
	return g.locations
}

// Count returns the number of entries.
func (g *Gazetteer) Count() int {
	return len(g.locations)
}

// ResolveExact looks up a location by normalized name. The query is
// normalized before lookup, so " Eiffel  TOWER " matches "eiffel tower".
func (g *Gazetteer) ResolveExact(query string) (Location, bool) {
	idx, ok := g.byName[Normalize(query)]
	if !ok {
		return Location{}, false
	}
	return g.locations[idx], true
}

// SearchPrefix returns up to maxResults locations whose names start with the
// normalized prefix, in gazetteer insertion order. A non-positive maxResults
// or an unmatched prefix yields an empty result, never an error.
func (g *Gazetteer) SearchPrefix(prefix string, maxResults int) []Location {
	if maxResults <= 0 {
		return nil
	}
	key := Normalize(prefix)

	var out []Location
	for _, loc := range g.locations {
		if !strings.HasPrefix(loc.Name, key) {
			continue
		}
		out = append(out, loc)
		if len(out) == maxResults {
			break
		}
	}
	return out
}
