package gazetteer

import "sort"

// DefaultMaxDistance is the edit-distance threshold used by callers that do
// not have an opinion of their own. Higher values make fuzzy resolution both
// slower and more surprising.
const DefaultMaxDistance = 3

// maxQueryLen caps query length in runes before fuzzy scoring. Levenshtein
// cost grows with input length, and no real place name is this long.
const maxQueryLen = 256

// Match pairs a gazetteer entry with its edit distance from the query.
// Distance 0 means an exact (normalized) match.
type Match struct {
	Location Location
	Distance int
}

// Resolve maps a free-form, possibly misspelled place name to the best
// gazetteer entry. Resolution is two-phase: an exact normalized lookup, then
// a fuzzy scan scoring every entry with bounded edit distance. The first
// entry in gazetteer order wins distance ties, keeping results deterministic.
//
// The boolean is false when no entry scores within maxDistance; that is a
// normal outcome, not an error. A negative maxDistance is clamped to 0,
// which makes Resolve behave like ResolveExact.
func (g *Gazetteer) Resolve(query string, maxDistance int) (Match, bool) {
	key := clipQuery(Normalize(query))
	if key == "" {
		return Match{}, false
	}
	if maxDistance < 0 {
		maxDistance = 0
	}

	if idx, ok := g.byName[key]; ok {
		return Match{Location: g.locations[idx], Distance: 0}, true
	}
	if maxDistance == 0 {
		return Match{}, false
	}

	best := Match{Distance: maxDistance + 1}
	found := false
	for _, loc := range g.locations {
		d := Distance(key, loc.Name, maxDistance)
		if d < best.Distance {
			best = Match{Location: loc, Distance: d}
			found = true
		}
	}
	if !found {
		return Match{}, false
	}
	return best, true
}

// ResolveAll collects every entry within maxDistance of the query, sorted
// ascending by distance with ties broken by gazetteer order, truncated to
// maxResults. A non-positive maxResults yields an empty result.
func (g *Gazetteer) ResolveAll(query string, maxResults, maxDistance int) []Match {
	if maxResults <= 0 {
		return nil
	}
	key := clipQuery(Normalize(query))
	if key == "" {
		return nil
	}
	if maxDistance < 0 {
		maxDistance = 0
	}

	var matches []Match
	for _, loc := range g.locations {
		d := Distance(key, loc.Name, maxDistance)
		if d <= maxDistance {
			matches = append(matches, Match{Location: loc, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// clipQuery truncates excessively long queries on a rune boundary.
func clipQuery(s string) string {
	if runes := []rune(s); len(runes) > maxQueryLen {
		return string(runes[:maxQueryLen])
	}
	return s
}
