package gazetteer

import "sort"

// TopByPopulation returns up to maxResults locations with
// Population > minPopulation, sorted descending by population. Ties keep
// gazetteer order (stable sort) so repeated calls are byte-identical.
// Entries with unknown population (0) never qualify; a negative
// minPopulation is clamped to 0. A non-positive maxResults yields an empty
// result.
func (g *Gazetteer) TopByPopulation(maxResults int, minPopulation int64) []Location {
	if maxResults <= 0 {
		return nil
	}
	if minPopulation < 0 {
		minPopulation = 0
	}

	var out []Location
	for _, loc := range g.locations {
		if loc.Population > minPopulation {
			out = append(out, loc)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Population > out[j].Population
	})

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// CountWithKnownPopulation reports how many entries carry population data.
func (g *Gazetteer) CountWithKnownPopulation() int {
	n := 0
	for _, loc := range g.locations {
		if loc.KnownPopulation() {
			n++
		}
	}
	return n
}
