package gazetteer

import (
	"math"

	"github.com/golang/geo/s2"
)

// maxNearestAngle is ~500km in radians on the unit sphere. Nearest returns
// no result when the closest entry is farther than this; the table holds
// notable places, not a dense city grid, so a generous cutoff keeps answers
// useful without claiming the middle of an ocean is "near" anything.
const maxNearestAngle = 0.0785

// Nearest returns the gazetteer entry closest to the given coordinates, or
// false when the table is empty, the coordinates are not finite, or nothing
// lies within the distance cutoff. Ties on angular distance keep the earlier
// gazetteer entry for determinism.
func (g *Gazetteer) Nearest(lat, lng float64) (Location, bool) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return Location{}, false
	}

	query := s2.LatLngFromDegrees(lat, lng)

	var best Location
	bestAngle := math.Inf(1)
	for _, loc := range g.locations {
		ll := s2.LatLngFromDegrees(loc.Latitude, loc.Longitude)
		if a := float64(query.Distance(ll)); a < bestAngle {
			best = loc
			bestAngle = a
		}
	}

	if bestAngle > maxNearestAngle {
		return Location{}, false
	}
	return best, true
}
