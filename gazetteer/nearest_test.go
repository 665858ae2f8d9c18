package gazetteer

import (
	"math"
	"testing"
)

func TestNearest(t *testing.T) {
	g := testGazetteer(t)

	// Paris city center is closer to the paris entry than the eiffel tower.
	loc, ok := g.Nearest(48.8566, 2.3522)
	if !ok || loc.Name != "paris" {
		t.Errorf("Nearest(paris center) = (%q, %v), want paris", loc.Name, ok)
	}

	// A point on the Golden Gate picks the bridge over the rest of the table.
	loc, ok = g.Nearest(37.8199, -122.4783)
	if !ok || loc.Name != "golden gate bridge" {
		t.Errorf("Nearest(golden gate) = (%q, %v), want golden gate bridge", loc.Name, ok)
	}
}

func TestNearestCutoff(t *testing.T) {
	g := testGazetteer(t)

	// Middle of the southern Pacific: nothing within the cutoff.
	if loc, ok := g.Nearest(-48.0, -123.0); ok {
		t.Errorf("Nearest(remote ocean) = %q, want no result", loc.Name)
	}
}

func TestNearestRejectsNonFinite(t *testing.T) {
	g := testGazetteer(t)

	for _, bad := range [][2]float64{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		if _, ok := g.Nearest(bad[0], bad[1]); ok {
			t.Errorf("Nearest(%v, %v) should reject non-finite input", bad[0], bad[1])
		}
	}
}
