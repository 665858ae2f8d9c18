package gazetteer

import "testing"

func TestTopByPopulation(t *testing.T) {
	g := testGazetteer(t)

	top := g.TopByPopulation(1, 0)
	if len(top) != 1 || top[0].Name != "tokyo" {
		t.Fatalf("TopByPopulation(1, 0) = %+v, want [tokyo]", top)
	}

	top = g.TopByPopulation(10, 0)
	want := []string{"tokyo", "new york", "paris", "park city"}
	if len(top) != len(want) {
		t.Fatalf("got %d entries, want %d", len(top), len(want))
	}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %q, want %q", i, top[i].Name, name)
		}
	}

	// Descending order and threshold are both honored.
	for i := 1; i < len(top); i++ {
		if top[i].Population > top[i-1].Population {
			t.Errorf("ranking not descending at %d: %d > %d", i, top[i].Population, top[i-1].Population)
		}
	}
}

func TestTopByPopulationMinFilter(t *testing.T) {
	g := testGazetteer(t)

	top := g.TopByPopulation(10, 10000000)
	for _, loc := range top {
		if loc.Population <= 10000000 {
			t.Errorf("%q population %d should have been filtered", loc.Name, loc.Population)
		}
	}
	if len(top) != 3 {
		t.Errorf("got %d entries over 10M, want 3", len(top))
	}

	// Unknown population (0) is excluded even with the clamped-to-zero
	// threshold a negative minPopulation produces.
	for _, loc := range g.TopByPopulation(100, -5) {
		if !loc.KnownPopulation() {
			t.Errorf("%q has unknown population but was ranked", loc.Name)
		}
	}
}

func TestTopByPopulationStableTies(t *testing.T) {
	g, err := New([]Location{
		{Name: "alpha", Longitude: 1, Latitude: 1, Population: 500},
		{Name: "beta", Longitude: 2, Latitude: 2, Population: 900},
		{Name: "gamma", Longitude: 3, Latitude: 3, Population: 500},
	})
	if err != nil {
		t.Fatal(err)
	}

	top := g.TopByPopulation(3, 0)
	want := []string{"beta", "alpha", "gamma"} // ties keep table order
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %q, want %q", i, top[i].Name, name)
		}
	}
}

func TestTopByPopulationDegenerateLimits(t *testing.T) {
	g := testGazetteer(t)

	if got := g.TopByPopulation(0, 0); len(got) != 0 {
		t.Errorf("maxResults=0 returned %d entries", len(got))
	}
	if got := g.TopByPopulation(-1, 0); len(got) != 0 {
		t.Errorf("maxResults=-1 returned %d entries", len(got))
	}
	if got := g.TopByPopulation(100, 1<<40); len(got) != 0 {
		t.Errorf("impossible threshold returned %d entries", len(got))
	}
}
