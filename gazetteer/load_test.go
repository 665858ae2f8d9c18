package gazetteer

import (
	"strings"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	const table = `
locations:
  - name: Eiffel Tower
    longitude: 2.2945
    latitude: 48.8584
  - name: golden gate bridge
    longitude: -122.4783
    latitude: 37.8199
    heading: 27
  - name: white house
    longitude: -77.0365
    latitude: 38.8977
    heading: 0
  - name: tokyo
    longitude: 139.6917
    latitude: 35.6895
    population: 37400000
`
	g, err := LoadYAML(strings.NewReader(table))
	if err != nil {
		t.Fatal(err)
	}
	if g.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", g.Count())
	}

	tower, ok := g.ResolveExact("eiffel tower")
	if !ok {
		t.Fatal("eiffel tower missing after load")
	}
	if tower.HasHeading {
		t.Error("absent heading should load as unset")
	}

	// heading: 0 is a real north orientation, distinct from absent.
	wh, _ := g.ResolveExact("white house")
	if !wh.HasHeading || wh.Heading != 0 {
		t.Errorf("white house heading = (%v, %v), want (0, set)", wh.Heading, wh.HasHeading)
	}

	bridge, _ := g.ResolveExact("golden gate bridge")
	if !bridge.HasHeading || bridge.Heading != 27 {
		t.Errorf("bridge heading = (%v, %v), want (27, set)", bridge.Heading, bridge.HasHeading)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{"malformed", "locations: ["},
		{"empty", "locations: []"},
		{"duplicate", `
locations:
  - name: paris
    longitude: 2.3522
    latitude: 48.8566
  - name: " Paris "
    longitude: 2.3522
    latitude: 48.8566
`},
		{"bad coordinates", `
locations:
  - name: nowhere
    longitude: 999
    latitude: 0
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadYAML(strings.NewReader(tt.table)); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestDefaultTable(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if g.Count() < 50 {
		t.Fatalf("built-in table suspiciously small: %d entries", g.Count())
	}

	// Spot checks mirroring how the server uses the table.
	tower, ok := g.ResolveExact("Eiffel Tower")
	if !ok || tower.HasHeading {
		t.Errorf("eiffel tower = (%+v, %v), want found with no heading", tower, ok)
	}

	top := g.TopByPopulation(1, 0)
	if len(top) != 1 || top[0].Name != "tokyo" {
		t.Errorf("TopByPopulation(1, 0) = %+v, want tokyo", top)
	}

	pre := g.SearchPrefix("par", 10)
	if len(pre) != 2 {
		t.Errorf("SearchPrefix(par) = %d entries, want paris and park city", len(pre))
	}

	// Default() returns the same shared instance.
	again, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if again != g {
		t.Error("Default() should return the shared instance")
	}
}
