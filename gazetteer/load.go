package gazetteer

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locations.yaml
var builtinTable []byte

// gazetteerFile is the on-disk YAML shape. Heading is a pointer so "absent"
// and "0 degrees" stay distinguishable.
type gazetteerFile struct {
	Locations []locationRecord `yaml:"locations"`
}

type locationRecord struct {
	Name       string   `yaml:"name"`
	Longitude  float64  `yaml:"longitude"`
	Latitude   float64  `yaml:"latitude"`
	Heading    *float64 `yaml:"heading"`
	Population int64    `yaml:"population"`
}

// LoadYAML reads a gazetteer table from YAML and validates it via New.
// The expected document shape:
//
//	locations:
//	  - name: eiffel tower
//	    longitude: 2.2945
//	    latitude: 48.8584
//	  - name: tokyo
//	    longitude: 139.6917
//	    latitude: 35.6895
//	    population: 37400000
//
// Heading is optional; omitting it means the entry has no canonical
// orientation.
func LoadYAML(r io.Reader) (*Gazetteer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: read table: %w", err)
	}

	var f gazetteerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gazetteer: parse table: %w", err)
	}
	if len(f.Locations) == 0 {
		return nil, fmt.Errorf("gazetteer: table has no locations")
	}

	locs := make([]Location, len(f.Locations))
	for i, rec := range f.Locations {
		loc := Location{
			Name:       rec.Name,
			Longitude:  rec.Longitude,
			Latitude:   rec.Latitude,
			Population: rec.Population,
		}
		if rec.Heading != nil {
			loc.Heading = *rec.Heading
			loc.HasHeading = true
		}
		locs[i] = loc
	}
	return New(locs)
}

var (
	builtinGazetteer *Gazetteer
	builtinOnce      sync.Once
	builtinErr       error
)

// Default returns the embedded built-in table of notable cities, landmarks
// and airports, parsed on first call and shared thereafter.
func Default() (*Gazetteer, error) {
	builtinOnce.Do(func() {
		builtinGazetteer, builtinErr = LoadYAML(bytes.NewReader(builtinTable))
	})
	return builtinGazetteer, builtinErr
}
