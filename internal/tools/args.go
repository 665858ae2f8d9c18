package tools

import "encoding/json"

// decodeArgs unmarshals tool arguments into dst. A missing or null
// arguments object is treated as empty.
func decodeArgs(args json.RawMessage, dst any) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, dst)
}

// locationArgs carries the place-name argument. Both "location" and
// "locationName" are accepted; clients use either.
type locationArgs struct {
	Location     string `json:"location"`
	LocationName string `json:"locationName"`
}

func (a locationArgs) query() string {
	if a.Location != "" {
		return a.Location
	}
	return a.LocationName
}

// fval returns *p, or def when the argument was absent.
func fval(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// sval returns s, or def when the argument was absent or empty.
func sval(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// clampFlyHeight keeps camera heights in a usable band. Out-of-band
// values come from models confusing meters with other units.
func clampFlyHeight(h float64) float64 {
	if h > 100000 {
		return 10000
	}
	if h < 100 {
		return 1000
	}
	return h
}

// clampFlyDuration keeps flight animations between 0.5 and 10 seconds.
func clampFlyDuration(d float64) float64 {
	if d < 0.5 {
		return 2.0
	}
	if d > 10 {
		return 3.0
	}
	return d
}

// clampRadius keeps sphere radii in 1..1000 meters.
func clampRadius(r float64) float64 {
	if r > 1000 {
		return 100
	}
	if r < 1 {
		return 50
	}
	return r
}

// clampHeight keeps entity heights above ground in 0..1000 meters.
func clampHeight(h float64) float64 {
	if h < 0 || h > 1000 {
		return 0
	}
	return h
}

// clampDimension enforces a 10 meter minimum box dimension.
func clampDimension(d float64) float64 {
	if d < 10 {
		return 10
	}
	return d
}
