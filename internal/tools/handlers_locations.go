package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/globemcp/globemcp/gazetteer"
	"github.com/globemcp/globemcp/internal/rpc"
)

// resolved is the outcome of resolving a place name, whether from the
// gazetteer or the external fallback.
type resolved struct {
	name       string
	lon, lat   float64
	heading    float64
	hasHeading bool
	external   bool
}

// resolvePlace resolves a query through the gazetteer, falling back to the
// external geocoder when configured. The bool reports whether anything
// matched; a miss is not an error.
func (s *Service) resolvePlace(ctx context.Context, query string) (resolved, bool) {
	if m, ok := s.gz.Resolve(query, s.maxDistance); ok {
		return resolved{
			name:       m.Location.Name,
			lon:        m.Location.Longitude,
			lat:        m.Location.Latitude,
			heading:    m.Location.Heading,
			hasHeading: m.Location.HasHeading,
		}, true
	}

	if s.fallback != nil {
		res, err := s.fallback.Geocode(ctx, query)
		if err == nil {
			return resolved{
				name:     res.Name,
				lon:      res.Longitude,
				lat:      res.Latitude,
				external: true,
			}, true
		}
		zap.L().Debug("geocoder fallback miss", zap.String("query", query), zap.Error(err))
	}

	return resolved{}, false
}

func notFoundText(query string) string {
	return fmt.Sprintf("Location '%s' not found in database", query)
}

// coords supplies coordinates for dual-mode tools that accept either a
// place name or raw longitude/latitude. A non-nil third return is a
// complete tool result (missing arguments or an unresolvable name).
func (s *Service) coords(ctx context.Context, loc locationArgs, lon, lat *float64) (float64, float64, string, any) {
	if q := loc.query(); q != "" {
		r, ok := s.resolvePlace(ctx, q)
		if !ok {
			res, _ := errorResult(notFoundText(q))
			return 0, 0, "", res
		}
		return r.lon, r.lat, r.name, nil
	}
	if lon == nil || lat == nil {
		res, _ := errorResult("Missing 'location' or 'longitude'/'latitude' parameters")
		return 0, 0, "", res
	}
	return *lon, *lat, "", nil
}

func (s *Service) toolResolveLocation(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a locationArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	q := a.query()
	if q == "" {
		return errorResult("Missing 'location' parameter")
	}

	r, ok := s.resolvePlace(ctx, q)
	if !ok {
		return textResult(notFoundText(q))
	}

	text := fmt.Sprintf("Location '%s' resolved to: longitude=%.6f, latitude=%.6f", q, r.lon, r.lat)
	if r.hasHeading {
		text += fmt.Sprintf(", heading=%.1f", r.heading)
	}
	if r.external {
		text += fmt.Sprintf(" (via external geocoder: %s)", r.name)
	}
	return textResult(text)
}

type locationEntry struct {
	Name       string   `json:"name"`
	Longitude  float64  `json:"longitude"`
	Latitude   float64  `json:"latitude"`
	Heading    *float64 `json:"heading,omitempty"`
	Population int64    `json:"population,omitempty"`
	Geohash    string   `json:"geohash"`
}

func locationEntries(locs []gazetteer.Location) []locationEntry {
	out := make([]locationEntry, 0, len(locs))
	for _, loc := range locs {
		e := locationEntry{
			Name:       loc.Name,
			Longitude:  loc.Longitude,
			Latitude:   loc.Latitude,
			Population: loc.Population,
			Geohash:    loc.Geohash(),
		}
		if loc.HasHeading {
			h := loc.Heading
			e.Heading = &h
		}
		out = append(out, e)
	}
	return out
}

func (s *Service) toolListLocations(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Prefix string `json:"prefix"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}

	var locs []gazetteer.Location
	if a.Prefix != "" {
		locs = s.gz.SearchPrefix(a.Prefix, s.gz.Count())
	} else {
		locs = s.gz.All()
	}
	return jsonResult(locationEntries(locs))
}

func (s *Service) toolTopCities(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		MaxResults    *float64 `json:"maxResults"`
		MinPopulation *float64 `json:"minPopulation"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}

	maxResults := int(fval(a.MaxResults, float64(s.maxResults)))
	minPop := int64(fval(a.MinPopulation, 0))

	type cityEntry struct {
		Name       string  `json:"name"`
		Longitude  float64 `json:"longitude"`
		Latitude   float64 `json:"latitude"`
		Population int64   `json:"population"`
	}
	locs := s.gz.TopByPopulation(maxResults, minPop)
	out := make([]cityEntry, 0, len(locs))
	for _, loc := range locs {
		out = append(out, cityEntry{
			Name:       loc.Name,
			Longitude:  loc.Longitude,
			Latitude:   loc.Latitude,
			Population: loc.Population,
		})
	}
	return jsonResult(out)
}

func (s *Service) toolFlyToLocation(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		Height   *float64 `json:"height"`
		Duration *float64 `json:"duration"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	q := a.query()
	if q == "" {
		return errorResult("Missing 'location' parameter")
	}

	r, ok := s.resolvePlace(ctx, q)
	if !ok {
		return errorResult(notFoundText(q))
	}

	cmd := flyToCmd{
		Type:      "flyTo",
		Longitude: r.lon,
		Latitude:  r.lat,
		Height:    clampFlyHeight(fval(a.Height, 10000)),
		Duration:  clampFlyDuration(fval(a.Duration, 2.0)),
	}
	s.state.setCamera(camera{
		Longitude: cmd.Longitude,
		Latitude:  cmd.Latitude,
		Height:    cmd.Height,
		Pitch:     -90,
	})
	return jsonResult(cmd)
}

func (s *Service) toolAddPointAtLocation(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		Color string `json:"color"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	q := a.query()
	if q == "" {
		return errorResult("Missing 'location' parameter")
	}

	r, ok := s.resolvePlace(ctx, q)
	if !ok {
		return errorResult(notFoundText(q))
	}

	cmd := pointCmd{
		Type:      "addPoint",
		ID:        s.state.nextEntityID(),
		Longitude: r.lon,
		Latitude:  r.lat,
		Name:      r.name,
		Color:     sval(a.Color, "#FFFFFF"),
	}
	return jsonResult(cmd)
}

func (s *Service) toolAddLabelAtLocation(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		Text string `json:"text"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	q := a.query()
	if q == "" {
		return errorResult("Missing 'location' parameter")
	}

	r, ok := s.resolvePlace(ctx, q)
	if !ok {
		return errorResult(notFoundText(q))
	}

	cmd := labelCmd{
		Type:      "addLabel",
		ID:        s.state.nextEntityID(),
		Longitude: r.lon,
		Latitude:  r.lat,
		Text:      sval(a.Text, r.name),
	}
	return jsonResult(cmd)
}

func (s *Service) toolAddSphereAtLocation(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		Radius *float64 `json:"radius"`
		Height *float64 `json:"height"`
		Color  string   `json:"color"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	q := a.query()
	if q == "" {
		return errorResult("Missing 'location' parameter")
	}

	r, ok := s.resolvePlace(ctx, q)
	if !ok {
		return errorResult(notFoundText(q))
	}

	cmd := sphereCmd{
		Type:      "addSphere",
		ID:        s.state.nextEntityID(),
		Longitude: r.lon,
		Latitude:  r.lat,
		Height:    clampHeight(fval(a.Height, 0)),
		Radius:    clampRadius(fval(a.Radius, 100)),
		Color:     sval(a.Color, "#FF0000"),
		Name:      r.name,
	}
	return jsonResult(cmd)
}

func (s *Service) toolAddBoxAtLocation(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		DimensionX *float64 `json:"dimensionX"`
		DimensionY *float64 `json:"dimensionY"`
		DimensionZ *float64 `json:"dimensionZ"`
		Color      string   `json:"color"`
		Heading    *float64 `json:"heading"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	q := a.query()
	if q == "" {
		return errorResult("Missing 'location' parameter")
	}

	r, ok := s.resolvePlace(ctx, q)
	if !ok {
		return errorResult(notFoundText(q))
	}

	// Caller heading wins; otherwise fall back to the database heading so
	// boxes align with the real structure's orientation.
	heading := a.Heading
	if heading == nil && r.hasHeading {
		h := r.heading
		heading = &h
	}

	cmd := boxCmd{
		Type:      "addBox",
		ID:        s.state.nextEntityID(),
		Longitude: r.lon,
		Latitude:  r.lat,
		Dimensions: boxDimensions{
			X: clampDimension(fval(a.DimensionX, 100)),
			Y: clampDimension(fval(a.DimensionY, 100)),
			Z: clampDimension(fval(a.DimensionZ, 50)),
		},
		Color:   sval(a.Color, "#0000FF"),
		Heading: heading,
	}
	return jsonResult(cmd)
}
