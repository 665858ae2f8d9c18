package tools

import (
	"context"
	"encoding/json"

	"github.com/globemcp/globemcp/internal/rpc"
)

type pointCmd struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Name      string  `json:"name,omitempty"`
	Color     string  `json:"color"`
}

func (s *Service) toolAddPoint(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		Name      string   `json:"name"`
		Color     string   `json:"color"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}

	lon, lat, name, res := s.coords(ctx, a.locationArgs, a.Longitude, a.Latitude)
	if res != nil {
		return res, nil
	}

	cmd := pointCmd{
		Type:      "addPoint",
		ID:        s.state.nextEntityID(),
		Longitude: lon,
		Latitude:  lat,
		Name:      sval(a.Name, name),
		Color:     sval(a.Color, "#FFFFFF"),
	}
	return jsonResult(cmd)
}

type labelCmd struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Text      string  `json:"text"`
}

func (s *Service) toolAddLabel(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		Text      string   `json:"text"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.Longitude == nil || a.Latitude == nil {
		return errorResult("Missing 'longitude' or 'latitude' parameter")
	}
	if a.Text == "" {
		return errorResult("Missing 'text' parameter")
	}

	cmd := labelCmd{
		Type:      "addLabel",
		ID:        s.state.nextEntityID(),
		Longitude: *a.Longitude,
		Latitude:  *a.Latitude,
		Text:      a.Text,
	}
	return jsonResult(cmd)
}

type sphereCmd struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
	Radius    float64 `json:"radius"`
	Color     string  `json:"color"`
	Name      string  `json:"name,omitempty"`
}

func (s *Service) toolAddSphere(ctx context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		locationArgs
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		Height    *float64 `json:"height"`
		Radius    *float64 `json:"radius"`
		Color     string   `json:"color"`
		Name      string   `json:"name"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}

	lon, lat, name, res := s.coords(ctx, a.locationArgs, a.Longitude, a.Latitude)
	if res != nil {
		return res, nil
	}

	cmd := sphereCmd{
		Type:      "addSphere",
		ID:        s.state.nextEntityID(),
		Longitude: lon,
		Latitude:  lat,
		Height:    clampHeight(fval(a.Height, 0)),
		Radius:    clampRadius(fval(a.Radius, 100)),
		Color:     sval(a.Color, "#FF0000"),
		Name:      sval(a.Name, name),
	}
	return jsonResult(cmd)
}

type boxDimensions struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type boxCmd struct {
	Type       string        `json:"type"`
	ID         string        `json:"id"`
	Longitude  float64       `json:"longitude"`
	Latitude   float64       `json:"latitude"`
	Dimensions boxDimensions `json:"dimensions"`
	Color      string        `json:"color"`
	Heading    *float64      `json:"heading,omitempty"`
}

func (s *Service) toolAddBox(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Longitude  *float64 `json:"longitude"`
		Latitude   *float64 `json:"latitude"`
		Dimensions *struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
			Z *float64 `json:"z"`
		} `json:"dimensions"`
		Color   string   `json:"color"`
		Heading *float64 `json:"heading"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.Longitude == nil || a.Latitude == nil {
		return errorResult("Missing 'longitude' or 'latitude' parameter")
	}

	dims := boxDimensions{X: 100, Y: 100, Z: 50}
	if a.Dimensions != nil {
		dims.X = fval(a.Dimensions.X, 100)
		dims.Y = fval(a.Dimensions.Y, 100)
		dims.Z = fval(a.Dimensions.Z, 50)
	}
	dims.X = clampDimension(dims.X)
	dims.Y = clampDimension(dims.Y)
	dims.Z = clampDimension(dims.Z)

	cmd := boxCmd{
		Type:       "addBox",
		ID:         s.state.nextEntityID(),
		Longitude:  *a.Longitude,
		Latitude:   *a.Latitude,
		Dimensions: dims,
		Color:      sval(a.Color, "#0000FF"),
		Heading:    a.Heading,
	}
	return jsonResult(cmd)
}

type cylinderCmd struct {
	Type           string  `json:"type"`
	ID             string  `json:"id"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	TopRadius      float64 `json:"topRadius"`
	BottomRadius   float64 `json:"bottomRadius"`
	CylinderHeight float64 `json:"cylinderHeight"`
	Color          string  `json:"color"`
}

func (s *Service) toolAddCylinder(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Longitude      *float64 `json:"longitude"`
		Latitude       *float64 `json:"latitude"`
		TopRadius      *float64 `json:"topRadius"`
		BottomRadius   *float64 `json:"bottomRadius"`
		CylinderHeight *float64 `json:"cylinderHeight"`
		Color          string   `json:"color"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.Longitude == nil || a.Latitude == nil {
		return errorResult("Missing 'longitude' or 'latitude' parameter")
	}

	cmd := cylinderCmd{
		Type:           "addCylinder",
		ID:             s.state.nextEntityID(),
		Longitude:      *a.Longitude,
		Latitude:       *a.Latitude,
		TopRadius:      fval(a.TopRadius, 100),
		BottomRadius:   fval(a.BottomRadius, 100),
		CylinderHeight: fval(a.CylinderHeight, 100),
		Color:          sval(a.Color, "#00FF00"),
	}
	return jsonResult(cmd)
}

func (s *Service) toolRemoveEntity(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.ID == "" {
		return errorResult("Missing 'id' parameter")
	}

	s.state.removeEntity(a.ID)
	return jsonResult(map[string]string{"type": "removeEntity", "id": a.ID})
}

func (s *Service) toolClearAll(_ context.Context, _ json.RawMessage) (any, *rpc.Error) {
	n := s.state.clear()
	return jsonResult(map[string]any{"type": "clearAll", "removed": n})
}
