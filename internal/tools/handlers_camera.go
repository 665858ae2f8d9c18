package tools

import (
	"context"
	"encoding/json"

	"github.com/globemcp/globemcp/internal/rpc"
)

type flyToCmd struct {
	Type      string  `json:"type"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
	Duration  float64 `json:"duration"`
}

func (s *Service) toolFlyTo(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		Height    *float64 `json:"height"`
		Duration  *float64 `json:"duration"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.Longitude == nil || a.Latitude == nil {
		return errorResult("Missing 'longitude' or 'latitude' parameter")
	}

	cmd := flyToCmd{
		Type:      "flyTo",
		Longitude: *a.Longitude,
		Latitude:  *a.Latitude,
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

type lookAtCmd struct {
	Type      string  `json:"type"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Range     float64 `json:"range"`
}

func (s *Service) toolLookAt(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		Range     *float64 `json:"range"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.Longitude == nil || a.Latitude == nil {
		return errorResult("Missing 'longitude' or 'latitude' parameter")
	}

	cmd := lookAtCmd{
		Type:      "lookAt",
		Longitude: *a.Longitude,
		Latitude:  *a.Latitude,
		Range:     fval(a.Range, 10000),
	}
	return jsonResult(cmd)
}

type setViewCmd struct {
	Type      string  `json:"type"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
	Heading   float64 `json:"heading"`
	Pitch     float64 `json:"pitch"`
	Roll      float64 `json:"roll"`
}

func (s *Service) toolSetView(_ context.Context, args json.RawMessage) (any, *rpc.Error) {
	var a struct {
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
		Height    *float64 `json:"height"`
		Heading   *float64 `json:"heading"`
		Pitch     *float64 `json:"pitch"`
		Roll      *float64 `json:"roll"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid arguments: %v", err)
	}
	if a.Longitude == nil || a.Latitude == nil {
		return errorResult("Missing 'longitude' or 'latitude' parameter")
	}

	cmd := setViewCmd{
		Type:      "setView",
		Longitude: *a.Longitude,
		Latitude:  *a.Latitude,
		Height:    fval(a.Height, 10000),
		Heading:   fval(a.Heading, 0),
		Pitch:     fval(a.Pitch, -90),
		Roll:      fval(a.Roll, 0),
	}
	s.state.setCamera(camera{
		Longitude: cmd.Longitude,
		Latitude:  cmd.Latitude,
		Height:    cmd.Height,
		Heading:   cmd.Heading,
		Pitch:     cmd.Pitch,
		Roll:      cmd.Roll,
	})
	return jsonResult(cmd)
}

func (s *Service) toolGetCamera(_ context.Context, _ json.RawMessage) (any, *rpc.Error) {
	return jsonResult(s.state.cameraSnapshot())
}
