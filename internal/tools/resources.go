package tools

import (
	"context"
	"encoding/json"

	"github.com/globemcp/globemcp/internal/rpc"
)

// Resource URIs exposed via resources/list.
const (
	resourceLocations = "globe://locations"
	resourceCamera    = "globe://camera"
	resourceEntities  = "globe://entities"
	resourceScene     = "globe://scene/state"
)

type resourceDescriptor struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

var resourceList = []resourceDescriptor{
	{
		URI:         resourceLocations,
		Name:        "Known locations",
		Description: "The full location table with coordinates, headings and geohashes",
		MimeType:    "application/json",
	},
	{
		URI:         resourceCamera,
		Name:        "Camera state",
		Description: "Last commanded camera position and orientation",
		MimeType:    "application/json",
	},
	{
		URI:         resourceEntities,
		Name:        "Entities",
		Description: "IDs of entities created in this session",
		MimeType:    "application/json",
	},
	{
		URI:         resourceScene,
		Name:        "Scene state",
		Description: "Current scene mode",
		MimeType:    "application/json",
	},
}

func (s *Service) handleResourcesList(_ context.Context, _ json.RawMessage) (any, *rpc.Error) {
	return map[string]any{"resources": resourceList}, nil
}

type resourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

func (s *Service) handleResourcesRead(_ context.Context, params json.RawMessage) (any, *rpc.Error) {
	var p struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid resources/read params: %v", err)
	}

	var payload any
	switch p.URI {
	case resourceLocations:
		payload = locationEntries(s.gz.All())
	case resourceCamera:
		payload = s.state.cameraSnapshot()
	case resourceEntities:
		payload = s.state.entitySnapshot()
	case resourceScene:
		payload = map[string]string{"mode": "3D"}
	default:
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "unknown resource: %s", p.URI)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, rpc.Errorf(rpc.CodeInternalError, "marshal resource: %v", err)
	}

	return map[string]any{
		"contents": []resourceContents{{
			URI:      p.URI,
			MimeType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
