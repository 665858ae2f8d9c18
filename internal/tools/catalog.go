package tools

import "encoding/json"

// Definition describes one tool for tools/list.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

func schema(s string) json.RawMessage { return json.RawMessage(s) }

// catalog is the tool surface advertised to clients. Coordinate tools take
// raw longitude/latitude; location tools resolve a place name through the
// gazetteer first.
var catalog = []Definition{
	{
		Name:        "flyTo",
		Description: "Fly the camera to a specific geographic location",
		InputSchema: schema(`{"type":"object","properties":{"longitude":{"type":"number","minimum":-180,"maximum":180},"latitude":{"type":"number","minimum":-90,"maximum":90},"height":{"type":"number"},"duration":{"type":"number"}},"required":["longitude","latitude"]}`),
	},
	{
		Name:        "lookAt",
		Description: "Orient the camera to look at a specific location",
		InputSchema: schema(`{"type":"object","properties":{"longitude":{"type":"number"},"latitude":{"type":"number"},"range":{"type":"number"}},"required":["longitude","latitude"]}`),
	},
	{
		Name:        "setView",
		Description: "Set camera view instantly (no animation)",
		InputSchema: schema(`{"type":"object","properties":{"longitude":{"type":"number"},"latitude":{"type":"number"},"height":{"type":"number"},"heading":{"type":"number"},"pitch":{"type":"number"},"roll":{"type":"number"}},"required":["longitude","latitude"]}`),
	},
	{
		Name:        "getCamera",
		Description: "Get current camera position and orientation",
		InputSchema: schema(`{"type":"object","properties":{}}`),
	},
	{
		Name:        "addPoint",
		Description: "Add a point marker. Use 'location' for named places or longitude/latitude for coordinates.",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string","description":"Named location (e.g. 'statue of liberty')"},"longitude":{"type":"number"},"latitude":{"type":"number"},"name":{"type":"string"},"color":{"type":"string"}}}`),
	},
	{
		Name:        "addLabel",
		Description: "Add a text label",
		InputSchema: schema(`{"type":"object","properties":{"longitude":{"type":"number"},"latitude":{"type":"number"},"text":{"type":"string"}},"required":["longitude","latitude","text"]}`),
	},
	{
		Name:        "addSphere",
		Description: "Add a 3D sphere/orb. Use 'location' for named places. Radius should be 10-500 meters for most uses.",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"},"longitude":{"type":"number"},"latitude":{"type":"number"},"height":{"type":"number","description":"Height above ground in meters (0-1000)","maximum":1000},"radius":{"type":"number","description":"Radius in meters (10-500 typical)","minimum":1,"maximum":1000},"color":{"type":"string"},"name":{"type":"string"}}}`),
	},
	{
		Name:        "addBox",
		Description: "Add a 3D box",
		InputSchema: schema(`{"type":"object","properties":{"longitude":{"type":"number"},"latitude":{"type":"number"},"dimensions":{"type":"object"},"color":{"type":"string"}},"required":["longitude","latitude","dimensions"]}`),
	},
	{
		Name:        "addCylinder",
		Description: "Add a 3D cylinder",
		InputSchema: schema(`{"type":"object","properties":{"longitude":{"type":"number"},"latitude":{"type":"number"},"topRadius":{"type":"number"},"bottomRadius":{"type":"number"},"cylinderHeight":{"type":"number"}},"required":["longitude","latitude","cylinderHeight"]}`),
	},
	{
		Name:        "removeEntity",
		Description: "Remove an entity by ID",
		InputSchema: schema(`{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`),
	},
	{
		Name:        "clearAll",
		Description: "Remove all entities",
		InputSchema: schema(`{"type":"object","properties":{}}`),
	},
	{
		Name:        "resolveLocation",
		Description: "Resolve a location name to coordinates",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"}},"required":["location"]}`),
	},
	{
		Name:        "listLocations",
		Description: "List known locations",
		InputSchema: schema(`{"type":"object","properties":{"prefix":{"type":"string"}}}`),
	},
	{
		Name:        "topCities",
		Description: "List the largest known cities by population",
		InputSchema: schema(`{"type":"object","properties":{"maxResults":{"type":"number"},"minPopulation":{"type":"number"}}}`),
	},
	{
		Name:        "flyToLocation",
		Description: "Fly camera to a named location. Height 1000-50000m typical.",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"},"height":{"type":"number","description":"Camera height in meters (1000-50000 typical)","minimum":100,"maximum":100000},"duration":{"type":"number","description":"Flight duration in seconds (1-5)"}},"required":["location"]}`),
	},
	{
		Name:        "addPointAtLocation",
		Description: "Add point at named location",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"},"color":{"type":"string"}},"required":["location"]}`),
	},
	{
		Name:        "addLabelAtLocation",
		Description: "Add label at named location",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"},"text":{"type":"string"}},"required":["location","text"]}`),
	},
	{
		Name:        "addSphereAtLocation",
		Description: "Add sphere at named location. Radius 10-500m typical.",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"},"radius":{"type":"number","description":"Radius in meters (10-500 typical)","minimum":1,"maximum":1000},"height":{"type":"number","description":"Height above ground (0-1000m)","maximum":1000},"color":{"type":"string"}},"required":["location"]}`),
	},
	{
		Name:        "addBoxAtLocation",
		Description: "Add box at named location. Auto-uses database heading if available; override with heading param (0=North, 90=East).",
		InputSchema: schema(`{"type":"object","properties":{"location":{"type":"string"},"dimensionX":{"type":"number"},"dimensionY":{"type":"number"},"dimensionZ":{"type":"number"},"color":{"type":"string"},"heading":{"type":"number"}},"required":["location"]}`),
	},
}
