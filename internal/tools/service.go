// Package tools implements the MCP surface: the tool catalog, tools/call
// dispatch, resources, and the protocol lifecycle methods. Tool handlers
// translate arguments into globe commands and location lookups; the actual
// resolution work lives in the gazetteer package.
package tools

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/globemcp/globemcp/gazetteer"
	"github.com/globemcp/globemcp/internal/geocode"
	"github.com/globemcp/globemcp/internal/rpc"
)

const protocolVersion = "2024-11-05"

// Geocoder is the outbound fallback used when the gazetteer misses.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (geocode.Result, error)
}

// Service binds the gazetteer and session state to the MCP methods.
type Service struct {
	gz          *gazetteer.Gazetteer
	maxDistance int
	maxResults  int
	fallback    Geocoder
	state       *sessionState
}

// Option configures a Service.
type Option func(*Service)

// WithMaxDistance sets the fuzzy-match edit distance cap.
func WithMaxDistance(d int) Option {
	return func(s *Service) { s.maxDistance = d }
}

// WithMaxResults sets the default result count for list-shaped tools.
func WithMaxResults(n int) Option {
	return func(s *Service) { s.maxResults = n }
}

// WithFallback enables the external geocoder for queries the gazetteer
// cannot resolve.
func WithFallback(g Geocoder) Option {
	return func(s *Service) { s.fallback = g }
}

// NewService builds a Service over the given gazetteer.
func NewService(gz *gazetteer.Gazetteer, opts ...Option) *Service {
	s := &Service{
		gz:          gz,
		maxDistance: gazetteer.DefaultMaxDistance,
		maxResults:  10,
		state:       newSessionState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterAll registers every MCP method on the RPC server.
func (s *Service) RegisterAll(srv *rpc.Server) {
	srv.Register("initialize", s.handleInitialize)
	srv.Register("ping", s.handlePing)
	srv.Register("tools/list", s.handleToolsList)
	srv.Register("tools/call", s.handleToolsCall)
	srv.Register("resources/list", s.handleResourcesList)
	srv.Register("resources/read", s.handleResourcesRead)
}

func (s *Service) handleInitialize(_ context.Context, _ json.RawMessage) (any, *rpc.Error) {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "globemcp",
			"version": "1.0.0",
		},
	}, nil
}

func (s *Service) handlePing(_ context.Context, _ json.RawMessage) (any, *rpc.Error) {
	return map[string]any{}, nil
}

func (s *Service) handleToolsList(_ context.Context, _ json.RawMessage) (any, *rpc.Error) {
	return map[string]any{"tools": catalog}, nil
}

// textContent is one MCP content block.
type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// callResult is the tools/call result envelope.
type callResult struct {
	Content []textContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

func textResult(text string) (any, *rpc.Error) {
	return callResult{Content: []textContent{{Type: "text", Text: text}}}, nil
}

func errorResult(text string) (any, *rpc.Error) {
	return callResult{Content: []textContent{{Type: "text", Text: text}}, IsError: true}, nil
}

// jsonResult marshals v and wraps it as a text content block.
func jsonResult(v any) (any, *rpc.Error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, rpc.Errorf(rpc.CodeInternalError, "marshal result: %v", err)
	}
	return textResult(string(data))
}

// toolHandler serves one tool invocation.
type toolHandler func(s *Service, ctx context.Context, args json.RawMessage) (any, *rpc.Error)

var toolHandlers = map[string]toolHandler{
	"flyTo":               (*Service).toolFlyTo,
	"lookAt":              (*Service).toolLookAt,
	"setView":             (*Service).toolSetView,
	"getCamera":           (*Service).toolGetCamera,
	"addPoint":            (*Service).toolAddPoint,
	"addLabel":            (*Service).toolAddLabel,
	"addSphere":           (*Service).toolAddSphere,
	"addBox":              (*Service).toolAddBox,
	"addCylinder":         (*Service).toolAddCylinder,
	"removeEntity":        (*Service).toolRemoveEntity,
	"clearAll":            (*Service).toolClearAll,
	"resolveLocation":     (*Service).toolResolveLocation,
	"listLocations":       (*Service).toolListLocations,
	"topCities":           (*Service).toolTopCities,
	"flyToLocation":       (*Service).toolFlyToLocation,
	"addPointAtLocation":  (*Service).toolAddPointAtLocation,
	"addLabelAtLocation":  (*Service).toolAddLabelAtLocation,
	"addSphereAtLocation": (*Service).toolAddSphereAtLocation,
	"addBoxAtLocation":    (*Service).toolAddBoxAtLocation,
}

func (s *Service) handleToolsCall(ctx context.Context, params json.RawMessage) (any, *rpc.Error) {
	var call struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "invalid tools/call params: %v", err)
	}

	h, ok := toolHandlers[call.Name]
	if !ok {
		return nil, rpc.Errorf(rpc.CodeInvalidParams, "unknown tool: %s", call.Name)
	}

	zap.L().Debug("tool call", zap.String("tool", call.Name))
	return h(s, ctx, call.Arguments)
}
