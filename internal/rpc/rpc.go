// Package rpc implements the JSON-RPC 2.0 framing used by the MCP surface:
// message types, error codes, method dispatch, and the stdio and HTTP
// transports. It knows nothing about tools or the gazetteer; methods are
// registered by the caller.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC 2.0 request or notification (no ID).
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no ID and therefore
// must not receive a response.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// Response is an outgoing JSON-RPC 2.0 response. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc %d: %s", e.Code, e.Message)
}

// Errorf builds an Error with a formatted message.
func Errorf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Handler serves a single JSON-RPC method. A nil *Error means success.
type Handler func(ctx context.Context, params json.RawMessage) (any, *Error)

// Server dispatches requests to registered method handlers.
type Server struct {
	handlers map[string]Handler
}

// NewServer returns an empty Server; register methods before serving.
func NewServer() *Server {
	return &Server{handlers: make(map[string]Handler)}
}

// Register binds a method name to a handler, replacing any previous binding.
func (s *Server) Register(method string, h Handler) {
	s.handlers[method] = h
}

// HandleMessage processes one raw JSON-RPC message and returns the marshaled
// response, or nil when no response is due (notifications). Malformed input
// produces a ParseError/InvalidRequest response rather than failing the
// transport: the peer always gets a definite answer when one is owed.
func (s *Server) HandleMessage(ctx context.Context, data []byte) []byte {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return marshalResponse(&Response{
			JSONRPC: "2.0",
			ID:      json.RawMessage("null"),
			Error:   Errorf(CodeParseError, "parse error: %v", err),
		})
	}

	resp := s.dispatch(ctx, &req)
	if resp == nil {
		return nil
	}
	return marshalResponse(resp)
}

func (s *Server) dispatch(ctx context.Context, req *Request) *Response {
	if req.JSONRPC != "2.0" || req.Method == "" {
		return &Response{
			JSONRPC: "2.0",
			ID:      idOrNull(req.ID),
			Error:   Errorf(CodeInvalidRequest, "invalid request"),
		}
	}

	h, ok := s.handlers[req.Method]
	if !ok {
		if req.IsNotification() {
			// Unknown notifications are dropped silently per spec.
			return nil
		}
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   Errorf(CodeMethodNotFound, "method not found: %s", req.Method),
		}
	}

	result, herr := h(ctx, req.Params)
	if req.IsNotification() {
		return nil
	}
	resp := &Response{JSONRPC: "2.0", ID: req.ID}
	if herr != nil {
		resp.Error = herr
	} else {
		resp.Result = result
	}
	return resp
}

func idOrNull(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}

func marshalResponse(resp *Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// Result failed to serialize; report instead of dropping the reply.
		fallback := &Response{
			JSONRPC: "2.0",
			ID:      resp.ID,
			Error:   Errorf(CodeInternalError, "marshal response: %v", err),
		}
		data, _ = json.Marshal(fallback)
	}
	return data
}
