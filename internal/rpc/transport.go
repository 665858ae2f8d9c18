package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// maxFrameSize bounds a single line-delimited message. Tool arguments are
// small; anything larger is a misbehaving client.
const maxFrameSize = 1 << 20

// ServeStdio runs the line-delimited stdio transport until EOF or context
// cancellation. Each input line is one JSON-RPC message; each response is
// written as one line. This is the standard MCP stdio framing, so stdout
// must carry nothing but protocol frames (log to stderr).
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		resp := s.HandleMessage(ctx, line)
		if resp == nil {
			continue
		}
		if _, err := w.Write(append(resp, '\n')); err != nil {
			return eris.Wrap(err, "rpc: write response")
		}
	}

	if err := scanner.Err(); err != nil {
		return eris.Wrap(err, "rpc: read frame")
	}
	return nil
}

// HTTPHandler mounts the server on a chi router: POST /rpc for JSON-RPC
// messages and GET /healthz for liveness probes. Notifications get 204.
func (s *Server) HTTPHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Post("/rpc", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(io.LimitReader(req.Body, maxFrameSize))
		if err != nil {
			http.Error(w, `{"error":"read body"}`, http.StatusBadRequest)
			return
		}

		resp := s.HandleMessage(req.Context(), body)
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(resp); err != nil {
			zap.L().Warn("rpc: write http response", zap.Error(err))
		}
	})

	return r
}
