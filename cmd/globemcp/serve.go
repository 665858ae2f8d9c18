package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/globemcp/globemcp/internal/rpc"
)

var serveHTTP bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server (stdio by default, --http for HTTP)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		srv := rpc.NewServer()
		svc.RegisterAll(srv)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveHTTP {
			return serveOverHTTP(ctx, srv)
		}

		zap.L().Info("serving MCP over stdio")
		if err := srv.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil {
			if eris.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return nil
	},
}

func serveOverHTTP(ctx context.Context, srv *rpc.Server) error {
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.HTTPHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("serving MCP over HTTP", zap.String("addr", addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return eris.Wrap(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "http shutdown")
	}
	zap.L().Info("server stopped")
	return nil
}

func init() {
	serveCmd.Flags().BoolVar(&serveHTTP, "http", false, "serve JSON-RPC over HTTP instead of stdio")
	rootCmd.AddCommand(serveCmd)
}
