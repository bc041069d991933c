package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 120 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// HTTPServer exposes an MCP server over streamable HTTP, optionally behind
// OAuth 2.1. /healthz is always unauthenticated.
type HTTPServer struct {
	endpoint string
	mux      *http.ServeMux
	oauth    *oauthLayer
}

// NewHTTPServer builds the HTTP routes for mcpSrv. A nil oauthCfg serves the
// MCP endpoint without authentication.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer, endpoint string, oauthCfg *OAuthConfig) (*HTTPServer, error) {
	if endpoint == "" || endpoint[0] != '/' {
		return nil, fmt.Errorf("HTTP endpoint must start with '/' (got %q)", endpoint)
	}

	s := &HTTPServer{
		endpoint: endpoint,
		mux:      http.NewServeMux(),
	}

	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(endpoint),
	)

	if oauthCfg != nil {
		layer, err := newOAuthLayer(*oauthCfg)
		if err != nil {
			return nil, err
		}
		s.oauth = layer
		layer.register(s.mux, endpoint, mcpHandler)
	} else {
		s.mux.Handle(endpoint, mcpHandler)
	}

	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return s, nil
}

// Handler returns the root handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.mux
}

// OAuthEnabled reports whether the MCP endpoint requires a bearer token.
func (s *HTTPServer) OAuthEnabled() bool {
	return s.oauth != nil
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Serve(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
	}()

	slog.Info("HTTP server listening", "addr", addr, "endpoint", s.endpoint, "oauth", s.OAuthEnabled())

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if s.oauth != nil {
			if err := s.oauth.server.Shutdown(shutdownCtx); err != nil {
				slog.Error("failed to shutdown OAuth server", "error", err)
			}
		}
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	slog.Info("HTTP server stopped")
	return nil
}
