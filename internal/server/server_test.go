package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHTTPSRequirement(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"https", "https://qa-judge.example.com", false},
		{"localhost http", "http://localhost:8080", false},
		{"ipv4 loopback http", "http://127.0.0.1:8080", false},
		{"ipv6 loopback http", "http://[::1]:8080", false},
		{"remote http", "http://example.com", true},
		{"empty", "", true},
		{"ftp scheme", "ftp://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateHTTPSRequirement(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOAuthConfigValidate(t *testing.T) {
	valid := OAuthConfig{
		BaseURL:         "https://qa-judge.example.com",
		DexIssuerURL:    "https://dex.example.com",
		DexClientID:     "qa-judge",
		DexClientSecret: "secret",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*OAuthConfig)
		wantMsg string
	}{
		{"missing base url", func(c *OAuthConfig) { c.BaseURL = "" }, "base URL"},
		{"missing issuer", func(c *OAuthConfig) { c.DexIssuerURL = "" }, EnvDexIssuerURL},
		{"missing client id", func(c *OAuthConfig) { c.DexClientID = "" }, EnvDexClientID},
		{"missing client secret", func(c *OAuthConfig) { c.DexClientSecret = "" }, EnvDexClientSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestOAuthConfigWithEnvDefaults(t *testing.T) {
	t.Setenv(EnvDexIssuerURL, "https://dex.from.env")
	t.Setenv(EnvDexClientID, "env-client")
	t.Setenv(EnvDexClientSecret, "env-secret")

	cfg := OAuthConfig{DexClientID: "flag-client"}.WithEnvDefaults()
	assert.Equal(t, "https://dex.from.env", cfg.DexIssuerURL)
	assert.Equal(t, "flag-client", cfg.DexClientID)
	assert.Equal(t, "env-secret", cfg.DexClientSecret)
}

func TestNewHTTPServerRejectsInvalidOAuth(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("qa-judge-test", "0.0.0")

	_, err := NewHTTPServer(mcpSrv, "/mcp", &OAuthConfig{BaseURL: "http://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTPS")
}

func TestNewHTTPServerRejectsRelativeEndpoint(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("qa-judge-test", "0.0.0")

	_, err := NewHTTPServer(mcpSrv, "mcp", nil)
	require.Error(t, err)
}

func TestHTTPServerHealthz(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("qa-judge-test", "0.0.0")
	s, err := NewHTTPServer(mcpSrv, "/mcp", nil)
	require.NoError(t, err)
	assert.False(t, s.OAuthEnabled())

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPServerServeStopsOnCancel(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("qa-judge-test", "0.0.0")
	s, err := NewHTTPServer(mcpSrv, "/mcp", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, "127.0.0.1:0") }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}
