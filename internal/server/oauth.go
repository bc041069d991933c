package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	oauth "github.com/giantswarm/mcp-oauth"
	"github.com/giantswarm/mcp-oauth/providers/dex"
	oauthserver "github.com/giantswarm/mcp-oauth/server"
	"github.com/giantswarm/mcp-oauth/storage/memory"
)

// Environment variables consulted for Dex settings not given as flags.
const (
	EnvDexIssuerURL    = "DEX_ISSUER_URL"
	EnvDexClientID     = "DEX_CLIENT_ID"
	EnvDexClientSecret = "DEX_CLIENT_SECRET"
)

const defaultMaxClientsPerIP = 10

// OAuthConfig configures OAuth 2.1 protection of the MCP endpoint through Dex.
type OAuthConfig struct {
	// BaseURL is the public URL of this server, used as the issuer and to
	// build the Dex redirect URL.
	BaseURL string

	DexIssuerURL    string
	DexClientID     string
	DexClientSecret string

	// MaxClientsPerIP limits dynamic client registrations. Zero uses 10.
	MaxClientsPerIP int
}

// WithEnvDefaults fills unset Dex settings from the environment.
func (c OAuthConfig) WithEnvDefaults() OAuthConfig {
	if c.DexIssuerURL == "" {
		c.DexIssuerURL = os.Getenv(EnvDexIssuerURL)
	}
	if c.DexClientID == "" {
		c.DexClientID = os.Getenv(EnvDexClientID)
	}
	if c.DexClientSecret == "" {
		c.DexClientSecret = os.Getenv(EnvDexClientSecret)
	}
	return c
}

// Validate checks that every setting needed to talk to Dex is present and
// that the base URL is safe to advertise.
func (c OAuthConfig) Validate() error {
	if err := validateHTTPSRequirement(c.BaseURL); err != nil {
		return fmt.Errorf("OAuth base URL validation failed: %w", err)
	}
	if c.DexIssuerURL == "" {
		return fmt.Errorf("dex issuer URL is required (--dex-issuer-url or %s)", EnvDexIssuerURL)
	}
	if c.DexClientID == "" {
		return fmt.Errorf("dex client ID is required (--dex-client-id or %s)", EnvDexClientID)
	}
	if c.DexClientSecret == "" {
		return fmt.Errorf("dex client secret is required (--dex-client-secret or %s)", EnvDexClientSecret)
	}
	return nil
}

// oauthLayer is the authorization server plus its HTTP handler.
type oauthLayer struct {
	server  *oauth.Server
	handler *oauth.Handler
}

func newOAuthLayer(cfg OAuthConfig) (*oauthLayer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := dex.NewProvider(&dex.Config{
		IssuerURL:    cfg.DexIssuerURL,
		ClientID:     cfg.DexClientID,
		ClientSecret: cfg.DexClientSecret,
		RedirectURL:  cfg.BaseURL + "/oauth/callback",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Dex provider: %w", err)
	}

	maxClients := cfg.MaxClientsPerIP
	if maxClients <= 0 {
		maxClients = defaultMaxClientsPerIP
	}

	// Tokens and clients live in memory; a restart logs every client out.
	store := memory.New()
	logger := slog.Default()

	srv, err := oauth.NewServer(provider, store, store, store,
		&oauthserver.Config{
			Issuer:                    cfg.BaseURL,
			AllowRefreshTokenRotation: true,
			MaxClientsPerIP:           maxClients,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OAuth server: %w", err)
	}

	return &oauthLayer{
		server:  srv,
		handler: oauth.NewHandler(srv, logger),
	}, nil
}

// register mounts the OAuth endpoints and protects mcpHandler at endpoint.
func (l *oauthLayer) register(mux *http.ServeMux, endpoint string, mcpHandler http.Handler) {
	l.handler.RegisterAuthorizationServerMetadataRoutes(mux)
	l.handler.RegisterProtectedResourceMetadataRoutes(mux, endpoint)
	mux.HandleFunc("/oauth/authorize", l.handler.ServeAuthorization)
	mux.HandleFunc("/oauth/token", l.handler.ServeToken)
	mux.HandleFunc("/oauth/callback", l.handler.ServeCallback)
	mux.HandleFunc("/oauth/register", l.handler.ServeClientRegistration)
	mux.HandleFunc("/oauth/revoke", l.handler.ServeTokenRevocation)
	mux.HandleFunc("/oauth/introspect", l.handler.ServeTokenIntrospection)
	mux.Handle(endpoint, l.handler.ValidateToken(mcpHandler))
}

// validateHTTPSRequirement allows plain HTTP only for loopback hosts.
func validateHTTPSRequirement(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	switch u.Scheme {
	case "https":
		return nil
	case "http":
		switch u.Hostname() {
		case "localhost", "127.0.0.1", "::1":
			return nil
		}
		return fmt.Errorf("OAuth 2.1 requires HTTPS (got: %s); use HTTPS or a loopback address", baseURL)
	default:
		return fmt.Errorf("invalid URL scheme: %q (must be https, or http for loopback)", u.Scheme)
	}
}
