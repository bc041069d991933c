package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/giantswarm/qa-judge/internal/config"
	"github.com/giantswarm/qa-judge/internal/judge"
	mcptools "github.com/giantswarm/qa-judge/internal/mcp"
	"github.com/giantswarm/qa-judge/internal/server"
)

const (
	transportStdio          = "stdio"
	transportStreamableHTTP = "streamable-http"
)

func newServeCmd() *cobra.Command {
	var (
		transport    string
		httpAddr     string
		httpEndpoint string
		dataDir      string
		noJudge      bool

		enableOAuth     bool
		oauthBaseURL    string
		dexIssuerURL    string
		dexClientID     string
		dexClientSecret string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start an MCP server exposing the list_variants, list_answer_pairs and
judge_answer_pairs tools. File arguments are resolved inside --data-dir.

Supported transports:
  - stdio: Standard input/output (default, for IDE integration)
  - streamable-http: HTTP with streaming support (for remote access)

With streamable-http, --enable-oauth protects the MCP endpoint with OAuth 2.1 via Dex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(dataDir)
			if err != nil {
				return fmt.Errorf("data directory %s: %w", dataDir, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("data directory %s is not a directory", dataDir)
			}

			sc := &server.ServerContext{
				Config:  *appConfig,
				DataDir: dataDir,
			}
			if !noJudge {
				sc.NewJudge = func(cfg config.Config) (judge.Judge, string) {
					j := newJudgeFromConfig(cfg)
					return j, j.Model()
				}
			}

			mcpSrv := mcpserver.NewMCPServer("qa-judge", rootCmd.Version,
				mcpserver.WithToolCapabilities(true),
			)
			if err := mcptools.RegisterTools(mcpSrv, sc); err != nil {
				return fmt.Errorf("failed to register MCP tools: %w", err)
			}

			switch transport {
			case transportStdio:
				if enableOAuth {
					return fmt.Errorf("--enable-oauth requires the %s transport", transportStreamableHTTP)
				}
				if err := mcpserver.ServeStdio(mcpSrv); err != nil {
					return fmt.Errorf("server stopped with error: %w", err)
				}
				return nil

			case transportStreamableHTTP:
				var oauthCfg *server.OAuthConfig
				if enableOAuth {
					cfg := server.OAuthConfig{
						BaseURL:         oauthBaseURL,
						DexIssuerURL:    dexIssuerURL,
						DexClientID:     dexClientID,
						DexClientSecret: dexClientSecret,
					}.WithEnvDefaults()
					oauthCfg = &cfg
				}

				httpSrv, err := server.NewHTTPServer(mcpSrv, httpEndpoint, oauthCfg)
				if err != nil {
					return fmt.Errorf("failed to create HTTP server: %w", err)
				}

				out := cmd.ErrOrStderr()
				fmt.Fprintf(out, "Starting qa-judge MCP server on %s\n", httpAddr)
				fmt.Fprintf(out, "  MCP endpoint: %s\n", httpEndpoint)
				fmt.Fprintf(out, "  Data directory: %s\n", dataDir)
				fmt.Fprintf(out, "  Health: /healthz\n")
				if httpSrv.OAuthEnabled() {
					fmt.Fprintf(out, "  OAuth base URL: %s (MCP endpoint requires a bearer token)\n", oauthBaseURL)
				}

				ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer cancel()
				return httpSrv.Serve(ctx, httpAddr)

			default:
				return fmt.Errorf("unsupported transport: %s (supported: %s, %s)", transport, transportStdio, transportStreamableHTTP)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", transportStdio, "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http)")
	cmd.Flags().StringVar(&dataDir, "data-dir", ".", "Directory that tool file arguments are resolved in")
	cmd.Flags().BoolVar(&noJudge, "no-judge", false, "Do not expose a working judge_answer_pairs tool")

	cmd.Flags().BoolVar(&enableOAuth, "enable-oauth", false, "Enable OAuth 2.1 authentication (streamable-http only)")
	cmd.Flags().StringVar(&oauthBaseURL, "oauth-base-url", "", "Public base URL of this server (e.g. https://qa-judge.example.com)")
	cmd.Flags().StringVar(&dexIssuerURL, "dex-issuer-url", "", "Dex OIDC issuer URL (or set "+server.EnvDexIssuerURL+")")
	cmd.Flags().StringVar(&dexClientID, "dex-client-id", "", "Dex OAuth client ID (or set "+server.EnvDexClientID+")")
	cmd.Flags().StringVar(&dexClientSecret, "dex-client-secret", "", "Dex OAuth client secret (or set "+server.EnvDexClientSecret+")")

	return cmd
}
