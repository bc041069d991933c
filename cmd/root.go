package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/qa-judge/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "qa-judge",
	Short: "Compare predicted answers against ground truth, optionally with an LLM judge",
	Long: `qa-judge joins a ground-truth JSONL file and a prediction JSONL file on their
QA_number field and previews the matched answer pairs. The judge command additionally
renders a prompt template for each previewed pair and asks an OpenAI-compatible model for
a verdict. Matching and judging tools are also exposed via an MCP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		envFile, _ := cmd.Flags().GetString("env-file")
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

// appConfig is resolved once before any subcommand runs.
var appConfig = &config.Config{}

var (
	buildCommit = "unknown"
	buildDate   = "unknown"
)

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// SetBuildInfo sets the commit and build date for the version command.
func SetBuildInfo(commit, date string) {
	buildCommit = commit
	buildDate = date
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "qa-judge version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPairsCmd())
	rootCmd.AddCommand(newJudgeCmd())
	rootCmd.AddCommand(newVariantsCmd())
	rootCmd.AddCommand(newServeCmd())

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Optional environment file with OPENAI_API_KEY and friends")
}
