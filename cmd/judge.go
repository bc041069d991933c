package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/qa-judge/internal/report"
	"github.com/giantswarm/qa-judge/internal/runner"
)

func newJudgeCmd() *cobra.Command {
	var (
		opts     evalOptions
		model    string
		endpoint string
		apiKey   string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Ask an LLM judge for a verdict on the first answer pairs",
		Long: `Match the ground-truth and prediction files, render the prompt template for each of
the first pairs and send it to an OpenAI-compatible chat completion endpoint with
temperature 0 and at most 128 output tokens. Pairs are judged one at a time; the first
failure aborts the run.

The API key is read from OPENAI_API_KEY (optionally set in the --env-file).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			if opts.templatePath == "" {
				strategy, err := runner.GetStrategy(opts.variant)
				if err != nil {
					return err
				}
				opts.templatePath = strategy.DefaultTemplate()
			}

			cfg := appConfig.Override(apiKey, endpoint, model)
			j := newJudgeFromConfig(cfg)

			if opts.output == report.FormatText {
				fmt.Fprintf(cmd.ErrOrStderr(), "Judge model: %s\n", j.Model())
				fmt.Fprintf(cmd.ErrOrStderr(), "Template: %s\n", opts.templatePath)
			}

			return runEvaluation(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, j, j.Model())
		},
	}

	cmd.Flags().StringVar(&opts.groundTruth, "ground-truth", defaultJudgeGroundTruth, "Ground-truth JSONL file")
	cmd.Flags().StringVar(&opts.prediction, "prediction", defaultPrediction, "Prediction JSONL file")
	cmd.Flags().StringVar(&opts.templatePath, "template", "", "Prompt template (default depends on --variant)")
	cmd.Flags().StringVar(&opts.variant, "variant", "qa", "Template variant: answer or qa")
	cmd.Flags().IntVar(&opts.limit, "limit", runner.DefaultLimit, "Number of pairs to judge (0 for all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", report.FormatText, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&model, "model", "", "Judge model name (or set QA_JUDGE_MODEL)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "OpenAI-compatible API base URL (or set OPENAI_BASE_URL)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (or set OPENAI_API_KEY)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall timeout for the run (e.g. 5m). 0 means no timeout")

	return cmd
}
