package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/qa-judge/internal/report"
	"github.com/giantswarm/qa-judge/internal/runner"
)

func newPairsCmd() *cobra.Command {
	opts := evalOptions{}

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Match ground truth and predictions and preview the answer pairs",
		Long: `Load the ground-truth and prediction JSONL files, join them on QA_number and print
the number of matched pairs followed by the first pairs in QA_number order.

When --template is given, the prompt that would be sent to a judge is rendered for each
previewed pair. No model is called.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluation(cmd.Context(), cmd.OutOrStdout(), nil, opts, nil, "")
		},
	}

	cmd.Flags().StringVar(&opts.groundTruth, "ground-truth", defaultPairsGroundTruth, "Ground-truth JSONL file")
	cmd.Flags().StringVar(&opts.prediction, "prediction", defaultPrediction, "Prediction JSONL file")
	cmd.Flags().StringVar(&opts.templatePath, "template", "", "Prompt template to render for each previewed pair")
	cmd.Flags().StringVar(&opts.variant, "variant", "answer", "Template variant: answer or qa")
	cmd.Flags().IntVar(&opts.limit, "limit", runner.DefaultLimit, "Number of pairs to preview (0 for all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", report.FormatText, "Output format: text, json or yaml")

	return cmd
}
