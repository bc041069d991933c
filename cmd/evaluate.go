package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/giantswarm/qa-judge/internal/dataset"
	"github.com/giantswarm/qa-judge/internal/judge"
	"github.com/giantswarm/qa-judge/internal/prompt"
	"github.com/giantswarm/qa-judge/internal/report"
	"github.com/giantswarm/qa-judge/internal/runner"
)

// evalOptions are the inputs shared by the pairs and judge commands.
type evalOptions struct {
	groundTruth  string
	prediction   string
	templatePath string
	variant      string
	limit        int
	output       string
}

// runEvaluation loads and matches both files, runs the leading pairs through
// the runner and writes the report to out. progress may be nil.
func runEvaluation(ctx context.Context, out, progress io.Writer, opts evalOptions, j judge.Judge, judgeName string) error {
	strategy, err := runner.GetStrategy(opts.variant)
	if err != nil {
		return err
	}

	warnGroundTruthSpelling(opts.groundTruth)

	pairs, err := dataset.GetAnswerPairs(opts.groundTruth, opts.prediction)
	if err != nil {
		return err
	}

	r := runner.NewRunner(strategy, opts.limit)
	if opts.templatePath != "" {
		tmpl, err := prompt.LoadTemplate(opts.templatePath)
		if err != nil {
			return err
		}
		r.SetTemplate(tmpl)
	}
	if j != nil {
		r.SetJudge(j, judgeName)
	}
	printed := false
	if progress != nil && j != nil {
		r.SetProgressFunc(func(id string, idx, total int) {
			printed = true
			fmt.Fprintf(progress, "\r  Judging pair %d/%d (%s)...", idx, total, id)
		})
	}

	rep, err := r.Run(ctx, pairs)
	if printed {
		fmt.Fprintln(progress)
	}
	if err != nil {
		return err
	}

	return report.Write(out, opts.output, rep, func() string {
		return strategy.FormatReport(rep)
	})
}
