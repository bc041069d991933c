// Package runner drives an evaluation pass over matched answer pairs.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giantswarm/qa-judge/internal/dataset"
	"github.com/giantswarm/qa-judge/internal/judge"
	"github.com/giantswarm/qa-judge/internal/prompt"
)

// DefaultLimit is the number of pairs previewed (and judged) per run.
const DefaultLimit = 5

// ProgressFunc is called before each pair is processed.
type ProgressFunc func(id string, index, total int)

// Runner processes the leading pairs of a match result one at a time.
type Runner struct {
	strategy  Strategy
	template  *prompt.Template
	judge     judge.Judge
	judgeName string
	limit     int
	progress  ProgressFunc
}

// NewRunner creates a new runner. A limit of zero or less processes every pair.
func NewRunner(strategy Strategy, limit int) *Runner {
	return &Runner{
		strategy: strategy,
		limit:    limit,
	}
}

// SetTemplate sets the prompt template rendered for every processed pair.
func (r *Runner) SetTemplate(t *prompt.Template) {
	r.template = t
}

// SetJudge sets the judge consulted for every processed pair. name is
// recorded in the report, typically the judge model.
func (r *Runner) SetJudge(j judge.Judge, name string) {
	r.judge = j
	r.judgeName = name
}

// SetProgressFunc sets the progress callback.
func (r *Runner) SetProgressFunc(fn ProgressFunc) {
	r.progress = fn
}

// Run renders and judges the first pairs in order. The first error aborts
// the run and no partial report is returned.
func (r *Runner) Run(ctx context.Context, pairs []dataset.AnswerPair) (*Report, error) {
	if r.judge != nil && r.template == nil {
		return nil, errors.New("a prompt template is required when a judge is configured")
	}
	if r.template != nil {
		if v := r.template.Variant(); v != r.strategy.Variant() {
			slog.Warn("template placeholders do not match strategy",
				"template", r.template.Path,
				"template_variant", string(v),
				"strategy", r.strategy.Name(),
			)
		}
	}

	n := len(pairs)
	if r.limit > 0 && r.limit < n {
		n = r.limit
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Variant: r.strategy.Name(),
		Judge:   r.judgeName,
		Total:   len(pairs),
		Results: make([]Result, 0, n),
	}

	logger := slog.With("run_id", report.RunID)
	logger.Info("evaluation started", "pairs", len(pairs), "processing", n, "judge", r.judgeName)
	start := time.Now()

	for i, pair := range pairs[:n] {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluation cancelled after %d of %d pairs: %w", i, n, err)
		}

		if r.progress != nil {
			r.progress(pair.ID, i+1, n)
		}

		result := Result{AnswerPair: pair}
		if r.template != nil {
			result.Prompt = r.template.Render(r.strategy.Values(pair))
		}

		if r.judge != nil {
			verdict, err := r.judge.Judge(ctx, result.Prompt)
			if err != nil {
				return nil, fmt.Errorf("judge failed for %s: %w", pair.ID, err)
			}
			result.Verdict = verdict
			logger.Debug("pair judged", "qa_number", pair.ID)
		}

		report.Results = append(report.Results, result)
	}

	logger.Info("evaluation complete", "processed", len(report.Results), "duration", time.Since(start))
	return report, nil
}
