package runner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/qa-judge/internal/dataset"
	"github.com/giantswarm/qa-judge/internal/evalerr"
	"github.com/giantswarm/qa-judge/internal/judge"
	"github.com/giantswarm/qa-judge/internal/prompt"
	"github.com/giantswarm/qa-judge/internal/testutil"
)

func makePairs(n int) []dataset.AnswerPair {
	pairs := make([]dataset.AnswerPair, 0, n)
	for i := 1; i <= n; i++ {
		pairs = append(pairs, dataset.AnswerPair{
			ID:          fmt.Sprintf("Q%02d", i),
			Question:    fmt.Sprintf("question %d", i),
			GroundTruth: fmt.Sprintf("truth %d", i),
			Prediction:  fmt.Sprintf("guess %d", i),
		})
	}
	return pairs
}

// recordingJudge echoes prompts back and counts calls.
type recordingJudge struct {
	prompts []string
}

func (j *recordingJudge) Judge(_ context.Context, p string) (string, error) {
	j.prompts = append(j.prompts, p)
	return fmt.Sprintf("verdict %d", len(j.prompts)), nil
}

func TestRunnerPreviewWithoutJudge(t *testing.T) {
	r := NewRunner(&AnswerStrategy{}, DefaultLimit)

	report, err := r.Run(context.Background(), makePairs(8))
	require.NoError(t, err)

	assert.Equal(t, 8, report.Total)
	assert.Len(t, report.Results, 5)
	assert.Equal(t, "Q01", report.Results[0].ID)
	assert.Equal(t, "Q05", report.Results[4].ID)
	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Results[0].Prompt)
	assert.Empty(t, report.Results[0].Verdict)
}

func TestRunnerZeroLimitProcessesAll(t *testing.T) {
	r := NewRunner(&AnswerStrategy{}, 0)

	report, err := r.Run(context.Background(), makePairs(8))
	require.NoError(t, err)
	assert.Len(t, report.Results, 8)
}

func TestRunnerEmptyPairs(t *testing.T) {
	r := NewRunner(&QAStrategy{}, DefaultLimit)
	r.SetTemplate(prompt.NewTemplate("$QUESTION$ $GROUND_TRUTH$ $PREDICTION$"))
	j := &recordingJudge{}
	r.SetJudge(j, "judge-model")

	report, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.Results)
	assert.Empty(t, j.prompts)
}

func TestRunnerJudgesLeadingPairsInOrder(t *testing.T) {
	r := NewRunner(&QAStrategy{}, 3)
	r.SetTemplate(prompt.NewTemplate("Q=$QUESTION$ GT=$GROUND_TRUTH$ P=$PREDICTION$"))
	j := &recordingJudge{}
	r.SetJudge(j, "judge-model")

	report, err := r.Run(context.Background(), makePairs(10))
	require.NoError(t, err)

	assert.Equal(t, "judge-model", report.Judge)
	require.Len(t, report.Results, 3)
	assert.Equal(t, []string{
		"Q=question 1 GT=truth 1 P=guess 1",
		"Q=question 2 GT=truth 2 P=guess 2",
		"Q=question 3 GT=truth 3 P=guess 3",
	}, j.prompts)
	assert.Equal(t, "verdict 2", report.Results[1].Verdict)
	assert.Equal(t, j.prompts[1], report.Results[1].Prompt)
}

func TestRunnerWithLLMJudge(t *testing.T) {
	client := &testutil.MockLLMClient{DefaultResponse: "CORRECT"}

	r := NewRunner(&AnswerStrategy{}, DefaultLimit)
	r.SetTemplate(prompt.NewTemplate("$ground_truth$ vs $prediction$"))
	r.SetJudge(judge.NewLLMJudge(client, judge.Config{}), judge.DefaultModel)

	report, err := r.Run(context.Background(), makePairs(2))
	require.NoError(t, err)
	assert.Equal(t, 2, client.Calls)
	assert.Equal(t, "truth 2 vs guess 2", client.LastRequest().UserMessage)
	assert.Equal(t, "CORRECT", report.Results[1].Verdict)
}

func TestRunnerAbortsOnJudgeError(t *testing.T) {
	calls := 0
	failing := judge.Func(func(_ context.Context, _ string) (string, error) {
		calls++
		if calls == 2 {
			return "", &evalerr.ServiceError{StatusCode: 429, Err: assert.AnError}
		}
		return "ok", nil
	})

	r := NewRunner(&AnswerStrategy{}, DefaultLimit)
	r.SetTemplate(prompt.NewTemplate("$ground_truth$/$prediction$"))
	r.SetJudge(failing, "fake")

	report, err := r.Run(context.Background(), makePairs(5))
	require.Error(t, err)
	assert.Nil(t, report, "partial results are discarded")
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "Q02")

	var svcErr *evalerr.ServiceError
	assert.True(t, errors.As(err, &svcErr))
}

func TestRunnerJudgeRequiresTemplate(t *testing.T) {
	r := NewRunner(&AnswerStrategy{}, DefaultLimit)
	r.SetJudge(&recordingJudge{}, "fake")

	_, err := r.Run(context.Background(), makePairs(1))
	assert.Error(t, err)
}

func TestRunnerProgressCallback(t *testing.T) {
	r := NewRunner(&AnswerStrategy{}, 2)

	var ids []string
	var totals []int
	r.SetProgressFunc(func(id string, idx, total int) {
		ids = append(ids, id)
		totals = append(totals, total)
	})

	_, err := r.Run(context.Background(), makePairs(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"Q01", "Q02"}, ids)
	assert.Equal(t, []int{2, 2}, totals)
}

func TestRunnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(&AnswerStrategy{}, DefaultLimit)
	_, err := r.Run(ctx, makePairs(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
