package dataset

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/qa-judge/internal/evalerr"
	"github.com/giantswarm/qa-judge/internal/testutil"
)

func TestGetAnswerPairsScenario(t *testing.T) {
	gt := testutil.WriteJSONL(t, t.TempDir(), "ground_truth.jsonl",
		`{"QA_number":"Q1","Answer":"Paris"}`,
		`{"QA_number":"Q2","Answer":"42"}`,
	)
	pred := testutil.WriteJSONL(t, t.TempDir(), "prediction.jsonl",
		`{"QA_number":"Q1","Answer":"paris"}`,
		`{"QA_number":"Q3","Answer":"7"}`,
	)

	pairs, err := GetAnswerPairs(gt, pred)
	require.NoError(t, err)
	assert.Equal(t, []AnswerPair{
		{ID: "Q1", GroundTruth: "Paris", Prediction: "paris"},
	}, pairs)
}

func TestGetAnswerPairsMissingPredictionFile(t *testing.T) {
	gt := testutil.WriteJSONL(t, t.TempDir(), "ground_truth.jsonl", `{"QA_number":"Q1","Answer":"Paris"}`)

	pairs, err := GetAnswerPairs(gt, filepath.Join(t.TempDir(), "missing.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestGetAnswerPairsMissingGroundTruthFile(t *testing.T) {
	pred := testutil.WriteJSONL(t, t.TempDir(), "prediction.jsonl", `{"QA_number":"Q1","Answer":"Paris"}`)

	_, err := GetAnswerPairs(filepath.Join(t.TempDir(), "missing.jsonl"), pred)
	require.Error(t, err)

	var accessErr *evalerr.FileAccessError
	assert.True(t, errors.As(err, &accessErr))
}

func TestGetAnswerPairsMalformedPrediction(t *testing.T) {
	gt := testutil.WriteJSONL(t, t.TempDir(), "ground_truth.jsonl", `{"QA_number":"Q1","Answer":"Paris"}`)
	pred := testutil.WriteJSONL(t, t.TempDir(), "prediction.jsonl", `{"QA_number":"Q1",`)

	pairs, err := GetAnswerPairs(gt, pred)
	require.Error(t, err)
	assert.Nil(t, pairs)

	var parseErr *evalerr.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestMatchRecordSetsIntersectionSorted(t *testing.T) {
	groundTruth := RecordSet{
		"Q10": {"QA_number": "Q10", "Answer": "ten"},
		"Q2":  {"QA_number": "Q2", "Answer": "two"},
		"Q1":  {"QA_number": "Q1", "Answer": "one"},
		"Q5":  {"QA_number": "Q5", "Answer": "five"},
	}
	prediction := RecordSet{
		"Q5":  {"QA_number": "Q5", "Answer": "5"},
		"Q1":  {"QA_number": "Q1", "Answer": "1"},
		"Q10": {"QA_number": "Q10", "Answer": "10"},
		"Q99": {"QA_number": "Q99", "Answer": "99"},
	}

	pairs := MatchRecordSets(groundTruth, prediction)

	ids := make([]string, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, p.ID)
	}
	// Lexical, not numeric, ordering.
	assert.Equal(t, []string{"Q1", "Q10", "Q5"}, ids)
	assert.True(t, slices.IsSorted(ids))
	assert.Equal(t, "ten", pairs[1].GroundTruth)
	assert.Equal(t, "10", pairs[1].Prediction)
}

func TestMatchRecordSetsEmptyIntersection(t *testing.T) {
	pairs := MatchRecordSets(
		RecordSet{"Q1": {"QA_number": "Q1"}},
		RecordSet{"Q2": {"QA_number": "Q2"}},
	)
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestMatchRecordSetsDefaultsMissingFields(t *testing.T) {
	pairs := MatchRecordSets(
		RecordSet{"Q1": {"QA_number": "Q1"}},
		RecordSet{"Q1": {"QA_number": "Q1", "Question": "From prediction?"}},
	)
	require.Len(t, pairs, 1)
	assert.Equal(t, "", pairs[0].GroundTruth)
	assert.Equal(t, "", pairs[0].Prediction)
	assert.Equal(t, "From prediction?", pairs[0].Question)
}

func TestMatchRecordSetsPrefersGroundTruthQuestion(t *testing.T) {
	pairs := MatchRecordSets(
		RecordSet{"Q1": {"QA_number": "Q1", "Question": "reference"}},
		RecordSet{"Q1": {"QA_number": "Q1", "Question": "candidate"}},
	)
	require.Len(t, pairs, 1)
	assert.Equal(t, "reference", pairs[0].Question)
}
