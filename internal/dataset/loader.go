// Package dataset loads JSONL record files and joins ground-truth and
// prediction records by QA_number.
package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/giantswarm/qa-judge/internal/evalerr"
)

// maxLineSize bounds a single JSONL line. Answers can be long model outputs.
const maxLineSize = 16 * 1024 * 1024

// LoadRecords reads a JSONL file into a RecordSet keyed by QA_number.
func LoadRecords(path string) (RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &evalerr.FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	return ReadRecords(f, path)
}

// ReadRecords parses JSONL from r. Blank lines are ignored, lines without an
// identifier are skipped, and a repeated identifier replaces the earlier record.
// name is only used in errors and logs.
func ReadRecords(r io.Reader, name string) (RecordSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := make(RecordSet)
	skipped := 0
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, &evalerr.ParseError{Path: name, Line: lineNum, Content: line, Err: err}
		}

		id := rec.ID()
		if id == "" {
			skipped++
			continue
		}
		records[id] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, &evalerr.FileAccessError{Path: name, Err: err}
	}

	slog.Debug("records loaded", "file", name, "records", len(records), "skipped", skipped)
	return records, nil
}

func parseRecord(line string) (Record, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return Record(obj), nil
}

// MatchRecordSets returns one AnswerPair per identifier present in both sets,
// in ascending order of identifier.
func MatchRecordSets(groundTruth, prediction RecordSet) []AnswerPair {
	common := make([]string, 0, min(len(groundTruth), len(prediction)))
	for id := range groundTruth {
		if _, ok := prediction[id]; ok {
			common = append(common, id)
		}
	}
	slices.Sort(common)

	pairs := make([]AnswerPair, 0, len(common))
	for _, id := range common {
		gt, pred := groundTruth[id], prediction[id]

		question := gt.Question()
		if question == "" {
			question = pred.Question()
		}

		pairs = append(pairs, AnswerPair{
			ID:          id,
			Question:    question,
			GroundTruth: gt.Answer(),
			Prediction:  pred.Answer(),
		})
	}
	return pairs
}

// GetAnswerPairs loads both files and matches them. A missing prediction file
// yields no pairs rather than an error; a missing ground-truth file fails.
func GetAnswerPairs(groundTruthPath, predictionPath string) ([]AnswerPair, error) {
	groundTruth, err := LoadRecords(groundTruthPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ground truth: %w", err)
	}

	prediction, err := LoadRecords(predictionPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load predictions: %w", err)
		}
		slog.Warn("prediction file not found, no pairs to match", "file", predictionPath)
		prediction = RecordSet{}
	}

	return MatchRecordSets(groundTruth, prediction), nil
}
