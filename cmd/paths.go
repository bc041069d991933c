package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Default input locations of the two entry points. The ground-truth names
// differ between them; both are kept as shipped.
const (
	defaultPairsGroundTruth = "JUDGE/ground_trush.jsonl"
	defaultJudgeGroundTruth = "JUDGE/ground_truth.jsonl"
	defaultPrediction       = "JUDGE/predict_dep_qwen_3B.jsonl"
)

var groundTruthSpellings = map[string]string{
	"ground_trush.jsonl": "ground_truth.jsonl",
	"ground_truth.jsonl": "ground_trush.jsonl",
}

// warnGroundTruthSpelling logs a warning when path is missing but the
// alternative spelling of the ground-truth file exists next to it. The path
// itself is left unchanged.
func warnGroundTruthSpelling(path string) {
	if _, err := os.Stat(path); err == nil {
		return
	}
	alt, ok := groundTruthSpellings[filepath.Base(path)]
	if !ok {
		return
	}
	altPath := filepath.Join(filepath.Dir(path), alt)
	if _, err := os.Stat(altPath); err == nil {
		slog.Warn("ground truth file not found, but a similarly named file exists; pass --ground-truth to use it",
			"path", path,
			"candidate", altPath,
		)
	}
}
