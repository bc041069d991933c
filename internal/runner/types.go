package runner

import "github.com/giantswarm/qa-judge/internal/dataset"

// Result is one previewed answer pair with its prompt and verdict.
type Result struct {
	dataset.AnswerPair `yaml:",inline"`

	Prompt  string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Verdict string `json:"verdict,omitempty" yaml:"verdict,omitempty"`
}

// Report is the outcome of a single evaluation pass.
type Report struct {
	RunID   string   `json:"run_id" yaml:"run_id"`
	Variant string   `json:"variant" yaml:"variant"`
	Judge   string   `json:"judge,omitempty" yaml:"judge,omitempty"`
	Total   int      `json:"total_pairs" yaml:"total_pairs"`
	Results []Result `json:"results" yaml:"results"`
}
