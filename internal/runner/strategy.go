package runner

import (
	"github.com/giantswarm/qa-judge/internal/dataset"
	"github.com/giantswarm/qa-judge/internal/prompt"
)

// Strategy decides which pair fields feed the prompt and how results are
// printed. There is one strategy per template variant.
type Strategy interface {
	// Name returns the strategy identifier (e.g. "qa").
	Name() string

	// Variant returns the template placeholder spelling the strategy expects.
	Variant() prompt.Variant

	// DefaultTemplate returns the template path used when none is given.
	DefaultTemplate() string

	// Values maps an answer pair onto template values.
	Values(pair dataset.AnswerPair) prompt.Values

	// FormatReport converts a report into human-readable text.
	FormatReport(report *Report) string
}

// GetStrategy returns a Strategy for the given name.
func GetStrategy(name string) (Strategy, error) {
	switch name {
	case "answer", "":
		return &AnswerStrategy{}, nil
	case "qa":
		return &QAStrategy{}, nil
	default:
		return nil, &UnsupportedStrategyError{Name: name}
	}
}

// StrategyNames lists the registered strategies.
func StrategyNames() []string {
	return []string{"answer", "qa"}
}

// UnsupportedStrategyError is returned when an unknown strategy is requested.
type UnsupportedStrategyError struct {
	Name string
}

func (e *UnsupportedStrategyError) Error() string {
	return "unsupported evaluation strategy: " + e.Name
}
