// Package prompt renders judge prompts from plain-text templates containing
// literal placeholder tokens.
package prompt

import (
	"os"
	"strings"

	"github.com/giantswarm/qa-judge/internal/evalerr"
)

// Placeholder tokens recognized in templates.
const (
	TokenGroundTruth = "$ground_truth$"
	TokenPrediction  = "$prediction$"

	TokenQAQuestion    = "$QUESTION$"
	TokenQAGroundTruth = "$GROUND_TRUTH$"
	TokenQAPrediction  = "$PREDICTION$"
)

// Variant identifies which placeholder spelling a template uses.
type Variant string

const (
	// VariantAnswer compares answers only: $ground_truth$ and $prediction$.
	VariantAnswer Variant = "answer"
	// VariantQA includes the question: $QUESTION$, $GROUND_TRUTH$ and $PREDICTION$.
	VariantQA Variant = "qa"
	// VariantUnknown is reported for templates without any recognized token.
	VariantUnknown Variant = ""
)

// Tokens returns the placeholder tokens belonging to the variant.
func (v Variant) Tokens() []string {
	switch v {
	case VariantAnswer:
		return []string{TokenGroundTruth, TokenPrediction}
	case VariantQA:
		return []string{TokenQAQuestion, TokenQAGroundTruth, TokenQAPrediction}
	default:
		return nil
	}
}

// Values are the run-time strings substituted into a template.
type Values struct {
	Question    string
	GroundTruth string
	Prediction  string
}

// Template is a loaded prompt template.
type Template struct {
	Path string
	text string
}

// LoadTemplate reads a template file from disk.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &evalerr.FileAccessError{Path: path, Err: err}
	}
	return &Template{Path: path, text: string(data)}, nil
}

// NewTemplate wraps template text that did not come from a file.
func NewTemplate(text string) *Template {
	return &Template{text: text}
}

// Text returns the raw template text.
func (t *Template) Text() string {
	return t.text
}

// Variant reports the placeholder spelling the template uses.
func (t *Template) Variant() Variant {
	return DetectVariant(t.text)
}

// Placeholders lists the recognized tokens present in the template.
func (t *Template) Placeholders() []string {
	var found []string
	for _, v := range []Variant{VariantAnswer, VariantQA} {
		for _, tok := range v.Tokens() {
			if strings.Contains(t.text, tok) {
				found = append(found, tok)
			}
		}
	}
	return found
}

// Render substitutes every recognized token in a single left-to-right pass.
// Substituted values are never rescanned, so a value that happens to contain
// a token is inserted verbatim.
func (t *Template) Render(v Values) string {
	r := strings.NewReplacer(
		TokenGroundTruth, v.GroundTruth,
		TokenPrediction, v.Prediction,
		TokenQAQuestion, v.Question,
		TokenQAGroundTruth, v.GroundTruth,
		TokenQAPrediction, v.Prediction,
	)
	return r.Replace(t.text)
}

// Build loads the template at path and renders it with v.
func Build(path string, v Values) (string, error) {
	t, err := LoadTemplate(path)
	if err != nil {
		return "", err
	}
	return t.Render(v), nil
}

// DetectVariant returns the variant whose tokens appear in text. When both
// spellings are present the question-aware variant wins.
func DetectVariant(text string) Variant {
	for _, v := range []Variant{VariantQA, VariantAnswer} {
		for _, tok := range v.Tokens() {
			if strings.Contains(text, tok) {
				return v
			}
		}
	}
	return VariantUnknown
}
