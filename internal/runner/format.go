package runner

import (
	"fmt"
	"strings"

	"github.com/giantswarm/qa-judge/internal/dataset"
	"github.com/giantswarm/qa-judge/internal/prompt"
)

var separator = strings.Repeat("-", 80)

// AnswerStrategy compares ground truth and prediction without the question.
type AnswerStrategy struct{}

func (s *AnswerStrategy) Name() string {
	return "answer"
}

func (s *AnswerStrategy) Variant() prompt.Variant {
	return prompt.VariantAnswer
}

func (s *AnswerStrategy) DefaultTemplate() string {
	return "PROMPT/prompt_template.txt"
}

func (s *AnswerStrategy) Values(pair dataset.AnswerPair) prompt.Values {
	return prompt.Values{
		GroundTruth: pair.GroundTruth,
		Prediction:  pair.Prediction,
	}
}

func (s *AnswerStrategy) FormatReport(report *Report) string {
	return formatReport(report, false)
}

// QAStrategy also passes the question to the prompt and prints it.
type QAStrategy struct{}

func (s *QAStrategy) Name() string {
	return "qa"
}

func (s *QAStrategy) Variant() prompt.Variant {
	return prompt.VariantQA
}

func (s *QAStrategy) DefaultTemplate() string {
	return "PROMPT/judge_prompt_template.txt"
}

func (s *QAStrategy) Values(pair dataset.AnswerPair) prompt.Values {
	return prompt.Values{
		Question:    pair.Question,
		GroundTruth: pair.GroundTruth,
		Prediction:  pair.Prediction,
	}
}

func (s *QAStrategy) FormatReport(report *Report) string {
	return formatReport(report, true)
}

func formatReport(report *Report, withQuestion bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Answer pairs found: %d\n", report.Total)
	fmt.Fprintln(&b, separator)
	for _, r := range report.Results {
		fmt.Fprintf(&b, "QA Number: %s\n", r.ID)
		if withQuestion {
			fmt.Fprintf(&b, "Question: %s\n", r.Question)
		}
		fmt.Fprintf(&b, "Ground Truth: %s\n", r.GroundTruth)
		fmt.Fprintf(&b, "Prediction:   %s\n", r.Prediction)
		switch {
		case report.Judge != "":
			fmt.Fprintf(&b, "Judge: %s\n", r.Verdict)
		case r.Prompt != "":
			fmt.Fprintf(&b, "Prompt:\n%s\n", r.Prompt)
		}
		fmt.Fprintln(&b, separator)
	}
	return b.String()
}
