package cmd

import (
	"github.com/giantswarm/qa-judge/internal/config"
	"github.com/giantswarm/qa-judge/internal/judge"
	"github.com/giantswarm/qa-judge/internal/llm"
)

// newJudgeFromConfig creates an LLM judge from the resolved configuration.
// The credential is checked when the judge is first called, not here.
func newJudgeFromConfig(cfg config.Config) *judge.LLMJudge {
	client := llm.NewOpenAIClient(
		llm.WithBaseURL(cfg.BaseURL),
		llm.WithAPIKey(cfg.APIKey),
	)
	return judge.NewLLMJudge(client, judge.Config{Model: cfg.Model})
}
