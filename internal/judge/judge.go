// Package judge renders verdicts on answer pairs using an external LLM.
package judge

import (
	"context"
	"log/slog"

	"github.com/giantswarm/qa-judge/internal/llm"
)

const (
	// DefaultModel is the judge model used when none is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultMaxTokens bounds the length of a verdict.
	DefaultMaxTokens = 128
)

// Judge returns a free-text verdict for a finished prompt.
type Judge interface {
	Judge(ctx context.Context, prompt string) (string, error)
}

// Func adapts an ordinary function to the Judge interface.
type Func func(ctx context.Context, prompt string) (string, error)

// Judge calls f(ctx, prompt).
func (f Func) Judge(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Config holds judge configuration.
type Config struct {
	Model         string
	SystemMessage string
	MaxTokens     int
}

// LLMJudge sends each prompt as the user turn of a two-message chat with
// deterministic sampling.
type LLMJudge struct {
	client llm.Client
	config Config
}

// NewLLMJudge creates a new LLMJudge.
func NewLLMJudge(client llm.Client, config Config) *LLMJudge {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.SystemMessage == "" {
		config.SystemMessage = DefaultSystemMessage
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	return &LLMJudge{client: client, config: config}
}

// Model returns the configured judge model.
func (j *LLMJudge) Model() string {
	return j.config.Model
}

// Judge sends prompt to the model and returns its reply. Errors from the
// client are returned unchanged so callers can match the evalerr kinds.
func (j *LLMJudge) Judge(ctx context.Context, prompt string) (string, error) {
	slog.Debug("calling judge", "model", j.config.Model, "prompt_bytes", len(prompt))

	resp, err := j.client.ChatCompletion(ctx, llm.ChatRequest{
		Model:         j.config.Model,
		SystemMessage: j.config.SystemMessage,
		UserMessage:   prompt,
		Temperature:   llm.Float64Ptr(0),
		MaxTokens:     j.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}
