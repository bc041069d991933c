package server

import (
	"github.com/giantswarm/qa-judge/internal/config"
	"github.com/giantswarm/qa-judge/internal/judge"
)

// JudgeFactory builds a judge for a resolved configuration.
type JudgeFactory func(cfg config.Config) (judge.Judge, string)

// ServerContext holds shared dependencies for MCP tool handlers.
type ServerContext struct {
	Config   config.Config
	NewJudge JudgeFactory // nil disables the judge tool
	DataDir  string       // all input paths are resolved inside this directory
}
