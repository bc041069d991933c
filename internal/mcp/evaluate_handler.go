package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/qa-judge/internal/dataset"
	"github.com/giantswarm/qa-judge/internal/prompt"
	"github.com/giantswarm/qa-judge/internal/runner"
	"github.com/giantswarm/qa-judge/internal/server"
)

func handleListVariants(_ context.Context, _ mcp.CallToolRequest, _ *server.ServerContext) (*mcp.CallToolResult, error) {
	type variantInfo struct {
		Name            string   `json:"name"`
		Placeholders    []string `json:"placeholders"`
		DefaultTemplate string   `json:"default_template"`
	}

	var variants []variantInfo
	for _, name := range runner.StrategyNames() {
		s, err := runner.GetStrategy(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		variants = append(variants, variantInfo{
			Name:            s.Name(),
			Placeholders:    s.Variant().Tokens(),
			DefaultTemplate: s.DefaultTemplate(),
		})
	}

	return jsonResult(variants)
}

func handleListAnswerPairs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return evaluate(ctx, request, sc, false)
}

func handleJudgeAnswerPairs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if sc.NewJudge == nil {
		return mcp.NewToolResultError("judge is not configured"), nil
	}
	return evaluate(ctx, request, sc, true)
}

func evaluate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, withJudge bool) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	gtArg, _ := args["ground_truth"].(string)
	groundTruth, err := resolveInputPath(sc.DataDir, "ground_truth", gtArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	predArg, _ := args["prediction"].(string)
	prediction, err := resolveInputPath(sc.DataDir, "prediction", predArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	variant, _ := args["variant"].(string)
	if variant == "" && withJudge {
		variant = "qa"
	}
	strategy, err := runner.GetStrategy(variant)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit := runner.DefaultLimit
	if l, ok := args["limit"].(float64); ok && l >= 0 {
		limit = int(l)
	}

	pairs, err := dataset.GetAnswerPairs(groundTruth, prediction)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to match answer pairs: %v", err)), nil
	}

	r := runner.NewRunner(strategy, limit)

	templateArg, _ := args["template"].(string)
	if strings.TrimSpace(templateArg) == "" && withJudge {
		templateArg = strategy.DefaultTemplate()
	}
	if strings.TrimSpace(templateArg) != "" {
		templatePath, err := resolveInputPath(sc.DataDir, "template", templateArg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tmpl, err := prompt.LoadTemplate(templatePath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load template: %v", err)), nil
		}
		r.SetTemplate(tmpl)
	}

	if withJudge {
		cfg := sc.Config
		if model, ok := args["model"].(string); ok && model != "" {
			cfg.Model = model
		}
		j, name := sc.NewJudge(cfg)
		r.SetJudge(j, name)
	}

	rep, err := r.Run(ctx, pairs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	return jsonResult(rep)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
