package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/qa-judge/internal/server"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// list_variants
	variantsTool := mcp.NewTool("list_variants",
		mcp.WithDescription("List prompt template variants and the placeholders each one substitutes"),
	)
	s.AddTool(variantsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListVariants(ctx, request, sc)
	})

	// list_answer_pairs
	pairsTool := mcp.NewTool("list_answer_pairs", evaluationOptions(
		"Join a ground-truth and a prediction JSONL file on QA_number and return the leading answer pairs",
	)...)
	s.AddTool(pairsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListAnswerPairs(ctx, request, sc)
	})

	// judge_answer_pairs
	judgeTool := mcp.NewTool("judge_answer_pairs", evaluationOptions(
		"Render the prompt template for the leading answer pairs and ask an LLM judge for a verdict on each, one at a time",
		mcp.WithString("model",
			mcp.Description("Judge model name (default: from server configuration)"),
		),
	)...)
	s.AddTool(judgeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleJudgeAnswerPairs(ctx, request, sc)
	})

	return nil
}

// evaluationOptions returns the options shared by the pair tools.
func evaluationOptions(description string, extra ...mcp.ToolOption) []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString("ground_truth",
			mcp.Required(),
			mcp.Description("Ground-truth JSONL file, relative to the server data directory"),
		),
		mcp.WithString("prediction",
			mcp.Required(),
			mcp.Description("Prediction JSONL file, relative to the server data directory"),
		),
		mcp.WithString("variant",
			mcp.Description("Template variant: 'answer' or 'qa' (default: 'answer' for listing, 'qa' for judging)"),
		),
		mcp.WithString("template",
			mcp.Description("Prompt template file, relative to the server data directory"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of leading pairs to return (default: 5, 0 for all)"),
		),
	}
	return append(opts, extra...)
}
