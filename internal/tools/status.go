package tools

import (
	"context"

	"github.com/decampo/arbor/internal/guidance"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// ─── GetStatusTool ───────────────────────────────────────────────────────────

// GetStatusTool handles the get_status MCP tool.
type GetStatusTool struct {
	store *tree.Store
}

// NewGetStatusTool creates a GetStatusTool.
func NewGetStatusTool(store *tree.Store) *GetStatusTool {
	return &GetStatusTool{store: store}
}

// Definition returns the MCP tool definition for get_status.
func (t *GetStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("get_status",
		mcp.WithDescription(
			"Report the current workflow state (empty, problem_defined, causes_identified, "+
				"solutions_developed) with guidance text and ranked next-step suggestions.",
		),
	)
}

// Handle processes the get_status tool call.
func (t *GetStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond("get_status", t.store, true, "", guidance.Evaluate(t.store)), nil
}

// ─── NextStepsTool ───────────────────────────────────────────────────────────

// NextStepsTool handles the next_steps MCP tool.
type NextStepsTool struct {
	store *tree.Store
}

// NewNextStepsTool creates a NextStepsTool.
func NewNextStepsTool(store *tree.Store) *NextStepsTool {
	return &NextStepsTool{store: store}
}

// Definition returns the MCP tool definition for next_steps.
func (t *NextStepsTool) Definition() mcp.Tool {
	return mcp.NewTool("next_steps",
		mcp.WithDescription(
			"Recommend one concrete next operation for the current state, with a filled-in parameter "+
				"template and rationale, plus the fixed five-step decomposition workflow.",
		),
	)
}

// Handle processes the next_steps tool call.
func (t *NextStepsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond("next_steps", t.store, true, "", guidance.Next(t.store)), nil
}

// ─── QuickAnalysisTool ───────────────────────────────────────────────────────

// QuickAnalysisTool handles the quick_analysis MCP tool.
type QuickAnalysisTool struct {
	store *tree.Store
}

// NewQuickAnalysisTool creates a QuickAnalysisTool.
func NewQuickAnalysisTool(store *tree.Store) *QuickAnalysisTool {
	return &QuickAnalysisTool{store: store}
}

// Definition returns the MCP tool definition for quick_analysis.
func (t *QuickAnalysisTool) Definition() mcp.Tool {
	return mcp.NewTool("quick_analysis",
		mcp.WithDescription(
			"Condensed summary: key findings from MECE/gap/feasibility checks, at most three "+
				"recommendations, and one guidance sentence with the top suggested operation.",
		),
	)
}

// Handle processes the quick_analysis tool call.
func (t *QuickAnalysisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond("quick_analysis", t.store, true, "", guidance.Quick(t.store)), nil
}
