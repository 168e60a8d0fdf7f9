package tools

import (
	"context"

	"github.com/decampo/arbor/internal/analysis"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeTreeTool handles the analyze_tree MCP tool.
type AnalyzeTreeTool struct {
	store *tree.Store
}

// NewAnalyzeTreeTool creates an AnalyzeTreeTool.
func NewAnalyzeTreeTool(store *tree.Store) *AnalyzeTreeTool {
	return &AnalyzeTreeTool{store: store}
}

// Definition returns the MCP tool definition for analyze_tree.
func (t *AnalyzeTreeTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_tree",
		mcp.WithDescription(
			"Run the full analysis: MECE validation (sibling overlap, decomposition breadth), "+
				"gap analysis (problems without causes/solutions), feasibility assessment of solutions, "+
				"and synthesized recommendations.",
		),
	)
}

// Handle processes the analyze_tree tool call.
func (t *AnalyzeTreeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond("analyze_tree", t.store, true, "", analysis.Analyze(t.store)), nil
}
