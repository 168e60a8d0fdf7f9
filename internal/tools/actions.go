package tools

import (
	"context"

	"github.com/decampo/arbor/internal/analysis"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// SuggestActionsTool handles the suggest_actions MCP tool.
type SuggestActionsTool struct {
	store *tree.Store
}

// NewSuggestActionsTool creates a SuggestActionsTool.
func NewSuggestActionsTool(store *tree.Store) *SuggestActionsTool {
	return &SuggestActionsTool{store: store}
}

// Definition returns the MCP tool definition for suggest_actions.
func (t *SuggestActionsTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_actions",
		mcp.WithDescription(
			"Score how actionable a solution node's text is (1-5): concrete verb, measurable target, "+
				"time bound. Non-solution nodes score 0.",
		),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Id of the solution node to score"),
		),
	)
}

// Handle processes the suggest_actions tool call.
func (t *SuggestActionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("nodeId", "")
	if nodeID == "" {
		return mcp.NewToolResultError("'nodeId' is required"), nil
	}

	result := analysis.Actionability(t.store, nodeID)
	_, exists := t.store.Get(nodeID)
	return respond("suggest_actions", t.store, exists, notFoundMsg(exists, nodeID), result), nil
}
