package tools

import (
	"context"

	"github.com/decampo/arbor/internal/render"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// VisualizeTreeTool handles the visualize_tree MCP tool.
type VisualizeTreeTool struct {
	store *tree.Store
}

// NewVisualizeTreeTool creates a VisualizeTreeTool.
func NewVisualizeTreeTool(store *tree.Store) *VisualizeTreeTool {
	return &VisualizeTreeTool{store: store}
}

// Definition returns the MCP tool definition for visualize_tree.
func (t *VisualizeTreeTool) Definition() mcp.Tool {
	return mcp.NewTool("visualize_tree",
		mcp.WithDescription(
			"Render the tree as indented text with branch connectors and type symbols. "+
				"Collapsed nodes show an elision marker instead of their subtree.",
		),
	)
}

// Handle processes the visualize_tree tool call.
func (t *VisualizeTreeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return respond("visualize_tree", t.store, true, "",
		map[string]string{"visualization": render.Tree(t.store)}), nil
}
