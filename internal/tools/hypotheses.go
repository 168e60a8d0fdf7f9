package tools

import (
	"context"

	"github.com/decampo/arbor/internal/analysis"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// GenerateHypothesesTool handles the generate_hypotheses MCP tool.
type GenerateHypothesesTool struct {
	store *tree.Store
}

// NewGenerateHypothesesTool creates a GenerateHypothesesTool.
func NewGenerateHypothesesTool(store *tree.Store) *GenerateHypothesesTool {
	return &GenerateHypothesesTool{store: store}
}

// Definition returns the MCP tool definition for generate_hypotheses.
func (t *GenerateHypothesesTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_hypotheses",
		mcp.WithDescription(
			"Generate templated hypotheses, testing methods, and assumptions for a node, keyed on its type. "+
				"These are exploratory prompts, not inferences — no claim of correctness is made.",
		),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Id of the node to generate hypotheses for"),
		),
	)
}

// Handle processes the generate_hypotheses tool call.
func (t *GenerateHypothesesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("nodeId", "")
	if nodeID == "" {
		return mcp.NewToolResultError("'nodeId' is required"), nil
	}

	result := analysis.Hypotheses(t.store, nodeID)
	_, exists := t.store.Get(nodeID)
	return respond("generate_hypotheses", t.store, exists, notFoundMsg(exists, nodeID), result), nil
}

// notFoundMsg returns a descriptive soft-failure message, or "" when
// the node exists.
func notFoundMsg(exists bool, nodeID string) string {
	if exists {
		return ""
	}
	return "node \"" + nodeID + "\" does not exist"
}
