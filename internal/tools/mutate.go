package tools

import (
	"context"
	"fmt"

	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// ─── AddNodeTool ─────────────────────────────────────────────────────────────

// AddNodeTool handles the add_node MCP tool.
type AddNodeTool struct {
	store *tree.Store
	opts  Options
}

// NewAddNodeTool creates an AddNodeTool with the given tree store.
func NewAddNodeTool(store *tree.Store, opts Options) *AddNodeTool {
	return &AddNodeTool{store: store, opts: opts}
}

// Definition returns the MCP tool definition for add_node.
func (t *AddNodeTool) Definition() mcp.Tool {
	return mcp.NewTool("add_node",
		mcp.WithDescription(
			"Add a node to the decomposition tree. Omit parentId to create (or replace) the root. "+
				"A parentId that does not resolve is recorded as-is and leaves the node unreachable from the root.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Free-form text describing the node"),
		),
		mcp.WithString("nodeType",
			mcp.Required(),
			mcp.Description("One of: problem, cause, effect, solution, decision, option. Fixed at creation."),
		),
		mcp.WithString("parentId",
			mcp.Description("Id of the parent node. Omit for a root node."),
		),
		withMetadata(),
	)
}

// Handle processes the add_node tool call.
func (t *AddNodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := req.GetString("content", "")
	nodeType := req.GetString("nodeType", "")

	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}
	if nodeType == "" {
		return mcp.NewToolResultError("'nodeType' is required"), nil
	}
	if err := tree.ValidateType(tree.NodeType(nodeType)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n := t.store.Add(tree.AddParams{
		Content:  content,
		Type:     tree.NodeType(nodeType),
		ParentID: optionalStringArg(req, "parentId"),
		Meta:     metadataArg(req),
	})

	t.opts.record("add_node", n.ID, fmt.Sprintf("%s: %s", n.Type, n.Content))
	t.opts.trace(t.store)

	return respond("add_node", t.store, true, "", n), nil
}

// ─── RemoveNodeTool ──────────────────────────────────────────────────────────

// RemoveNodeTool handles the remove_node MCP tool.
type RemoveNodeTool struct {
	store *tree.Store
	opts  Options
}

// NewRemoveNodeTool creates a RemoveNodeTool.
func NewRemoveNodeTool(store *tree.Store, opts Options) *RemoveNodeTool {
	return &RemoveNodeTool{store: store, opts: opts}
}

// Definition returns the MCP tool definition for remove_node.
func (t *RemoveNodeTool) Definition() mcp.Tool {
	return mcp.NewTool("remove_node",
		mcp.WithDescription(
			"Remove a node and its entire subtree. Removing the root empties the tree.",
		),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Id of the node to remove"),
		),
	)
}

// Handle processes the remove_node tool call.
func (t *RemoveNodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("nodeId", "")
	if nodeID == "" {
		return mcp.NewToolResultError("'nodeId' is required"), nil
	}

	if !t.store.Remove(nodeID) {
		return respond("remove_node", t.store, false,
			fmt.Sprintf("node %q does not exist", nodeID), nil), nil
	}

	t.opts.record("remove_node", nodeID, "")
	t.opts.trace(t.store)

	return respond("remove_node", t.store, true, "", map[string]string{"removed": nodeID}), nil
}

// ─── MoveNodeTool ────────────────────────────────────────────────────────────

// MoveNodeTool handles the move_node MCP tool.
type MoveNodeTool struct {
	store *tree.Store
	opts  Options
}

// NewMoveNodeTool creates a MoveNodeTool.
func NewMoveNodeTool(store *tree.Store, opts Options) *MoveNodeTool {
	return &MoveNodeTool{store: store, opts: opts}
}

// Definition returns the MCP tool definition for move_node.
func (t *MoveNodeTool) Definition() mcp.Tool {
	return mcp.NewTool("move_node",
		mcp.WithDescription(
			"Move a node (and its subtree) under a new parent. Omit newParentId to make the node the root. "+
				"Depth is recomputed for the whole subtree. Moving a node under one of its own descendants is "+
				"not checked and will corrupt the tree — do not do it.",
		),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Id of the node to move"),
		),
		mcp.WithString("newParentId",
			mcp.Description("Id of the new parent. Omit to promote the node to root."),
		),
	)
}

// Handle processes the move_node tool call.
func (t *MoveNodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("nodeId", "")
	if nodeID == "" {
		return mcp.NewToolResultError("'nodeId' is required"), nil
	}

	newParentID := optionalStringArg(req, "newParentId")
	if !t.store.Move(nodeID, newParentID) {
		return respond("move_node", t.store, false,
			fmt.Sprintf("node %q or its new parent does not exist", nodeID), nil), nil
	}

	t.opts.record("move_node", nodeID, "")
	t.opts.trace(t.store)

	return respond("move_node", t.store, true, "", map[string]string{"moved": nodeID}), nil
}

// ─── UpdateNodeTool ──────────────────────────────────────────────────────────

// UpdateNodeTool handles the update_node MCP tool.
type UpdateNodeTool struct {
	store *tree.Store
	opts  Options
}

// NewUpdateNodeTool creates an UpdateNodeTool.
func NewUpdateNodeTool(store *tree.Store, opts Options) *UpdateNodeTool {
	return &UpdateNodeTool{store: store, opts: opts}
}

// Definition returns the MCP tool definition for update_node.
func (t *UpdateNodeTool) Definition() mcp.Tool {
	return mcp.NewTool("update_node",
		mcp.WithDescription(
			"Replace a node's content and optionally its metadata. Supplying metadata replaces all six "+
				"optional fields at once — fields omitted from the metadata object are cleared.",
		),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Id of the node to update"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("New content text"),
		),
		withMetadata(),
	)
}

// Handle processes the update_node tool call.
func (t *UpdateNodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("nodeId", "")
	content := req.GetString("content", "")
	if nodeID == "" {
		return mcp.NewToolResultError("'nodeId' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	if !t.store.Update(nodeID, content, metadataArg(req)) {
		return respond("update_node", t.store, false,
			fmt.Sprintf("node %q does not exist", nodeID), nil), nil
	}

	t.opts.record("update_node", nodeID, content)
	t.opts.trace(t.store)

	n, _ := t.store.Get(nodeID)
	return respond("update_node", t.store, true, "", n), nil
}
