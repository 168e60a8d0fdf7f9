// Package tools provides the MCP tool handlers for the decomposition
// tree operations.
//
// Each handler follows the same pattern:
// - A struct with dependencies (tree.Store, Options) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Error handling is deliberately asymmetric: a missing required field is
// a validation error (mcp.NewToolResultError, raised before any state is
// touched), while an unknown nodeId is a soft condition — the handler
// returns a normal response envelope with success=false, never an error.
package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decampo/arbor/internal/journal"
	"github.com/decampo/arbor/internal/render"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/mcp"
)

// envelope is the structured result every tool returns: an echo of the
// operation name, a timestamp, a snapshot of basic tree counters, a
// success flag, and the operation-specific payload.
type envelope struct {
	Operation  string `json:"operation"`
	Timestamp  string `json:"timestamp"`
	Success    bool   `json:"success"`
	TotalNodes int    `json:"totalNodes"`
	RootNodeID string `json:"rootNodeId,omitempty"`
	HasRoot    bool   `json:"hasRoot"`
	Result     any    `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// respond builds the response envelope around the payload and tree
// counter snapshot, serialized as JSON in an MCP text result. A false
// success marks a soft not-found condition — it is still a normal
// response, not a tool error.
func respond(op string, s *tree.Store, success bool, errMsg string, result any) *mcp.CallToolResult {
	env := envelope{
		Operation:  op,
		Timestamp:  timeNow().UTC().Format(time.RFC3339),
		Success:    success,
		TotalNodes: s.Len(),
		RootNodeID: s.RootID(),
		HasRoot:    s.RootID() != "",
		Result:     result,
		Error:      errMsg,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode response: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// Options carries the cross-cutting dependencies shared by the mutation
// tools: the optional operation journal and the stderr tree echo.
type Options struct {
	Journal *journal.Journal
	Quiet   bool
	Trace   io.Writer // defaults to os.Stderr when nil
}

// record appends an operation to the journal, logging (not failing) on
// error. Nil-safe when the journal is disabled.
func (o Options) record(op, nodeID, detail string) {
	if err := o.Journal.Record(op, nodeID, detail); err != nil {
		log.Printf("WARNING: journal write: %v", err)
	}
}

// trace echoes the rendered tree to the side channel after a successful
// mutation, unless suppressed. It never affects the returned payload.
func (o Options) trace(s *tree.Store) {
	if o.Quiet {
		return
	}
	w := o.Trace
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, render.Tree(s))
}

// optionalStringArg returns a pointer to the string argument, or nil
// when the key is absent or empty.
func optionalStringArg(req mcp.CallToolRequest, key string) *string {
	v := req.GetString(key, "")
	if v == "" {
		return nil
	}
	return &v
}

// metadataArg extracts the optional metadata object from a request.
// It returns nil when no metadata was supplied, so callers can
// distinguish "no metadata" (leave fields untouched) from "metadata
// supplied" (full replace of all six fields).
func metadataArg(req mcp.CallToolRequest) *tree.Metadata {
	raw, ok := req.GetArguments()["metadata"].(map[string]any)
	if !ok {
		return nil
	}

	meta := &tree.Metadata{}
	if v, ok := raw["confidence"].(float64); ok {
		meta.Confidence = &v
	}
	if v, ok := raw["priority"].(float64); ok {
		p := int(v)
		meta.Priority = &p
	}
	if v, ok := raw["feasibility"].(float64); ok {
		f := int(v)
		meta.Feasibility = &f
	}
	meta.Evidence = stringList(raw["evidence"])
	meta.Assumptions = stringList(raw["assumptions"])
	meta.Tags = stringList(raw["tags"])
	return meta
}

// stringList converts a JSON array value to []string, nil when the key
// is absent or not an array.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// withMetadata is the shared schema definition for the metadata object
// parameter carried by add_node and update_node.
func withMetadata() mcp.ToolOption {
	return mcp.WithObject("metadata",
		mcp.Description("Optional scoring/evidence fields: confidence (0-1), priority (1-5), feasibility (1-5), "+
			"evidence, assumptions, tags (string arrays). On update_node this replaces ALL six fields — "+
			"an omitted field is cleared, not preserved."),
	)
}
