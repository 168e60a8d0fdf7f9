// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the single tree store for
// the process, the optional journal, and injects them into the tool
// handlers. No business logic lives here — only wiring.
package server

import (
	"log"

	"github.com/decampo/arbor/internal/config"
	"github.com/decampo/arbor/internal/journal"
	"github.com/decampo/arbor/internal/tools"
	"github.com/decampo/arbor/internal/tree"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tree tools
// registered around one shared tree.Store. The returned cleanup
// function closes the journal (when enabled) and must be called on
// shutdown. It is always non-nil and safe to call.
func New() (*server.MCPServer, func(), error) {
	cfg := config.FromEnv()

	// --- Create shared dependencies ---

	store := tree.NewStore()

	// The journal is an independent subsystem: if it fails to open,
	// tree tools continue working without an audit trail. We log a
	// warning and carry a nil journal — all journal methods are
	// nil-safe.
	var jnl *journal.Journal
	cleanup := noop
	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			log.Printf("WARNING: operation journal disabled: %v", err)
		} else {
			jnl = j
			cleanup = func() {
				if err := jnl.Close(); err != nil {
					log.Printf("WARNING: journal close: %v", err)
				}
			}
		}
	}

	opts := tools.Options{
		Journal: jnl,
		Quiet:   cfg.Quiet,
	}

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"arbor",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register mutation tools ---

	addTool := tools.NewAddNodeTool(store, opts)
	s.AddTool(addTool.Definition(), addTool.Handle)

	removeTool := tools.NewRemoveNodeTool(store, opts)
	s.AddTool(removeTool.Definition(), removeTool.Handle)

	moveTool := tools.NewMoveNodeTool(store, opts)
	s.AddTool(moveTool.Definition(), moveTool.Handle)

	updateTool := tools.NewUpdateNodeTool(store, opts)
	s.AddTool(updateTool.Definition(), updateTool.Handle)

	// --- Register analysis tools ---

	analyzeTool := tools.NewAnalyzeTreeTool(store)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	hypothesesTool := tools.NewGenerateHypothesesTool(store)
	s.AddTool(hypothesesTool.Definition(), hypothesesTool.Handle)

	actionsTool := tools.NewSuggestActionsTool(store)
	s.AddTool(actionsTool.Definition(), actionsTool.Handle)

	// --- Register guidance and display tools ---

	statusTool := tools.NewGetStatusTool(store)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	nextStepsTool := tools.NewNextStepsTool(store)
	s.AddTool(nextStepsTool.Definition(), nextStepsTool.Handle)

	quickTool := tools.NewQuickAnalysisTool(store)
	s.AddTool(quickTool.Definition(), quickTool.Handle)

	visualizeTool := tools.NewVisualizeTreeTool(store)
	s.AddTool(visualizeTool.Definition(), visualizeTool.Handle)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when the journal is disabled.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use Arbor effectively.
func serverInstructions() string {
	return `You have access to Arbor, a problem-decomposition tree server.

## What Arbor does

Arbor maintains one in-memory tree per session that decomposes a problem
into causes, effects, solutions, decisions, and options, and analyzes the
decomposition for logical quality: MECE validation (are siblings mutually
exclusive and collectively exhaustive?), gap detection, feasibility
scoring, and actionability scoring.

## Workflow

1. Define the problem: add_node with nodeType=problem (no parentId — this
   becomes the root)
2. Decompose into causes: add_node with nodeType=cause and the problem's
   id as parentId
3. Develop solutions: add_node with nodeType=solution under each cause
4. Score solutions: update_node with priority (1-5) and feasibility (1-5)
   metadata, then suggest_actions per solution
5. Review: analyze_tree for the full report, quick_analysis for a short
   one, visualize_tree to see the structure

Call get_status or next_steps whenever you are unsure what to do next —
they derive the workflow state from the tree and recommend the next
operation.

## Rules

- The tree lives in memory only. Nothing survives a restart.
- Node types are fixed at creation; to change a type, remove and re-add.
- update_node metadata is a FULL REPLACE of all six optional fields; an
  omitted field is cleared. Re-send fields you want to keep.
- A parentId that does not resolve is accepted but leaves the node
  unreachable — double-check ids before adding.
- A second add_node without parentId replaces the root pointer and strands
  the previous tree. Only do this deliberately.
- Never move a node under its own descendant — this is not checked and
  corrupts the tree.
- Operations on a missing nodeId return success=false in a normal
  response, not an error. Check the success field.`
}
