// Package tree implements the in-memory problem-decomposition tree:
// the Node model, the Store that owns the node collection, and the
// mutation operations (add, remove, move, update).
//
// The Store is an explicit aggregate — one instance per server process,
// injected into every tool handler. There is no ambient global state.
package tree

import (
	"fmt"
	"time"
)

// --- Node type enum ---

// NodeType categorizes a node's role in the decomposition. It is fixed
// at creation time — there is no retype operation.
type NodeType string

const (
	TypeProblem  NodeType = "problem"
	TypeCause    NodeType = "cause"
	TypeEffect   NodeType = "effect"
	TypeSolution NodeType = "solution"
	TypeDecision NodeType = "decision"
	TypeOption   NodeType = "option"
)

// validTypes is the set of allowed node types.
var validTypes = map[NodeType]bool{
	TypeProblem:  true,
	TypeCause:    true,
	TypeEffect:   true,
	TypeSolution: true,
	TypeDecision: true,
	TypeOption:   true,
}

// ValidateType returns an error if the type is not recognized.
func ValidateType(t NodeType) error {
	if !validTypes[t] {
		return fmt.Errorf("invalid node type %q: must be one of: problem, cause, effect, solution, decision, option", t)
	}
	return nil
}

// --- Node ---

// Node is the sole entity of the tree. Children is the owning link;
// ParentID is a back-reference only. Level is cached depth and is kept
// consistent synchronously on every structural change.
type Node struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Type     NodeType `json:"type"`
	ParentID *string  `json:"parentId,omitempty"`
	Children []string `json:"children"`
	Level    int      `json:"level"`
	Expanded bool     `json:"expanded"`

	// Optional scoring/evidence fields. Conventional ranges (confidence
	// 0-1, priority and feasibility 1-5) are not enforced — out-of-range
	// values pass through unchanged.
	Confidence  *float64 `json:"confidence,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	Feasibility *int     `json:"feasibility,omitempty"`
	Evidence    []string `json:"evidence"`
	Assumptions []string `json:"assumptions"`
	Tags        []string `json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Metadata carries the six optional scoring/evidence fields for add and
// update. Pointer scalars and nil-able slices make "field absent"
// distinguishable from "field present with empty value": update applies
// a Metadata as a full replace of all six node fields, so a field left
// absent clears the node's value rather than preserving it.
type Metadata struct {
	Confidence  *float64 `json:"confidence,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	Feasibility *int     `json:"feasibility,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
