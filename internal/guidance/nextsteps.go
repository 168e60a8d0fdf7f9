package guidance

import (
	"github.com/decampo/arbor/internal/tree"
)

// NextStep is one concrete recommended operation with a filled-in
// parameter template and a one-line rationale.
type NextStep struct {
	Operation string            `json:"operation"`
	Params    map[string]string `json:"params"`
	Rationale string            `json:"rationale"`
}

// NextSteps bundles the state-specific recommendation with the fixed
// workflow description.
type NextSteps struct {
	State       State    `json:"state"`
	Recommended NextStep `json:"recommended"`
	Workflow    []string `json:"workflow"`
}

// workflow is the fixed five-step description, independent of tree state.
var workflow = []string{
	"1. Define the problem: add_node with nodeType=problem",
	"2. Decompose it into causes: add_node with nodeType=cause under the problem",
	"3. Develop solutions: add_node with nodeType=solution under each cause",
	"4. Score solutions: update_node with priority/feasibility metadata, then suggest_actions",
	"5. Review and decide: analyze_tree, quick_analysis, visualize_tree",
}

// Next picks, by current state, one recommended operation with a
// parameter template. Where a concrete node exists to anchor the
// template (the first problem, cause, or solution in creation order)
// its real id is filled in; otherwise a placeholder remains.
func Next(s *tree.Store) NextSteps {
	state := DeriveState(s)
	out := NextSteps{State: state, Workflow: workflow}

	switch state {
	case StateEmpty:
		out.Recommended = NextStep{
			Operation: "add_node",
			Params: map[string]string{
				"content":  "<describe the problem>",
				"nodeType": "problem",
			},
			Rationale: "An empty tree needs a root problem before anything can be analyzed.",
		}
	case StateProblemDefined:
		out.Recommended = NextStep{
			Operation: "add_node",
			Params: map[string]string{
				"content":  "<suspected cause>",
				"nodeType": "cause",
				"parentId": firstIDOfType(s, tree.TypeProblem, "<problem node id>"),
			},
			Rationale: "A problem without causes cannot be decomposed further.",
		}
	case StateCausesIdentified:
		out.Recommended = NextStep{
			Operation: "add_node",
			Params: map[string]string{
				"content":  "<proposed solution>",
				"nodeType": "solution",
				"parentId": firstIDOfType(s, tree.TypeCause, "<cause node id>"),
			},
			Rationale: "Each identified cause needs at least one candidate solution.",
		}
	case StateSolutionsDeveloped:
		out.Recommended = NextStep{
			Operation: "suggest_actions",
			Params: map[string]string{
				"nodeId": firstIDOfType(s, tree.TypeSolution, "<solution node id>"),
			},
			Rationale: "Scoring actionability shows which solutions are concrete enough to execute.",
		}
	default:
		out.Recommended = NextStep{
			Operation: "analyze_tree",
			Params:    map[string]string{},
			Rationale: "The tree does not follow the problem/cause/solution shape — review it as a whole.",
		}
	}

	return out
}

func firstIDOfType(s *tree.Store, t tree.NodeType, fallback string) string {
	nodes := s.NodesOfType(t)
	if len(nodes) == 0 {
		return fallback
	}
	return nodes[0].ID
}
