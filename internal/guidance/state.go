// Package guidance derives a discrete workflow state from the tree's
// current contents and emits prioritized next-step suggestions. The
// state is recomputed freshly on every call — nothing is persisted.
package guidance

import (
	"sort"

	"github.com/decampo/arbor/internal/tree"
)

// State is the workflow phase derived from tree contents.
type State string

const (
	StateEmpty              State = "empty"
	StateProblemDefined     State = "problem_defined"
	StateCausesIdentified   State = "causes_identified"
	StateSolutionsDeveloped State = "solutions_developed"

	// StateNone is the unnamed fallback when no condition matches
	// (for example a tree holding only effect or option nodes).
	// It carries no guidance text.
	StateNone State = ""
)

// Suggestion is one recommended next operation, ranked by priority 1-5.
type Suggestion struct {
	Operation   string `json:"operation"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// Status is the full guidance output for get_status.
type Status struct {
	State       State        `json:"state"`
	Guidance    string       `json:"guidance,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}

// DeriveState evaluates the state conditions in order; first match wins.
func DeriveState(s *tree.Store) State {
	switch {
	case s.Len() == 0:
		return StateEmpty
	case s.CountByType(tree.TypeProblem) >= 1 && s.CountByType(tree.TypeCause) == 0:
		return StateProblemDefined
	case s.CountByType(tree.TypeCause) >= 1 && s.CountByType(tree.TypeSolution) == 0:
		return StateCausesIdentified
	case s.CountByType(tree.TypeSolution) >= 1:
		return StateSolutionsDeveloped
	default:
		return StateNone
	}
}

// guidanceText holds the fixed guidance sentence per state.
var guidanceText = map[State]string{
	StateEmpty:              "Start by defining the problem you want to decompose.",
	StateProblemDefined:     "Problem defined. Identify what causes it.",
	StateCausesIdentified:   "Causes identified. Develop solutions for each cause.",
	StateSolutionsDeveloped: "Solutions drafted. Score and compare them before deciding.",
}

// stateSuggestions holds the ranked suggestion list per state.
var stateSuggestions = map[State][]Suggestion{
	StateEmpty: {
		{Operation: "add_node", Description: "Add a root problem node describing what you want to solve", Priority: 5},
	},
	StateProblemDefined: {
		{Operation: "add_node", Description: "Add cause nodes under the problem", Priority: 5},
		{Operation: "analyze_tree", Description: "Check the decomposition for gaps and overlap", Priority: 3},
	},
	StateCausesIdentified: {
		{Operation: "add_node", Description: "Add solution nodes under each cause", Priority: 5},
		{Operation: "generate_hypotheses", Description: "Generate testable hypotheses for a cause", Priority: 4},
		{Operation: "analyze_tree", Description: "Check the decomposition for gaps and overlap", Priority: 3},
	},
	StateSolutionsDeveloped: {
		{Operation: "suggest_actions", Description: "Score how actionable each solution is", Priority: 5},
		{Operation: "analyze_tree", Description: "Assess feasibility and coverage across solutions", Priority: 4},
		{Operation: "update_node", Description: "Attach priority and feasibility scores to solutions", Priority: 3},
	},
}

// visualizeThreshold is the node count above which a visualization
// suggestion is appended to every status.
const visualizeThreshold = 5

// Evaluate derives the current state and returns it with its guidance
// text and suggestion list, sorted descending by priority with stable
// ties (insertion order preserved).
func Evaluate(s *tree.Store) Status {
	state := DeriveState(s)

	status := Status{
		State:       state,
		Guidance:    guidanceText[state],
		Suggestions: []Suggestion{},
	}
	status.Suggestions = append(status.Suggestions, stateSuggestions[state]...)

	if s.Len() > visualizeThreshold {
		status.Suggestions = append(status.Suggestions, Suggestion{
			Operation:   "visualize_tree",
			Description: "The tree is getting large — review its structure visually",
			Priority:    2,
		})
	}

	sort.SliceStable(status.Suggestions, func(i, j int) bool {
		return status.Suggestions[i].Priority > status.Suggestions[j].Priority
	})

	return status
}
