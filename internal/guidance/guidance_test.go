package guidance

import (
	"strings"
	"testing"

	"github.com/decampo/arbor/internal/tree"
)

func addUnder(s *tree.Store, content string, typ tree.NodeType, parentID string) *tree.Node {
	return s.Add(tree.AddParams{Content: content, Type: typ, ParentID: &parentID})
}

// ─── State derivation ────────────────────────────────────────────────────────

func TestDeriveState_Transitions(t *testing.T) {
	s := tree.NewStore()
	if got := DeriveState(s); got != StateEmpty {
		t.Fatalf("state = %q, want %q", got, StateEmpty)
	}

	root := s.Add(tree.AddParams{Content: "Low conversion rate", Type: tree.TypeProblem})
	if got := DeriveState(s); got != StateProblemDefined {
		t.Fatalf("state after root problem = %q, want %q", got, StateProblemDefined)
	}

	cause := addUnder(s, "Slow load", tree.TypeCause, root.ID)
	if got := DeriveState(s); got != StateCausesIdentified {
		t.Fatalf("state after cause = %q, want %q", got, StateCausesIdentified)
	}

	addUnder(s, "Cache assets", tree.TypeSolution, cause.ID)
	if got := DeriveState(s); got != StateSolutionsDeveloped {
		t.Fatalf("state after solution = %q, want %q", got, StateSolutionsDeveloped)
	}
}

func TestDeriveState_FirstMatchWins(t *testing.T) {
	// A problem AND a cause: the problem_defined condition (0 causes)
	// no longer holds, so causes_identified wins.
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	addUnder(s, "c", tree.TypeCause, root.ID)

	if got := DeriveState(s); got != StateCausesIdentified {
		t.Errorf("state = %q, want %q", got, StateCausesIdentified)
	}
}

func TestDeriveState_Fallback(t *testing.T) {
	s := tree.NewStore()
	s.Add(tree.AddParams{Content: "just an effect", Type: tree.TypeEffect})

	if got := DeriveState(s); got != StateNone {
		t.Errorf("state = %q, want the unnamed fallback", got)
	}
}

func TestDeriveState_SolutionWinsOverCause(t *testing.T) {
	// Causes exist but so do solutions: causes_identified requires zero
	// solutions, so solutions_developed matches.
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	c := addUnder(s, "c", tree.TypeCause, root.ID)
	addUnder(s, "s", tree.TypeSolution, c.ID)

	if got := DeriveState(s); got != StateSolutionsDeveloped {
		t.Errorf("state = %q, want %q", got, StateSolutionsDeveloped)
	}
}

// ─── Evaluate ────────────────────────────────────────────────────────────────

func TestEvaluate_SuggestionsSortedByPriority(t *testing.T) {
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	addUnder(s, "c", tree.TypeCause, root.ID)

	status := Evaluate(s)
	for i := 1; i < len(status.Suggestions); i++ {
		if status.Suggestions[i].Priority > status.Suggestions[i-1].Priority {
			t.Errorf("suggestions not sorted descending: %+v", status.Suggestions)
		}
	}
}

func TestEvaluate_VisualizationSuggestionAboveThreshold(t *testing.T) {
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	for i := 0; i < 5; i++ {
		addUnder(s, "cause", tree.TypeCause, root.ID)
	}
	// 6 nodes total, above the threshold of 5.
	status := Evaluate(s)
	found := false
	for _, sug := range status.Suggestions {
		if sug.Operation == "visualize_tree" && sug.Priority == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions = %+v, want a visualize_tree entry with priority 2", status.Suggestions)
	}
}

func TestEvaluate_NoVisualizationSuggestionAtThreshold(t *testing.T) {
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	for i := 0; i < 4; i++ {
		addUnder(s, "cause", tree.TypeCause, root.ID)
	}
	// Exactly 5 nodes: not above the threshold.
	for _, sug := range Evaluate(s).Suggestions {
		if sug.Operation == "visualize_tree" {
			t.Errorf("visualize_tree suggested at exactly %d nodes", s.Len())
		}
	}
}

func TestEvaluate_FallbackHasNoGuidanceText(t *testing.T) {
	s := tree.NewStore()
	s.Add(tree.AddParams{Content: "just an option", Type: tree.TypeOption})

	status := Evaluate(s)
	if status.Guidance != "" {
		t.Errorf("guidance = %q, want none for the unnamed fallback", status.Guidance)
	}
}

// ─── Quick analysis ──────────────────────────────────────────────────────────

func TestQuick_EmptyTree(t *testing.T) {
	s := tree.NewStore()
	result := Quick(s)

	if result.State != StateEmpty {
		t.Errorf("state = %q, want %q", result.State, StateEmpty)
	}
	if len(result.Findings) != 0 {
		t.Errorf("findings = %v, want none", result.Findings)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want none", result.Recommendations)
	}
	if !strings.Contains(result.Guidance, "problem") {
		t.Errorf("guidance = %q, should prompt problem creation", result.Guidance)
	}
	if !strings.Contains(result.Guidance, "add_node") {
		t.Errorf("guidance = %q, should append the top suggested operation", result.Guidance)
	}
}

func TestQuick_CapsRecommendationsAtThree(t *testing.T) {
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	for _, c := range []string{"alpha", "beta", "gamma", "delta"} {
		addUnder(s, c, tree.TypeCause, root.ID)
	}

	result := Quick(s)
	if len(result.Recommendations) > 3 {
		t.Errorf("recommendations = %d entries, want at most 3", len(result.Recommendations))
	}
}

func TestQuick_ReportsGapFindings(t *testing.T) {
	s := tree.NewStore()
	s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})

	result := Quick(s)
	var missingCauses, missingSolutions bool
	for _, f := range result.Findings {
		if strings.Contains(f, "missing causes") {
			missingCauses = true
		}
		if strings.Contains(f, "missing solutions") {
			missingSolutions = true
		}
	}
	if !missingCauses || !missingSolutions {
		t.Errorf("findings = %v, want both gap categories", result.Findings)
	}
}

// ─── Next steps ──────────────────────────────────────────────────────────────

func TestNext_EmptyTree(t *testing.T) {
	s := tree.NewStore()
	next := Next(s)

	if next.Recommended.Operation != "add_node" {
		t.Errorf("operation = %q, want add_node", next.Recommended.Operation)
	}
	if next.Recommended.Params["nodeType"] != "problem" {
		t.Errorf("params = %v, want a problem template", next.Recommended.Params)
	}
	if len(next.Workflow) != 5 {
		t.Errorf("workflow = %d steps, want the fixed five", len(next.Workflow))
	}
}

func TestNext_FillsInRealNodeIDs(t *testing.T) {
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})

	next := Next(s)
	if next.Recommended.Params["parentId"] != root.ID {
		t.Errorf("parentId = %q, want the real problem id %s", next.Recommended.Params["parentId"], root.ID)
	}
	if next.Recommended.Params["nodeType"] != "cause" {
		t.Errorf("params = %v, want a cause template", next.Recommended.Params)
	}
}

func TestNext_SolutionsDevelopedRecommendsScoring(t *testing.T) {
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})
	c := addUnder(s, "c", tree.TypeCause, root.ID)
	sol := addUnder(s, "s", tree.TypeSolution, c.ID)

	next := Next(s)
	if next.Recommended.Operation != "suggest_actions" {
		t.Errorf("operation = %q, want suggest_actions", next.Recommended.Operation)
	}
	if next.Recommended.Params["nodeId"] != sol.ID {
		t.Errorf("nodeId = %q, want %s", next.Recommended.Params["nodeId"], sol.ID)
	}
	if next.Recommended.Rationale == "" {
		t.Error("rationale must not be empty")
	}
}

func TestNext_WorkflowIndependentOfState(t *testing.T) {
	empty := tree.NewStore()
	full := tree.NewStore()
	full.Add(tree.AddParams{Content: "p", Type: tree.TypeProblem})

	a, b := Next(empty).Workflow, Next(full).Workflow
	if len(a) != len(b) {
		t.Fatal("workflow length varies with state")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("workflow step %d differs across states", i)
		}
	}
}
