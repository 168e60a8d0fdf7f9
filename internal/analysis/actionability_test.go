package analysis

import (
	"strings"
	"testing"

	"github.com/decampo/arbor/internal/tree"
)

func TestActionability_AbstractVagueContent(t *testing.T) {
	s, root := buildTree(t, "p")
	sol := addUnder(s, "Optimize the homepage", tree.TypeSolution, root.ID)

	result := Actionability(s, sol.ID)
	if result.Score > 3 {
		t.Errorf("score = %d, want <= 3 (abstract verb and missing metric/deadline)", result.Score)
	}
	if result.Score < 1 {
		t.Errorf("score = %d, must floor at 1", result.Score)
	}
	if len(result.Issues) != len(result.Suggestions) {
		t.Errorf("issues and suggestions must pair up: %d vs %d", len(result.Issues), len(result.Suggestions))
	}
	if len(result.Issues) != 3 {
		t.Errorf("issues = %v, want abstract-verb, no-metric, and no-deadline", result.Issues)
	}
}

func TestActionability_ConcreteContentScoresFive(t *testing.T) {
	s, root := buildTree(t, "p")
	sol := addUnder(s, "Reduce load time to 2s within 2 weeks", tree.TypeSolution, root.ID)

	result := Actionability(s, sol.ID)
	if result.Score != 5 {
		t.Errorf("score = %d, want 5; issues: %v", result.Score, result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Errorf("issues = %v, want none", result.Issues)
	}
}

func TestActionability_MetricWithoutDeadline(t *testing.T) {
	s, root := buildTree(t, "p")
	sol := addUnder(s, "Cut checkout steps from 5 to 3", tree.TypeSolution, root.ID)

	result := Actionability(s, sol.ID)
	if result.Score != 4 {
		t.Errorf("score = %d, want 4 (only the time-bound deduction applies); issues: %v", result.Score, result.Issues)
	}
}

func TestActionability_NonSolutionScoresZero(t *testing.T) {
	s, root := buildTree(t, "p")
	cause := addUnder(s, "slow load", tree.TypeCause, root.ID)

	result := Actionability(s, cause.ID)
	if result.Score != 0 {
		t.Errorf("score = %d, want 0 for a non-solution node", result.Score)
	}
	if len(result.Issues) != 1 || !strings.Contains(result.Issues[0], "solution") {
		t.Errorf("issues = %v, want a single type explanation", result.Issues)
	}
}

func TestActionability_MissingNode(t *testing.T) {
	s := tree.NewStore()
	result := Actionability(s, "node_999")
	if result.Score != 0 || len(result.Issues) != 1 {
		t.Errorf("missing node should score 0 with one issue: %+v", result)
	}
}
