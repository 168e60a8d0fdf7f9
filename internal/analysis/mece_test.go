package analysis

import (
	"strings"
	"testing"

	"github.com/decampo/arbor/internal/tree"
)

// buildTree adds a root problem and returns the store plus the root.
func buildTree(t *testing.T, content string) (*tree.Store, *tree.Node) {
	t.Helper()
	s := tree.NewStore()
	root := s.Add(tree.AddParams{Content: content, Type: tree.TypeProblem})
	return s, root
}

func addUnder(s *tree.Store, content string, typ tree.NodeType, parentID string) *tree.Node {
	return s.Add(tree.AddParams{Content: content, Type: typ, ParentID: &parentID})
}

// ─── Similarity ──────────────────────────────────────────────────────────────

func TestSimilarity_HighOverlap(t *testing.T) {
	got := similarity("slow page load", "page load is slow")
	if got <= overlapThreshold {
		t.Errorf("similarity = %.2f, want > %.2f", got, overlapThreshold)
	}
}

func TestSimilarity_LowOverlap(t *testing.T) {
	got := similarity("slow page load", "weak call to action")
	if got > overlapThreshold {
		t.Errorf("similarity = %.2f, want <= %.2f", got, overlapThreshold)
	}
}

func TestSimilarity_SymmetricDetection(t *testing.T) {
	pairs := [][2]string{
		{"slow page load", "page load is slow"},
		{"slow page load", "weak call to action"},
		{"checkout friction", "friction at checkout step"},
	}
	for _, p := range pairs {
		ab := similarity(p[0], p[1]) > overlapThreshold
		ba := similarity(p[1], p[0]) > overlapThreshold
		if ab != ba {
			t.Errorf("detection not symmetric for %q / %q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_EmptyContent(t *testing.T) {
	if similarity("", "anything") != 0 {
		t.Error("empty content should score 0")
	}
}

// ─── MECE ────────────────────────────────────────────────────────────────────

func TestMECE_FlagsOverlappingSiblings(t *testing.T) {
	s, root := buildTree(t, "Low conversion rate")
	addUnder(s, "slow page load", tree.TypeCause, root.ID)
	addUnder(s, "page load is slow", tree.TypeCause, root.ID)
	addUnder(s, "weak call to action", tree.TypeCause, root.ID)

	result := MECE(s)
	if result.IsValid {
		t.Error("overlapping siblings should make the result invalid")
	}
	if !result.HasOverlaps {
		t.Error("HasOverlaps should be set")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", result.Issues)
	}
	if !strings.Contains(result.Issues[0], "slow page load") ||
		!strings.Contains(result.Issues[0], "page load is slow") {
		t.Errorf("issue should name both contents: %s", result.Issues[0])
	}
}

func TestMECE_CleanSiblings(t *testing.T) {
	s, root := buildTree(t, "Low conversion rate")
	addUnder(s, "slow page load", tree.TypeCause, root.ID)
	addUnder(s, "weak call to action", tree.TypeCause, root.ID)
	addUnder(s, "confusing navigation", tree.TypeCause, root.ID)

	result := MECE(s)
	if !result.IsValid {
		t.Errorf("distinct siblings should be valid, got issues %v", result.Issues)
	}
	if result.HasOverlaps {
		t.Error("no overlap expected")
	}
}

func TestMECE_NarrowProblemDecompositionSuggestion(t *testing.T) {
	s, root := buildTree(t, "Low conversion rate")
	addUnder(s, "slow page load", tree.TypeCause, root.ID)

	result := MECE(s)
	if len(result.Suggestions) != 1 {
		t.Fatalf("suggestions = %v, want one breadth suggestion", result.Suggestions)
	}
	if !strings.Contains(result.Suggestions[0], "Low conversion rate") {
		t.Errorf("suggestion should name the problem: %s", result.Suggestions[0])
	}
	// A single child cannot overlap with anything.
	if !result.IsValid {
		t.Error("single child should not produce overlap issues")
	}
}

func TestMECE_ThreeChildrenNoBreadthSuggestion(t *testing.T) {
	s, root := buildTree(t, "p")
	addUnder(s, "alpha one", tree.TypeCause, root.ID)
	addUnder(s, "beta two", tree.TypeCause, root.ID)
	addUnder(s, "gamma three", tree.TypeCause, root.ID)

	result := MECE(s)
	if len(result.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want none for 3 children", result.Suggestions)
	}
}

func TestMECE_EmptyTree(t *testing.T) {
	s := tree.NewStore()
	result := MECE(s)
	if !result.IsValid || result.HasOverlaps || len(result.Issues) != 0 {
		t.Errorf("empty tree should be trivially valid: %+v", result)
	}
}
