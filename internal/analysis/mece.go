package analysis

import (
	"fmt"
	"strings"

	"github.com/decampo/arbor/internal/tree"
)

// overlapThreshold is the lexical similarity above which a sibling pair
// is flagged as a potential overlap (mutual-exclusivity violation).
const overlapThreshold = 0.7

// MECEResult reports on the mutually-exclusive / collectively-exhaustive
// quality of the decomposition.
type MECEResult struct {
	IsValid     bool     `json:"isValid"`
	HasOverlaps bool     `json:"hasOverlaps"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// MECE checks every sibling group for content overlap and every problem
// parent for decomposition breadth. Overlap detection compares sibling
// contents pairwise with a word-overlap ratio; fewer than 3 children
// under a problem node yields a completeness suggestion (a heuristic
// proxy for insufficient breadth, not a hard failure).
func MECE(s *tree.Store) MECEResult {
	result := MECEResult{
		Issues:      []string{},
		Suggestions: []string{},
	}

	for _, parent := range s.Nodes() {
		children := childNodes(s, parent)

		if len(children) > 1 {
			for i := 0; i < len(children); i++ {
				for j := i + 1; j < len(children); j++ {
					if similarity(children[i].Content, children[j].Content) > overlapThreshold {
						result.Issues = append(result.Issues, fmt.Sprintf(
							"Potential overlap between %q and %q under %q",
							children[i].Content, children[j].Content, parent.Content))
						result.HasOverlaps = true
					}
				}
			}
		}

		if parent.Type == tree.TypeProblem && len(children) > 0 && len(children) < 3 {
			result.Suggestions = append(result.Suggestions, fmt.Sprintf(
				"Problem %q has only %d sub-node(s) — check whether the decomposition covers the whole problem",
				parent.Content, len(children)))
		}
	}

	result.IsValid = len(result.Issues) == 0
	return result
}

// similarity returns the fraction of a's distinct lower-cased words
// found in b, over the larger of the two word counts. The ratio is
// asymmetric in computation but symmetric in detection: swapping the
// arguments cannot move a pair across the threshold differently,
// because the denominator is the max of both lengths.
func similarity(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		setB[w] = true
	}

	seen := make(map[string]bool, len(wordsA))
	common := 0
	for _, w := range wordsA {
		if seen[w] {
			continue
		}
		seen[w] = true
		if setB[w] {
			common++
		}
	}

	denom := len(wordsA)
	if len(wordsB) > denom {
		denom = len(wordsB)
	}
	return float64(common) / float64(denom)
}

// childNodes resolves a parent's children list to live nodes,
// preserving sibling order.
func childNodes(s *tree.Store, parent *tree.Node) []*tree.Node {
	out := make([]*tree.Node, 0, len(parent.Children))
	for _, id := range parent.Children {
		if child, ok := s.Get(id); ok {
			out = append(out, child)
		}
	}
	return out
}
