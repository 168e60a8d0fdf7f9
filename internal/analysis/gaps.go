package analysis

import (
	"fmt"

	"github.com/decampo/arbor/internal/tree"
)

// GapResult lists structural holes in the decomposition. MissingEffects
// is reserved for future rules and is always empty today; it stays in
// the result so the response shape is stable.
type GapResult struct {
	MissingCauses    []string `json:"missingCauses"`
	MissingEffects   []string `json:"missingEffects"`
	MissingSolutions []string `json:"missingSolutions"`
	Recommendations  []string `json:"recommendations"`
}

// Gaps flags problems without cause children and without solution
// children (two independent gap categories), and causes without
// solution children (a recommendation, not a hard gap).
func Gaps(s *tree.Store) GapResult {
	result := GapResult{
		MissingCauses:    []string{},
		MissingEffects:   []string{},
		MissingSolutions: []string{},
		Recommendations:  []string{},
	}

	for _, n := range s.Nodes() {
		switch n.Type {
		case tree.TypeProblem:
			if !hasChildOfType(s, n, tree.TypeCause) {
				result.MissingCauses = append(result.MissingCauses,
					fmt.Sprintf("Problem %q has no identified causes", n.Content))
			}
			if !hasChildOfType(s, n, tree.TypeSolution) {
				result.MissingSolutions = append(result.MissingSolutions,
					fmt.Sprintf("Problem %q has no proposed solutions", n.Content))
			}
		case tree.TypeCause:
			if !hasChildOfType(s, n, tree.TypeSolution) {
				result.Recommendations = append(result.Recommendations,
					fmt.Sprintf("Consider adding solutions for cause %q", n.Content))
			}
		}
	}

	return result
}

func hasChildOfType(s *tree.Store, parent *tree.Node, t tree.NodeType) bool {
	for _, id := range parent.Children {
		if child, ok := s.Get(id); ok && child.Type == t {
			return true
		}
	}
	return false
}
