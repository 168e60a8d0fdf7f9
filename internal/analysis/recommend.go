package analysis

import (
	"fmt"
	"strings"

	"github.com/decampo/arbor/internal/tree"
)

// Recommend synthesizes tree-wide recommendations: solution coverage
// versus problem count, solutions with missing or low feasibility, and
// a "start here" list of high-priority solutions.
func Recommend(s *tree.Store) []string {
	recs := []string{}

	problems := s.CountByType(tree.TypeProblem)
	solutions := s.NodesOfType(tree.TypeSolution)

	if problems > len(solutions) {
		recs = append(recs, fmt.Sprintf(
			"There are %d problem(s) but only %d solution(s) — develop more solution coverage",
			problems, len(solutions)))
	}

	var startHere []string
	for _, n := range solutions {
		if n.Feasibility == nil || *n.Feasibility < 3 {
			recs = append(recs, fmt.Sprintf(
				"Solution %q has low or unassessed feasibility — validate it before committing", n.Content))
		}
		if n.Priority != nil && *n.Priority >= 4 {
			startHere = append(startHere, n.Content)
		}
	}

	if len(startHere) > 0 {
		recs = append(recs, fmt.Sprintf("Start here: %s", strings.Join(startHere, "; ")))
	}

	return recs
}
