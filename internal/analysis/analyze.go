// Package analysis implements the analytical operations over a tree
// snapshot: MECE validation, gap analysis, feasibility assessment,
// hypothesis generation, actionability scoring, and recommendation
// synthesis.
//
// Everything here is a pure function of current node state — heuristic
// scoring as data, never mutation. The similarity and keyword checks
// are shallow lexical heuristics, not semantic analysis.
package analysis

import "github.com/decampo/arbor/internal/tree"

// Report bundles the full analyze_tree output.
type Report struct {
	MECE            MECEResult        `json:"mece"`
	Gaps            GapResult         `json:"gaps"`
	Feasibility     FeasibilityResult `json:"feasibility"`
	Recommendations []string          `json:"recommendations"`
}

// Analyze runs every tree-wide analysis and bundles the results.
func Analyze(s *tree.Store) Report {
	return Report{
		MECE:            MECE(s),
		Gaps:            Gaps(s),
		Feasibility:     Feasibility(s),
		Recommendations: Recommend(s),
	}
}
