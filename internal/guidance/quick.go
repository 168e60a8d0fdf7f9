package guidance

import (
	"fmt"

	"github.com/decampo/arbor/internal/analysis"
	"github.com/decampo/arbor/internal/tree"
)

// maxQuickRecommendations caps the condensed recommendation list.
const maxQuickRecommendations = 3

// QuickResult is the condensed summary returned by quick_analysis.
type QuickResult struct {
	State           State    `json:"state"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Guidance        string   `json:"guidance"`
}

// Quick composes MECE validation, gap analysis, feasibility assessment,
// and the current guidance state into a short summary: derived findings
// as one-line strings, at most three top recommendations, and a single
// guidance sentence with the top suggested operation appended.
func Quick(s *tree.Store) QuickResult {
	status := Evaluate(s)
	result := QuickResult{
		State:           status.State,
		Findings:        []string{},
		Recommendations: []string{},
	}

	mece := analysis.MECE(s)
	if mece.HasOverlaps {
		result.Findings = append(result.Findings,
			fmt.Sprintf("%d potential sibling overlap(s) detected", len(mece.Issues)))
	}

	gaps := analysis.Gaps(s)
	if n := len(gaps.MissingCauses); n > 0 {
		result.Findings = append(result.Findings, fmt.Sprintf("%d problem(s) missing causes", n))
	}
	if n := len(gaps.MissingSolutions); n > 0 {
		result.Findings = append(result.Findings, fmt.Sprintf("%d problem(s) missing solutions", n))
	}

	feas := analysis.Feasibility(s)
	for _, w := range feas.Warnings {
		result.Findings = append(result.Findings, w)
	}

	for _, rec := range gaps.Recommendations {
		result.Recommendations = append(result.Recommendations, rec)
	}
	for _, rec := range analysis.Recommend(s) {
		result.Recommendations = append(result.Recommendations, rec)
	}
	if len(result.Recommendations) > maxQuickRecommendations {
		result.Recommendations = result.Recommendations[:maxQuickRecommendations]
	}

	result.Guidance = status.Guidance
	if len(status.Suggestions) > 0 {
		next := fmt.Sprintf("Next: %s.", status.Suggestions[0].Operation)
		if result.Guidance == "" {
			result.Guidance = next
		} else {
			result.Guidance += " " + next
		}
	}

	return result
}
