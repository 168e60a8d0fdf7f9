package analysis

import (
	"fmt"

	"github.com/decampo/arbor/internal/tree"
)

// FeasibilityResult summarizes the feasibility scores of solution nodes.
type FeasibilityResult struct {
	AverageFeasibility  float64  `json:"averageFeasibility"`
	HighPriorityItems   []string `json:"highPriorityItems"`
	LowFeasibilityItems []string `json:"lowFeasibilityItems"`
	Warnings            []string `json:"warnings"`
}

// Feasibility assesses solution nodes only. The average covers nodes
// with a defined feasibility score (0 when none is defined). High
// priority means priority >= 4 and feasibility >= 3; low feasibility
// means feasibility <= 2 — in both classifications a missing score
// counts as 0, so an unscored solution lands in the low bucket.
func Feasibility(s *tree.Store) FeasibilityResult {
	result := FeasibilityResult{
		HighPriorityItems:   []string{},
		LowFeasibilityItems: []string{},
		Warnings:            []string{},
	}

	solutions := s.NodesOfType(tree.TypeSolution)
	if len(solutions) == 0 {
		return result
	}

	sum, scored := 0, 0
	for _, n := range solutions {
		feasibility := 0
		if n.Feasibility != nil {
			feasibility = *n.Feasibility
			sum += feasibility
			scored++
		}
		priority := 0
		if n.Priority != nil {
			priority = *n.Priority
		}

		if priority >= 4 && feasibility >= 3 {
			result.HighPriorityItems = append(result.HighPriorityItems, n.Content)
		}
		if feasibility <= 2 {
			result.LowFeasibilityItems = append(result.LowFeasibilityItems, n.Content)
		}
	}

	if scored > 0 {
		result.AverageFeasibility = float64(sum) / float64(scored)
	}

	if result.AverageFeasibility < 3 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Average solution feasibility is %.2f — below the workable threshold of 3", result.AverageFeasibility))
	}
	if len(result.HighPriorityItems) == 0 {
		result.Warnings = append(result.Warnings,
			"No solution is both high priority (>= 4) and feasible (>= 3)")
	}

	return result
}
