package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/decampo/arbor/internal/tree"
)

// abstractVerbs are verbs that name an aspiration rather than a
// concrete mechanism. Content containing any of them loses two points.
var abstractVerbs = []string{
	"improve", "optimize", "enhance", "streamline", "maximize", "minimize", "better",
}

// metricPattern matches anything that quantifies the action: digits,
// percentages, currency, or a time-unit word.
var metricPattern = regexp.MustCompile(`(?i)[0-9]|%|\$|seconds?|minutes?|hours?|days?|weeks?|months?|quarters?|years?`)

// deadlineMarkers are literal substrings that suggest a time bound.
var deadlineMarkers = []string{"by", "within", "deadline"}

// ActionabilityResult scores how concrete, measurable, and time-bound a
// solution's text is, on a 1-5 scale.
type ActionabilityResult struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Actionability scores a solution node's content. Non-solution nodes
// (and unknown ids) get score 0 with an explanatory issue. The score
// starts at 5 and loses 2 for an abstract verb, 1 for a missing
// measurable target, and 1 for a missing time bound, flooring at 1.
// Each deduction appends a paired issue and suggestion.
func Actionability(s *tree.Store, nodeID string) ActionabilityResult {
	result := ActionabilityResult{
		Issues:      []string{},
		Suggestions: []string{},
	}

	n, ok := s.Get(nodeID)
	if !ok {
		result.Issues = append(result.Issues, fmt.Sprintf("Node %q does not exist", nodeID))
		return result
	}
	if n.Type != tree.TypeSolution {
		result.Issues = append(result.Issues,
			fmt.Sprintf("Actionability applies only to solution nodes; %q is a %s", n.Content, n.Type))
		return result
	}

	content := strings.ToLower(n.Content)
	score := 5

	for _, verb := range abstractVerbs {
		if strings.Contains(content, verb) {
			score -= 2
			result.Issues = append(result.Issues,
				fmt.Sprintf("Uses the abstract verb %q without a concrete mechanism", verb))
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("Replace %q with a specific, observable action", verb))
			break
		}
	}

	if !metricPattern.MatchString(n.Content) {
		score--
		result.Issues = append(result.Issues, "No measurable target (number, percentage, cost, or time unit)")
		result.Suggestions = append(result.Suggestions, "Add a quantified target, such as a percentage or a duration")
	}

	hasDeadline := false
	for _, marker := range deadlineMarkers {
		if strings.Contains(content, marker) {
			hasDeadline = true
			break
		}
	}
	if !hasDeadline {
		score--
		result.Issues = append(result.Issues, "No time bound on the action")
		result.Suggestions = append(result.Suggestions, "Add a deadline using 'by', 'within', or an explicit date")
	}

	if score < 1 {
		score = 1
	}
	result.Score = score
	return result
}
