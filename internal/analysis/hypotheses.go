package analysis

import (
	"fmt"

	"github.com/decampo/arbor/internal/tree"
)

// HypothesisResult holds templated exploration prompts for one node.
// These are deliberately fixed templates keyed on node type with the
// content substituted in — exploratory prompting, not inference.
type HypothesisResult struct {
	Hypotheses     []string `json:"hypotheses"`
	TestingMethods []string `json:"testingMethods"`
	Assumptions    []string `json:"assumptions"`
}

// hypothesisTemplates maps a node type to its two hypothesis and two
// testing-method templates. %q receives the node content.
var hypothesisTemplates = map[tree.NodeType]struct {
	hypotheses [2]string
	methods    [2]string
}{
	tree.TypeProblem: {
		hypotheses: [2]string{
			"%q is driven by a small number of dominant factors rather than many equal ones",
			"%q persists because its symptoms are being treated instead of its drivers",
		},
		methods: [2]string{
			"Collect baseline measurements that quantify %q",
			"Interview the people closest to %q to separate symptoms from drivers",
		},
	},
	tree.TypeCause: {
		hypotheses: [2]string{
			"Addressing %q directly would measurably reduce the parent problem",
			"%q interacts with other causes and cannot be eliminated in isolation",
		},
		methods: [2]string{
			"Run a controlled change that removes %q for a subset of cases",
			"Correlate the occurrence of %q with the severity of the parent problem",
		},
	},
	tree.TypeEffect: {
		hypotheses: [2]string{
			"%q would diminish once its upstream causes are resolved",
			"%q has secondary consequences not yet captured in the tree",
		},
		methods: [2]string{
			"Track %q over time against changes to its upstream causes",
			"Survey affected stakeholders about the downstream impact of %q",
		},
	},
	tree.TypeSolution: {
		hypotheses: [2]string{
			"Implementing %q will produce a measurable improvement within one review cycle",
			"%q addresses the cause it is attached to rather than a symptom",
		},
		methods: [2]string{
			"Pilot %q on a limited scope and compare against a control group",
			"Define success metrics for %q before implementation and review them after",
		},
	},
	tree.TypeDecision: {
		hypotheses: [2]string{
			"The options under %q differ materially in cost and risk",
			"%q can be resolved with the evidence already collected",
		},
		methods: [2]string{
			"Score each option under %q against explicit, weighted criteria",
			"List the information still missing before %q can be closed",
		},
	},
	tree.TypeOption: {
		hypotheses: [2]string{
			"%q is viable within current constraints",
			"%q outperforms at least one sibling option on the deciding criterion",
		},
		methods: [2]string{
			"Prototype %q cheaply enough to discard it without regret",
			"Compare %q against its siblings on the same criteria",
		},
	},
}

// Hypotheses generates two hypotheses, two testing-method suggestions,
// and three generic assumptions for the node, keyed purely on its type.
// An unknown nodeID yields an all-empty result.
func Hypotheses(s *tree.Store, nodeID string) HypothesisResult {
	result := HypothesisResult{
		Hypotheses:     []string{},
		TestingMethods: []string{},
		Assumptions:    []string{},
	}

	n, ok := s.Get(nodeID)
	if !ok {
		return result
	}

	tpl := hypothesisTemplates[n.Type]
	for _, h := range tpl.hypotheses {
		result.Hypotheses = append(result.Hypotheses, fmt.Sprintf(h, n.Content))
	}
	for _, m := range tpl.methods {
		result.TestingMethods = append(result.TestingMethods, fmt.Sprintf(m, n.Content))
	}
	result.Assumptions = []string{
		fmt.Sprintf("The description of %q reflects the current situation", n.Content),
		fmt.Sprintf("The available data about %q is accurate enough to act on", n.Content),
		fmt.Sprintf("The scope of %q will remain stable while it is investigated", n.Content),
	}

	return result
}
