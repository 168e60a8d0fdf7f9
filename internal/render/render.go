// Package render produces the indented, symbol-annotated text depiction
// of the tree. It is a pure formatting concern — no analysis happens
// here, and only nodes reachable from the root are drawn.
package render

import (
	"fmt"
	"strings"

	"github.com/decampo/arbor/internal/tree"
)

// typeSymbols maps each node type to its display symbol.
var typeSymbols = map[tree.NodeType]string{
	tree.TypeProblem:  "🔴",
	tree.TypeCause:    "🟠",
	tree.TypeEffect:   "🟡",
	tree.TypeSolution: "🟢",
	tree.TypeDecision: "🔵",
	tree.TypeOption:   "⚪",
}

// Tree renders the tree depth-first pre-order from the root, one line
// per node. Each line carries a branch connector (└── for the last
// sibling, ├── otherwise) behind indentation that reflects ancestor
// sibling positions: four spaces where an ancestor was last among its
// siblings, a vertical bar plus three spaces otherwise. Collapsed nodes
// with children print an elision marker instead of their subtree.
func Tree(s *tree.Store) string {
	root, ok := s.Root()
	if !ok {
		return "(empty tree)"
	}

	var sb strings.Builder
	renderNode(&sb, s, root, "", true)
	return strings.TrimRight(sb.String(), "\n")
}

func renderNode(sb *strings.Builder, s *tree.Store, n *tree.Node, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(fmt.Sprintf("%s [%s] %s", typeSymbols[n.Type], n.Type, n.Content))

	if !n.Expanded && len(n.Children) > 0 {
		sb.WriteString(fmt.Sprintf(" [+%d collapsed]", len(n.Children)))
		sb.WriteString("\n")
		return
	}
	sb.WriteString("\n")

	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}

	for i, childID := range n.Children {
		child, ok := s.Get(childID)
		if !ok {
			continue
		}
		renderNode(sb, s, child, childPrefix, i == len(n.Children)-1)
	}
}
