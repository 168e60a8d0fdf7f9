package tree

import "fmt"

// Store owns the node collection and the root pointer. It allocates
// identifiers (strictly increasing, never reused, even after deletion)
// and provides the bookkeeping shared by the mutation operations.
type Store struct {
	nodes  map[string]*Node
	order  []string // creation order of live node ids, for deterministic traversal
	rootID string   // "" when no root is tracked
	nextID int
}

// NewStore creates an empty tree store.
func NewStore() *Store {
	return &Store{
		nodes:  make(map[string]*Node),
		nextID: 1,
	}
}

// allocID returns a fresh identifier. Removed ids are never resurrected.
func (s *Store) allocID() string {
	id := fmt.Sprintf("node_%d", s.nextID)
	s.nextID++
	return id
}

// Get returns the node with the given id, if present.
func (s *Store) Get(id string) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Root returns the tracked root node, if any.
func (s *Store) Root() (*Node, bool) {
	if s.rootID == "" {
		return nil, false
	}
	return s.Get(s.rootID)
}

// RootID returns the tracked root id, or "" when the tree has no root.
func (s *Store) RootID() string {
	return s.rootID
}

// Len returns the number of nodes in the store, including nodes that
// are unreachable from the root.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Nodes returns all nodes in creation order.
func (s *Store) Nodes() []*Node {
	out := make([]*Node, 0, len(s.order))
	for _, id := range s.order {
		if n, ok := s.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// NodesOfType returns all nodes of the given type, in creation order.
func (s *Store) NodesOfType(t NodeType) []*Node {
	var out []*Node
	for _, n := range s.Nodes() {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// CountByType returns the number of nodes of the given type.
func (s *Store) CountByType(t NodeType) int {
	count := 0
	for _, n := range s.Nodes() {
		if n.Type == t {
			count++
		}
	}
	return count
}

// propagateDepth recomputes the cached level of every descendant of n,
// top-down. Called after a move so that invariant "level matches
// ancestry" holds synchronously, not lazily.
func (s *Store) propagateDepth(n *Node) {
	for _, childID := range n.Children {
		child, ok := s.nodes[childID]
		if !ok {
			continue
		}
		child.Level = n.Level + 1
		s.propagateDepth(child)
	}
}
