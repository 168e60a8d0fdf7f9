package tree

// --- Mutation operations ---
//
// The lenient behaviors here are deliberate and documented, not bugs to
// fix silently: add accepts a dangling parentId (the node is created but
// unreachable from the root), a second parentless add replaces the root
// pointer without deleting the old subtree, and move does not check for
// moves under the node's own descendants.

// AddParams holds the input for creating a new node.
type AddParams struct {
	Content  string
	Type     NodeType
	ParentID *string
	Meta     *Metadata
}

// Add creates a new node and returns it. If ParentID resolves, the node
// is appended to that parent's children with level parent.Level+1. If
// ParentID is set but does not resolve, the dangling reference is
// recorded and the node is linked into no parent (a latent orphan at
// level 0). If ParentID is nil, the node becomes the tracked root,
// replacing any previous root pointer.
func (s *Store) Add(p AddParams) *Node {
	now := timeNow()
	n := &Node{
		ID:          s.allocID(),
		Content:     p.Content,
		Type:        p.Type,
		ParentID:    p.ParentID,
		Children:    []string{},
		Expanded:    true,
		Evidence:    []string{},
		Assumptions: []string{},
		Tags:        []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Meta != nil {
		n.Confidence = p.Meta.Confidence
		n.Priority = p.Meta.Priority
		n.Feasibility = p.Meta.Feasibility
		if p.Meta.Evidence != nil {
			n.Evidence = p.Meta.Evidence
		}
		if p.Meta.Assumptions != nil {
			n.Assumptions = p.Meta.Assumptions
		}
		if p.Meta.Tags != nil {
			n.Tags = p.Meta.Tags
		}
	}

	if p.ParentID == nil {
		s.rootID = n.ID
	} else if parent, ok := s.nodes[*p.ParentID]; ok {
		n.Level = parent.Level + 1
		parent.Children = append(parent.Children, n.ID)
	}

	s.nodes[n.ID] = n
	s.order = append(s.order, n.ID)
	return n
}

// Remove deletes the node and its entire subtree. It returns false only
// when the id does not exist; true otherwise, including when the node
// had no parent linkage. The root pointer is cleared when the removed
// node (or any removed descendant) was the tracked root.
func (s *Store) Remove(id string) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	s.unlinkFromParent(n)
	s.removeSubtree(n)
	return true
}

// removeSubtree deletes n's descendants post-order, then n's own entry.
func (s *Store) removeSubtree(n *Node) {
	for _, childID := range n.Children {
		if child, ok := s.nodes[childID]; ok {
			s.removeSubtree(child)
		}
	}
	delete(s.nodes, n.ID)
	s.dropFromOrder(n.ID)
	if s.rootID == n.ID {
		s.rootID = ""
	}
}

// unlinkFromParent removes n's id from its parent's children list.
// No-op when the parent reference is absent or dangling.
func (s *Store) unlinkFromParent(n *Node) {
	if n.ParentID == nil {
		return
	}
	parent, ok := s.nodes[*n.ParentID]
	if !ok {
		return
	}
	for i, childID := range parent.Children {
		if childID == n.ID {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}

func (s *Store) dropFromOrder(id string) {
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Move reparents a node. With newParentID nil the node becomes the new
// root at level 0. With a newParentID that does not resolve, the move
// fails and the node is left in its original position. Otherwise the
// node is appended to the new parent's children and its level (and
// every descendant's, top-down) is updated. Moving a node under one of
// its own descendants is not checked.
func (s *Store) Move(id string, newParentID *string) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}

	var newParent *Node
	if newParentID != nil {
		newParent, ok = s.nodes[*newParentID]
		if !ok {
			return false
		}
	}

	s.unlinkFromParent(n)

	if newParent == nil {
		n.ParentID = nil
		n.Level = 0
		s.rootID = n.ID
	} else {
		n.ParentID = newParentID
		n.Level = newParent.Level + 1
		newParent.Children = append(newParent.Children, n.ID)
	}

	s.propagateDepth(n)
	return true
}

// Update replaces the node's content and, when meta is non-nil, applies
// it as a full replace of all six optional fields — a field absent from
// meta clears the node's value (clear-on-omit, not merge). Returns
// false only when the id does not exist. UpdatedAt is refreshed.
func (s *Store) Update(id, content string, meta *Metadata) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.Content = content
	if meta != nil {
		n.Confidence = meta.Confidence
		n.Priority = meta.Priority
		n.Feasibility = meta.Feasibility
		n.Evidence = meta.Evidence
		n.Assumptions = meta.Assumptions
		n.Tags = meta.Tags
	}
	n.UpdatedAt = timeNow()
	return true
}
