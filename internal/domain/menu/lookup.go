package menu

import "github.com/bnema/selsearch/internal/domain/entity"

// FindNode returns the node with the given id and its parent group, which is
// nil for top-level nodes.
func FindNode(tree entity.Tree, id string) (node entity.Node, parent *entity.Group, ok bool) {
	tree.Walk(func(n entity.Node, p *entity.Group) bool {
		if n.NodeID() == id {
			node, parent, ok = n, p, true
			return false
		}
		return true
	})
	return node, parent, ok
}

// FindSearch returns the search entry with the given id anywhere in the tree.
func FindSearch(tree entity.Tree, id string) (*entity.Search, bool) {
	node, _, ok := FindNode(tree, id)
	if !ok {
		return nil, false
	}
	s, ok := node.(*entity.Search)
	return s, ok
}

// FindParentGroup returns the group directly containing childID.
func FindParentGroup(tree entity.Tree, childID string) (*entity.Group, bool) {
	_, parent, ok := FindNode(tree, childID)
	if !ok || parent == nil {
		return nil, false
	}
	return parent, true
}

// FindGroup returns the top-level group with the given id.
func FindGroup(tree entity.Tree, id string) (*entity.Group, bool) {
	for _, node := range tree {
		if g, ok := node.(*entity.Group); ok && g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// Searches returns every search entry in walk order.
func Searches(tree entity.Tree) []*entity.Search {
	var out []*entity.Search
	tree.Walk(func(n entity.Node, _ *entity.Group) bool {
		if s, ok := n.(*entity.Search); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}
