package menu

import (
	"fmt"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// Repair returns a copy of tree in which every node has a non-empty id that
// is unique across the whole tree. Top-level nodes are visited first, then the
// items of each group in top-level order; the first holder of an id keeps it
// and later duplicates or empty ids receive fresh ones from newID.
// The fixed native ids are never kept by a node.
// changed reports whether any id was replaced. The input is not modified.
func Repair(tree entity.Tree, newID IDGenerator) (repaired entity.Tree, changed bool) {
	if newID == nil {
		newID = NewID
	}
	repaired = tree.Clone()
	seen := reservedIDs()

	fix := func(node entity.Node) {
		id := node.NodeID()
		if _, dup := seen[id]; id == "" || dup {
			for {
				id = newID()
				if _, taken := seen[id]; id != "" && !taken {
					break
				}
			}
			node.SetNodeID(id)
			changed = true
		}
		seen[id] = struct{}{}
	}

	for _, node := range repaired {
		fix(node)
	}
	for _, node := range repaired {
		if group, ok := node.(*entity.Group); ok {
			for _, item := range group.Items {
				fix(item)
			}
		}
	}
	return repaired, changed
}

func reservedIDs() map[string]struct{} {
	return map[string]struct{}{
		RootMenuID:         {},
		OptionsSeparatorID: {},
		OptionsMenuID:      {},
	}
}

// Validate reports the first id problem found in tree, or nil.
func Validate(tree entity.Tree) error {
	seen := reservedIDs()
	var err error
	tree.Walk(func(node entity.Node, _ *entity.Group) bool {
		id := node.NodeID()
		if id == "" {
			err = fmt.Errorf("%w: %q has no id", ErrInvalidID, node.NodeName())
			return false
		}
		if _, dup := seen[id]; dup {
			err = fmt.Errorf("%w: duplicate or reserved id %s", ErrInvalidID, id)
			return false
		}
		seen[id] = struct{}{}
		return true
	})
	return err
}
