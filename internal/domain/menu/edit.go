package menu

import (
	"fmt"
	"slices"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// Location addresses a position in the tree. An empty GroupID means the top
// level. A negative Index appends.
type Location struct {
	GroupID string
	Index   int
}

// AddSearch appends a new search entry to the top level or to a group.
func AddSearch(tree entity.Tree, groupID, id string) (entity.Tree, *entity.Search, error) {
	out := tree.Clone()
	search := entity.NewSearch(id, entity.DefaultSearchName, entity.DefaultSearchURL)
	if groupID == "" {
		return append(out, search), search, nil
	}
	group, ok := FindGroup(out, groupID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	group.Items = append(group.Items, search)
	return out, search, nil
}

// AddGroup appends an empty group to the top level.
func AddGroup(tree entity.Tree, id string) (entity.Tree, *entity.Group) {
	group := entity.NewGroup(id, entity.DefaultGroupName)
	return append(tree.Clone(), group), group
}

// AddSeparator appends a separator to the top level or to a group. A list
// already ending with a separator is refused.
func AddSeparator(tree entity.Tree, groupID, id string) (entity.Tree, *entity.Separator, error) {
	out := tree.Clone()
	sep := entity.NewSeparator(id)
	if groupID == "" {
		if n := len(out); n > 0 && out[n-1].Type() == entity.NodeTypeSeparator {
			return nil, nil, ErrConsecutiveSeparator
		}
		return append(out, sep), sep, nil
	}
	group, ok := FindGroup(out, groupID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	if n := len(group.Items); n > 0 && group.Items[n-1].Type() == entity.NodeTypeSeparator {
		return nil, nil, ErrConsecutiveSeparator
	}
	group.Items = append(group.Items, sep)
	return out, sep, nil
}

// Rename sets the name of any node.
func Rename(tree entity.Tree, id, name string) (entity.Tree, error) {
	out := tree.Clone()
	node, _, ok := FindNode(out, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	node.SetNodeName(name)
	return out, nil
}

// SetURL sets the URL template of a search entry.
func SetURL(tree entity.Tree, id, url string) (entity.Tree, error) {
	out := tree.Clone()
	search, err := searchByID(out, id)
	if err != nil {
		return nil, err
	}
	search.URL = url
	return out, nil
}

// SetEncoding sets the query encoding of a search entry.
func SetEncoding(tree entity.Tree, id string, enc entity.QueryEncoding) (entity.Tree, error) {
	if !enc.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, enc)
	}
	out := tree.Clone()
	search, err := searchByID(out, id)
	if err != nil {
		return nil, err
	}
	search.QueryEncoding = enc
	return out, nil
}

func searchByID(tree entity.Tree, id string) (*entity.Search, error) {
	node, _, ok := FindNode(tree, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	search, ok := node.(*entity.Search)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotASearch, id, node.Type())
	}
	return search, nil
}

// Delete removes a node. Deleting a group removes its items with it.
func Delete(tree entity.Tree, id string) (entity.Tree, entity.Node, error) {
	out := tree.Clone()
	node, parent, ok := FindNode(out, id)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if parent == nil {
		out = slices.DeleteFunc(out, func(n entity.Node) bool { return n.NodeID() == id })
	} else {
		parent.Items = slices.DeleteFunc(parent.Items, func(n entity.Leaf) bool { return n.NodeID() == id })
	}
	return out, node, nil
}

// Move relocates a node. The index is interpreted after the node has been
// removed from its current list. Groups cannot be moved into groups.
func Move(tree entity.Tree, id string, to Location) (entity.Tree, error) {
	node, _, ok := FindNode(tree, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if to.GroupID != "" && node.Type() == entity.NodeTypeGroup {
		return nil, fmt.Errorf("%w: cannot move %q into a group", entity.ErrNestedGroup, node.NodeName())
	}
	if to.GroupID != "" {
		if _, ok := FindGroup(tree, to.GroupID); !ok {
			return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, to.GroupID)
		}
	}

	out, removed, err := Delete(tree, id)
	if err != nil {
		return nil, err
	}

	if to.GroupID == "" {
		index, err := insertIndex(to.Index, len(out))
		if err != nil {
			return nil, err
		}
		return slices.Insert(out, index, removed), nil
	}

	group, _ := FindGroup(out, to.GroupID)
	index, err := insertIndex(to.Index, len(group.Items))
	if err != nil {
		return nil, err
	}
	group.Items = slices.Insert(group.Items, index, removed.(entity.Leaf))
	return out, nil
}

func insertIndex(index, length int) (int, error) {
	if index < 0 {
		return length, nil
	}
	if index > length {
		return 0, fmt.Errorf("%w: %d (list has %d items)", ErrIndexOutOfRange, index, length)
	}
	return index, nil
}
