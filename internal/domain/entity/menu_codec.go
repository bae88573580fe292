package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNestedGroup is returned when a group would be placed inside another group.
	ErrNestedGroup = errors.New("groups cannot contain groups")
	// ErrUnknownNodeType is returned when a node carries an unrecognised type.
	ErrUnknownNodeType = errors.New("unknown node type")
	// ErrInvalidTree is returned when the serialized tree is not an array of nodes.
	ErrInvalidTree = errors.New("menu tree must be an array")
)

// NodeRecord is the serialized shape of a node, shared by the storage value,
// the export file and the sync document.
type NodeRecord struct {
	ID            string        `json:"id" yaml:"id" jsonschema:"description=Unique identifier of the item"`
	Name          string        `json:"name" yaml:"name" jsonschema:"description=Label shown in the menu"`
	URL           *string       `json:"url,omitempty" yaml:"url,omitempty" jsonschema:"description=Search URL template; %s is replaced by the selection"`
	QueryEncoding QueryEncoding `json:"queryEncoding,omitempty" yaml:"queryEncoding,omitempty" jsonschema:"enum=encodeURIComponent,enum=plus,enum=dash,enum=none"`
	Type          NodeType      `json:"type" yaml:"type" jsonschema:"enum=search,enum=separator,enum=group"`
	Items         []NodeRecord  `json:"items,omitempty" yaml:"items,omitempty" jsonschema:"description=Children of a group (searches and separators only)"`
}

// partialRecord keeps track of which keys were present in the input.
type partialRecord struct {
	ID            *string            `json:"id"`
	Name          *string            `json:"name"`
	URL           *string            `json:"url"`
	QueryEncoding *QueryEncoding     `json:"queryEncoding"`
	Type          *NodeType          `json:"type"`
	Items         *[]json.RawMessage `json:"items"`
}

// Records converts the tree into its serialized shape.
func (t Tree) Records() []NodeRecord {
	out := make([]NodeRecord, 0, len(t))
	for _, node := range t {
		out = append(out, recordOf(node))
	}
	return out
}

func recordOf(node Node) NodeRecord {
	rec := NodeRecord{ID: node.NodeID(), Name: node.NodeName(), Type: node.Type()}
	switch n := node.(type) {
	case *Search:
		url := n.URL
		rec.URL = &url
		rec.QueryEncoding = n.QueryEncoding
	case *Group:
		rec.Items = make([]NodeRecord, 0, len(n.Items))
		for _, item := range n.Items {
			rec.Items = append(rec.Items, recordOf(item))
		}
	}
	return rec
}

// TreeFromRecords builds a tree from serialized records. Missing names, URLs
// and encodings are expected to have been filled by the caller.
func TreeFromRecords(records []NodeRecord) (Tree, error) {
	tree := make(Tree, 0, len(records))
	for i, rec := range records {
		node, err := nodeFromRecord(rec, false)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		tree = append(tree, node)
	}
	return tree, nil
}

func nodeFromRecord(rec NodeRecord, nested bool) (Node, error) {
	switch rec.Type {
	case NodeTypeSearch, "":
		s := &Search{ID: rec.ID, Name: rec.Name, URL: DefaultSearchURL, QueryEncoding: rec.QueryEncoding}
		if rec.URL != nil {
			s.URL = *rec.URL
		}
		if s.QueryEncoding == "" {
			s.QueryEncoding = EncodeURIComponent
		}
		return s, nil
	case NodeTypeSeparator:
		return &Separator{ID: rec.ID, Name: rec.Name}, nil
	case NodeTypeGroup:
		if nested {
			return nil, fmt.Errorf("group %q: %w", rec.Name, ErrNestedGroup)
		}
		g := &Group{ID: rec.ID, Name: rec.Name, Items: make([]Leaf, 0, len(rec.Items))}
		for i, child := range rec.Items {
			node, err := nodeFromRecord(child, true)
			if err != nil {
				return nil, fmt.Errorf("group %q item %d: %w", rec.Name, i, err)
			}
			g.Items = append(g.Items, node.(Leaf))
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, rec.Type)
	}
}

// MarshalJSON encodes the tree as the array of node records.
func (t Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Records())
}

// UnmarshalJSON decodes an array of node records. Absent keys are filled with
// defaults: name "Unnamed Item", type "search", the example URL and the
// encodeURIComponent encoding. Ids are left empty for Repair to assign.
func (t *Tree) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return ErrInvalidTree
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}

	records := make([]NodeRecord, 0, len(raw))
	for i, item := range raw {
		rec, err := decodeRecord(item, false)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, rec)
	}

	tree, err := TreeFromRecords(records)
	if err != nil {
		return err
	}
	*t = tree
	return nil
}

func decodeRecord(data json.RawMessage, nested bool) (NodeRecord, error) {
	var p partialRecord
	if err := json.Unmarshal(data, &p); err != nil {
		return NodeRecord{}, err
	}

	rec := NodeRecord{Name: UnnamedItemName, Type: NodeTypeSearch}
	if p.ID != nil {
		rec.ID = *p.ID
	}
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Type != nil {
		rec.Type = *p.Type
	}

	switch rec.Type {
	case NodeTypeSearch:
		url := DefaultSearchURL
		if p.URL != nil {
			url = *p.URL
		}
		rec.URL = &url
		rec.QueryEncoding = EncodeURIComponent
		if p.QueryEncoding != nil {
			rec.QueryEncoding = *p.QueryEncoding
		}
	case NodeTypeSeparator:
	case NodeTypeGroup:
		if nested {
			return NodeRecord{}, fmt.Errorf("group %q: %w", rec.Name, ErrNestedGroup)
		}
		rec.Items = []NodeRecord{}
		if p.Items != nil {
			for i, child := range *p.Items {
				childRec, err := decodeRecord(child, true)
				if err != nil {
					return NodeRecord{}, fmt.Errorf("group %q item %d: %w", rec.Name, i, err)
				}
				rec.Items = append(rec.Items, childRec)
			}
		}
	default:
		return NodeRecord{}, fmt.Errorf("%w: %q", ErrUnknownNodeType, rec.Type)
	}
	return rec, nil
}
