package entity

// NodeType is the discriminator stored in the "type" field of a menu node.
type NodeType string

const (
	NodeTypeSearch    NodeType = "search"
	NodeTypeSeparator NodeType = "separator"
	NodeTypeGroup     NodeType = "group"
)

// QueryEncoding selects how selected text is formatted before it replaces
// the placeholder of a search URL.
type QueryEncoding string

const (
	EncodeURIComponent QueryEncoding = "encodeURIComponent"
	EncodePlus         QueryEncoding = "plus"
	EncodeDash         QueryEncoding = "dash"
	EncodeNone         QueryEncoding = "none"
)

// QueryEncodings lists the encodings in the order they are offered to users.
func QueryEncodings() []QueryEncoding {
	return []QueryEncoding{EncodeURIComponent, EncodePlus, EncodeDash, EncodeNone}
}

// Valid reports whether e is one of the known encodings.
func (e QueryEncoding) Valid() bool {
	switch e {
	case EncodeURIComponent, EncodePlus, EncodeDash, EncodeNone:
		return true
	}
	return false
}

// Label returns a human readable description of the encoding.
func (e QueryEncoding) Label() string {
	switch e {
	case EncodePlus:
		return "Replace spaces with +"
	case EncodeDash:
		return "Replace spaces with -"
	case EncodeNone:
		return "No encoding (spaces as is)"
	default:
		return "Encode URI Component (%20)"
	}
}

const (
	// QueryPlaceholder is replaced by the formatted selection in search URLs.
	QueryPlaceholder = "%s"

	// SearchEverywhereName marks, together with an empty URL, the fan-out item of a group.
	SearchEverywhereName = "Search everywhere"

	DefaultSearchName  = "New Engine"
	DefaultGroupName   = "New Group"
	DefaultSearchURL   = "https://example.com/search?q=%s"
	SeparatorName      = "--- Separator ---"
	UnnamedItemName    = "Unnamed Item"
	DefaultEncodingKey = EncodeURIComponent
)

// Node is one entry of the menu tree: a *Search, a *Separator or a *Group.
type Node interface {
	NodeID() string
	SetNodeID(id string)
	NodeName() string
	SetNodeName(name string)
	Type() NodeType
	cloneNode() Node
}

// Leaf is a node that may live inside a group. Only *Search and *Separator
// implement it, which keeps the tree two levels deep.
type Leaf interface {
	Node
	cloneLeaf() Leaf
}

// Search opens URL with the formatted selection.
type Search struct {
	ID            string
	Name          string
	URL           string
	QueryEncoding QueryEncoding
}

// NewSearch creates a search entry with the default encoding.
func NewSearch(id, name, url string) *Search {
	return &Search{
		ID:            id,
		Name:          name,
		URL:           url,
		QueryEncoding: EncodeURIComponent,
	}
}

func (s *Search) NodeID() string          { return s.ID }
func (s *Search) SetNodeID(id string)     { s.ID = id }
func (s *Search) NodeName() string        { return s.Name }
func (s *Search) SetNodeName(name string) { s.Name = name }
func (*Search) Type() NodeType            { return NodeTypeSearch }
func (s *Search) cloneNode() Node         { return s.cloneLeaf() }
func (s *Search) cloneLeaf() Leaf {
	c := *s
	return &c
}

// IsSearchEverywhere reports whether the entry fans out to its group siblings.
func (s *Search) IsSearchEverywhere() bool {
	return s.Name == SearchEverywhereName && s.URL == ""
}

// Separator renders as a visual rule. Name is informational only.
type Separator struct {
	ID   string
	Name string
}

// NewSeparator creates a separator with the conventional name.
func NewSeparator(id string) *Separator {
	return &Separator{ID: id, Name: SeparatorName}
}

func (s *Separator) NodeID() string          { return s.ID }
func (s *Separator) SetNodeID(id string)     { s.ID = id }
func (s *Separator) NodeName() string        { return s.Name }
func (s *Separator) SetNodeName(name string) { s.Name = name }
func (*Separator) Type() NodeType            { return NodeTypeSeparator }
func (s *Separator) cloneNode() Node         { return s.cloneLeaf() }
func (s *Separator) cloneLeaf() Leaf {
	c := *s
	return &c
}

// Group is a submenu holding searches and separators.
type Group struct {
	ID    string
	Name  string
	Items []Leaf
}

// NewGroup creates an empty group.
func NewGroup(id, name string) *Group {
	return &Group{ID: id, Name: name, Items: []Leaf{}}
}

func (g *Group) NodeID() string          { return g.ID }
func (g *Group) SetNodeID(id string)     { g.ID = id }
func (g *Group) NodeName() string        { return g.Name }
func (g *Group) SetNodeName(name string) { g.Name = name }
func (*Group) Type() NodeType            { return NodeTypeGroup }
func (g *Group) cloneNode() Node {
	c := &Group{ID: g.ID, Name: g.Name, Items: make([]Leaf, len(g.Items))}
	for i, item := range g.Items {
		c.Items[i] = item.cloneLeaf()
	}
	return c
}

// Tree is the ordered list of top-level nodes.
type Tree []Node

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, node := range t {
		out[i] = node.cloneNode()
	}
	return out
}

// Walk visits every node in tree order: each top-level node, followed by the
// items of a group right after the group itself. parent is nil for top-level
// nodes. Returning false stops the walk.
func (t Tree) Walk(fn func(node Node, parent *Group) bool) {
	for _, node := range t {
		if !fn(node, nil) {
			return
		}
		group, ok := node.(*Group)
		if !ok {
			continue
		}
		for _, item := range group.Items {
			if !fn(item, group) {
				return
			}
		}
	}
}

// Count returns the number of nodes in the tree, group items included.
func (t Tree) Count() int {
	n := 0
	t.Walk(func(Node, *Group) bool {
		n++
		return true
	})
	return n
}

// IDs returns every node id in walk order.
func (t Tree) IDs() []string {
	ids := make([]string, 0, len(t))
	t.Walk(func(node Node, _ *Group) bool {
		ids = append(ids, node.NodeID())
		return true
	})
	return ids
}
