package varrec

// Node is a single variable-length record in the tree: a textual key, an
// optional value payload, and an ordered sequence of children. It
// generalizes pelican.VsBlock (the teacher's read-only section-reader view
// of the same wire shape) into an owned, mutable, writable structure.
//
// Each node owns its children and its value buffer; a node's lifetime is
// bounded by its parent's except via explicit deletion (spec.md §3.1).
// Nodes do not get re-parented — there is no Node.SetParent — matching the
// invariant that structural changes happen only through this package's
// Add/Delete operations.
type Node struct {
	dialect  Dialect
	name     string
	dataType DataType
	value    []byte
	children []*Node
	parent   *Node
}

// NewRoot creates a detached root node for a fresh tree of the given dialect.
func NewRoot(dialect Dialect, name string) *Node {
	return &Node{dialect: dialect, name: name, dataType: Binary}
}

// Dialect reports the dialect of the tree this node belongs to.
func (n *Node) Dialect() Dialect { return n.dialect }

// Name returns the node's key.
func (n *Node) Name() string { return n.name }

// SetName renames the node in place.
func (n *Node) SetName(name string) { n.name = name }

// DataType returns the node's wType. For ANSI16 trees this is always
// Binary regardless of what was set, since the 16-bit dialect has no wire
// representation for it.
func (n *Node) DataType() DataType {
	if n.dialect == ANSI16 {
		return Binary
	}
	return n.dataType
}

// SetDataType sets the node's wType. Only meaningful for Wide32 trees.
func (n *Node) SetDataType(t DataType) { n.dataType = t }

// Value returns the node's raw value buffer, or nil if it carries none.
func (n *Node) Value() []byte { return n.value }

// SetValue replaces the node's value buffer with a copy of v.
func (n *Node) SetValue(v []byte) {
	if v == nil {
		n.value = nil
		return
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	n.value = cp
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in wire order. The returned slice
// is owned by the node; callers must not mutate it directly.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the child at index i, or an IndexOutOfBounds error.
func (n *Node) ChildAt(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, indexOutOfBounds(i, len(n.children))
	}
	return n.children[i], nil
}

// FindChild returns the first direct child whose name matches (ASCII
// case-insensitively), or nil if none does.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if asciiEqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

// IndexOfChild returns the index of the first direct child whose name
// matches (ASCII case-insensitively), or -1 if none does.
func (n *Node) IndexOfChild(name string) int {
	for i, c := range n.children {
		if asciiEqualFold(c.name, name) {
			return i
		}
	}
	return -1
}

// AddChild appends a new child with the given name and data type, created
// in the same dialect as its parent, and returns it.
func (n *Node) AddChild(name string, dataType DataType) *Node {
	child := &Node{dialect: n.dialect, name: name, dataType: dataType, parent: n}
	n.children = append(n.children, child)
	return child
}

// EnsureChild returns the first direct child named name (case-insensitive),
// creating an empty one of the given data type if none exists yet. This is
// the primitive the version-info model's required-shape repair builds on.
func (n *Node) EnsureChild(name string, dataType DataType) *Node {
	if c := n.FindChild(name); c != nil {
		return c
	}
	return n.AddChild(name, dataType)
}

// DeleteChildAt removes the child at index i, unlinking it from the tree.
func (n *Node) DeleteChildAt(i int) error {
	if i < 0 || i >= len(n.children) {
		return indexOutOfBounds(i, len(n.children))
	}
	n.children[i].parent = nil
	n.children = append(n.children[:i], n.children[i+1:]...)
	return nil
}

// ClearChildren removes all direct children.
func (n *Node) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}
