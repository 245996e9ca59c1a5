// Package tree provides the uniform, immutable view over nested mappings,
// ordered sequences, and scalar leaves that the query engine walks.
package tree

import "fmt"

// Kind identifies the shape a Node holds.
type Kind int

const (
	// Mapping is an insertion-ordered association from string keys to
	// child nodes.
	Mapping Kind = iota
	// Sequence is an ordered, zero-based series of child nodes.
	Sequence
	// Scalar is a leaf: int64, float64, bool, string, or nil.
	Scalar
)

func (k Kind) String() string {
	switch k {
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// noParent marks a NodeID slot that has no parent (the root).
const noParent = -1

// NodeID is a stable handle into a Tree's arena.
type NodeID int

// nodeData is the arena-resident representation of one node. Child order is
// authoritative for both mapping and sequence kinds; mapKeys carries the
// key associated with each entry of children for Mapping nodes.
type nodeData struct {
	kind     Kind
	parent   NodeID
	key      string // valid if parent is a Mapping
	index    int    // valid if parent is a Sequence
	hasIndex bool

	children []NodeID // Mapping and Sequence children, in order
	mapKeys  []string // parallel to children, for Mapping kind only

	scalar any // valid only when kind == Scalar
}

// Tree owns every Node reachable from its Root. A Tree is immutable once
// built and may be queried concurrently from multiple goroutines.
type Tree struct {
	arena []nodeData
	root  NodeID
}

// Node is a borrowed view onto one arena slot of a Tree. Node values are
// cheap to copy; they never outlive the Tree that produced them.
type Node struct {
	tree *Tree
	id   NodeID
}

// Root returns the tree's root node.
func (t *Tree) Root() Node {
	return Node{tree: t, id: t.root}
}

// Kind reports the node's shape.
func (n Node) Kind() Kind {
	return n.tree.arena[n.id].kind
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.tree.arena[n.id].parent == noParent
}

// Parent returns the parent node and true, or the zero Node and false if n
// is the root.
func (n Node) Parent() (Node, bool) {
	p := n.tree.arena[n.id].parent
	if p == noParent {
		return Node{}, false
	}
	return Node{tree: n.tree, id: p}, true
}

// Key returns the node's key within its parent mapping, and true if the
// parent is a Mapping.
func (n Node) Key() (string, bool) {
	d := n.tree.arena[n.id]
	if d.parent == noParent {
		return "", false
	}
	if n.tree.arena[d.parent].kind != Mapping {
		return "", false
	}
	return d.key, true
}

// Index returns the node's index within its parent sequence, and true if
// the parent is a Sequence.
func (n Node) Index() (int, bool) {
	d := n.tree.arena[n.id]
	if !d.hasIndex {
		return 0, false
	}
	return d.index, true
}

// Scalar returns the leaf value. It panics if n is not a Scalar; callers
// should check Kind first.
func (n Node) Scalar() any {
	d := n.tree.arena[n.id]
	if d.kind != Scalar {
		panic(fmt.Sprintf("tree: Scalar called on a %s node", d.kind))
	}
	return d.scalar
}

// Keys returns the ordered key list of a Mapping node. It returns nil for
// non-Mapping nodes.
func (n Node) Keys() []string {
	d := n.tree.arena[n.id]
	if d.kind != Mapping {
		return nil
	}
	out := make([]string, len(d.mapKeys))
	copy(out, d.mapKeys)
	return out
}

// Child returns the Mapping child named key, and true if present.
func (n Node) Child(key string) (Node, bool) {
	d := n.tree.arena[n.id]
	if d.kind != Mapping {
		return Node{}, false
	}
	for i, k := range d.mapKeys {
		if k == key {
			return Node{tree: n.tree, id: d.children[i]}, true
		}
	}
	return Node{}, false
}

// Elem returns the i'th element of a Sequence node, and true if in range.
func (n Node) Elem(i int) (Node, bool) {
	d := n.tree.arena[n.id]
	if d.kind != Sequence || i < 0 || i >= len(d.children) {
		return Node{}, false
	}
	return Node{tree: n.tree, id: d.children[i]}, true
}

// Len returns the number of children of a Mapping or Sequence node, or 0
// for a Scalar.
func (n Node) Len() int {
	return len(n.tree.arena[n.id].children)
}

// Children returns a node's direct children in order. It carries no keys:
// for a Mapping, the i'th child belongs to the i'th entry of Keys().
func (n Node) Children() []Node {
	d := n.tree.arena[n.id]
	out := make([]Node, len(d.children))
	for i, id := range d.children {
		out[i] = Node{tree: n.tree, id: id}
	}
	return out
}

// EnclosingRecord walks up from n to the nearest ancestor Mapping that is
// itself a child of a Sequence, falling back to the root Mapping if no such
// ancestor exists. This implements the "enclosing record" rule a
// select-statement predicate is evaluated against.
func (n Node) EnclosingRecord() Node {
	cur := n
	var lastMapping Node
	haveMapping := false
	for {
		if cur.Kind() == Mapping {
			lastMapping = cur
			haveMapping = true
			if parent, ok := cur.Parent(); ok && parent.Kind() == Sequence {
				return cur
			}
		}
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		cur = parent
	}
	if haveMapping {
		return lastMapping
	}
	return n.tree.Root()
}

// Native rebuilds a plain Go value (map[string]any / []any / scalar) from
// the node, suitable for JSON re-encoding or building an "enclosing
// record" fragment to hand to the select-statement predicate.
func (n Node) Native() any {
	d := n.tree.arena[n.id]
	switch d.kind {
	case Mapping:
		out := make(map[string]any, len(d.children))
		for i, id := range d.children {
			out[d.mapKeys[i]] = (Node{tree: n.tree, id: id}).Native()
		}
		return out
	case Sequence:
		out := make([]any, len(d.children))
		for i, id := range d.children {
			out[i] = (Node{tree: n.tree, id: id}).Native()
		}
		return out
	default:
		return d.scalar
	}
}
