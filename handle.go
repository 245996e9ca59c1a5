// Copyright (c) HashiCorp, Inc.

package query

import "github.com/Geeks-Trident-LLC/dlquery/internal/tree"

// Handle wraps a decoded *tree.Tree with the Find/Get surface, so the
// factory package's constructors can return one value instead of a bare
// tree plus a root node.
type Handle struct {
	tree *tree.Tree
}

// NewHandle wraps t, ready to query.
func NewHandle(t *tree.Tree) *Handle {
	return &Handle{tree: t}
}

// Find runs query.Find against the handle's root, sharing the package's
// default compile cache.
func (h *Handle) Find(lookup string, selectStatement string, opts ...Option) ([]any, error) {
	root := h.tree.Root()
	return Find(&root, lookup, selectStatement, opts...)
}

// Get runs query.Get against the handle's root.
func (h *Handle) Get(index string, opts ...GetOption) (any, error) {
	root := h.tree.Root()
	return Get(&root, index, opts...)
}

// Root returns the handle's tree root, for callers that need direct
// tree.Node access.
func (h *Handle) Root() tree.Node {
	return h.tree.Root()
}
