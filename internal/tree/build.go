package tree

import "fmt"

// ErrUnsupportedValue is returned by Build when a leaf value's Go type has
// no Scalar representation.
type ErrUnsupportedValue struct {
	Value any
}

func (e *ErrUnsupportedValue) Error() string {
	return fmt.Sprintf("tree: unsupported value of type %T", e.Value)
}

// Build constructs a Tree from a native Go value decoded by a parser
// (encoding/json, gopkg.in/yaml.v3, encoding/csv — see the factory
// package). Accepted shapes: map[string]any, []any, and scalars (nil,
// bool, string, int64, float64).
func Build(root any) (*Tree, error) {
	t := &Tree{}
	id, err := t.insert(noParent, "", 0, false, root)
	if err != nil {
		return nil, err
	}
	t.root = id
	return t, nil
}

func (t *Tree) insert(parent NodeID, key string, index int, hasIndex bool, value any) (NodeID, error) {
	switch v := value.(type) {
	case map[string]any:
		id := t.alloc(nodeData{kind: Mapping, parent: parent, key: key, index: index, hasIndex: hasIndex})
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		// map[string]any has no stable order; callers that need
		// insertion order (YAML/JSON with ordering guarantees) should
		// build through BuildOrdered instead.
		children := make([]NodeID, 0, len(keys))
		mapKeys := make([]string, 0, len(keys))
		for _, k := range keys {
			childID, err := t.insert(id, k, 0, false, v[k])
			if err != nil {
				return 0, err
			}
			children = append(children, childID)
			mapKeys = append(mapKeys, k)
		}
		t.arena[id].children = children
		t.arena[id].mapKeys = mapKeys
		return id, nil
	case []any:
		id := t.alloc(nodeData{kind: Sequence, parent: parent, key: key, index: index, hasIndex: hasIndex})
		children := make([]NodeID, 0, len(v))
		for i, item := range v {
			childID, err := t.insert(id, "", i, true, item)
			if err != nil {
				return 0, err
			}
			children = append(children, childID)
		}
		t.arena[id].children = children
		return id, nil
	case nil, bool, string, int64, float64, int:
		scalar := v
		if iv, ok := v.(int); ok {
			scalar = int64(iv)
		}
		id := t.alloc(nodeData{kind: Scalar, parent: parent, key: key, index: index, hasIndex: hasIndex, scalar: scalar})
		return id, nil
	default:
		return 0, &ErrUnsupportedValue{Value: value}
	}
}

func (t *Tree) alloc(d nodeData) NodeID {
	t.arena = append(t.arena, d)
	return NodeID(len(t.arena) - 1)
}

// OrderedMapping is a mapping value that preserves explicit key order,
// used by ordered decoders (the YAML factory path) that cannot rely on a
// Go map's iteration order.
type OrderedMapping struct {
	Keys   []string
	Values []any
}

// BuildOrdered is like Build but treats *OrderedMapping as mapping nodes,
// preserving caller-supplied key order instead of re-sorting or relying on
// map iteration.
func BuildOrdered(root any) (*Tree, error) {
	t := &Tree{}
	id, err := t.insertOrdered(noParent, "", 0, false, root)
	if err != nil {
		return nil, err
	}
	t.root = id
	return t, nil
}

func (t *Tree) insertOrdered(parent NodeID, key string, index int, hasIndex bool, value any) (NodeID, error) {
	switch v := value.(type) {
	case *OrderedMapping:
		id := t.alloc(nodeData{kind: Mapping, parent: parent, key: key, index: index, hasIndex: hasIndex})
		children := make([]NodeID, 0, len(v.Keys))
		mapKeys := make([]string, 0, len(v.Keys))
		for i, k := range v.Keys {
			childID, err := t.insertOrdered(id, k, 0, false, v.Values[i])
			if err != nil {
				return 0, err
			}
			children = append(children, childID)
			mapKeys = append(mapKeys, k)
		}
		t.arena[id].children = children
		t.arena[id].mapKeys = mapKeys
		return id, nil
	case []any:
		id := t.alloc(nodeData{kind: Sequence, parent: parent, key: key, index: index, hasIndex: hasIndex})
		children := make([]NodeID, 0, len(v))
		for i, item := range v {
			childID, err := t.insertOrdered(id, "", i, true, item)
			if err != nil {
				return 0, err
			}
			children = append(children, childID)
		}
		t.arena[id].children = children
		return id, nil
	default:
		return t.insert(parent, key, index, hasIndex, value)
	}
}
