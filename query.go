// Copyright (c) HashiCorp, Inc.

package query

import (
	"strconv"
	"strings"

	"github.com/Geeks-Trident-LLC/dlquery/internal/lookup"
	"github.com/Geeks-Trident-LLC/dlquery/internal/predicate"
	"github.com/Geeks-Trident-LLC/dlquery/internal/selectstmt"
	"github.com/Geeks-Trident-LLC/dlquery/internal/tree"
)

// Find compiles lookupStr and selectStatement (using the package's default
// compile cache) and walks root depth-first, returning every projected
// match in traversal order.
func Find(root *tree.Node, lookupStr string, selectStatement string, opts ...Option) ([]any, error) {
	return defaultCache.Find(root, lookupStr, selectStatement, opts...)
}

// Find is the CompileCache-scoped form of the package-level Find, letting
// a caller share one cache across many queries.
func (c *CompileCache) Find(root *tree.Node, lookupStr string, selectStatement string, opts ...Option) ([]any, error) {
	o, err := getFindOpts(opts...)
	if err != nil {
		return nil, err
	}

	compiledLookup, err := c.compileLookup(lookupStr)
	if err != nil {
		return nil, err
	}
	compiledSelect, err := c.compileSelect(selectStatement)
	if err != nil {
		return nil, err
	}

	predOpts := predicate.Options{Valid: true, OnException: o.strictPredicates}

	var results []any
	var walkErr error

	var walk func(n tree.Node)
	walk = func(n tree.Node) {
		if walkErr != nil {
			return
		}
		switch n.Kind() {
		case tree.Mapping:
			for _, k := range n.Keys() {
				child, _ := n.Child(k)
				if compiledLookup.Left.MatchString(k) {
					included, value, err := evaluateCandidate(compiledLookup, child, predOpts)
					if err != nil {
						walkErr = &QueryError{Kind: PredicateArgument, Op: "Find", Err: err}
						return
					}
					if included {
						record := nativeRecord(child.EnclosingRecord())
						if compiledSelect.Predicate != nil {
							satisfied, err := compiledSelect.Predicate.Evaluate(record, predOpts)
							if err != nil {
								walkErr = &QueryError{Kind: PredicateArgument, Op: "Find", Err: err}
								return
							}
							included = satisfied
						}
						if included {
							results = append(results, project(compiledSelect.Columns, value, record))
						}
					}
				}
				walk(child)
				if walkErr != nil {
					return
				}
			}
		case tree.Sequence:
			for i := 0; i < n.Len(); i++ {
				elem, _ := n.Elem(i)
				walk(elem)
				if walkErr != nil {
					return
				}
			}
		}
	}
	walk(*root)

	if walkErr != nil {
		return nil, walkErr
	}
	return results, nil
}

// evaluateCandidate applies the lookup's optional right-side constraint to
// a matched child: a right side requires a scalar child and its
// satisfaction; a non-scalar child with a right side never qualifies.
func evaluateCandidate(compiled *lookup.Compiled, child tree.Node, opts predicate.Options) (bool, any, error) {
	if child.Kind() == tree.Scalar {
		value := child.Scalar()
		if !compiled.HasRight() {
			return true, value, nil
		}
		ok, err := compiled.Right.Satisfies(value, opts)
		if err != nil {
			return false, nil, err
		}
		return ok, value, nil
	}
	if compiled.HasRight() {
		return false, nil, nil
	}
	return true, child.Native(), nil
}

func nativeRecord(n tree.Node) map[string]any {
	if record, ok := n.Native().(map[string]any); ok {
		return record
	}
	return map[string]any{}
}

func project(columns selectstmt.ColumnSpec, value any, record map[string]any) any {
	if columns.Kind == selectstmt.ZeroSelect {
		return value
	}
	return columns.Project(record)
}

// Get resolves index against node: an integer or stringified
// integer indexes a sequence (negative counts from the end; Python-style
// `a:b`/`a:b:c` slice syntax is accepted, with empty endpoints), and a
// plain string keys a mapping. A miss or shape mismatch returns the
// configured default unless WithGetException was given.
func Get(node *tree.Node, index string, opts ...GetOption) (any, error) {
	o, err := getGetOpts(opts...)
	if err != nil {
		return nil, err
	}

	switch node.Kind() {
	case tree.Sequence:
		return getFromSequence(*node, index, o)
	case tree.Mapping:
		if child, ok := node.Child(index); ok {
			return child.Native(), nil
		}
		return failNotFound(o, "Get")
	default:
		return failTreeShape(o, "Get")
	}
}

func getFromSequence(n tree.Node, index string, o getOptions) (any, error) {
	if strings.Contains(index, ":") {
		indices, err := parseSlice(index, n.Len())
		if err != nil {
			return failTreeShape(o, "Get")
		}
		out := make([]any, 0, len(indices))
		for _, i := range indices {
			elem, ok := n.Elem(i)
			if !ok {
				continue
			}
			out = append(out, elem.Native())
		}
		return out, nil
	}

	i, err := strconv.Atoi(index)
	if err != nil {
		return failTreeShape(o, "Get")
	}
	if i < 0 {
		i += n.Len()
	}
	elem, ok := n.Elem(i)
	if !ok {
		return failNotFound(o, "Get")
	}
	return elem.Native(), nil
}

func failTreeShape(o getOptions, op string) (any, error) {
	if o.onException {
		return nil, &QueryError{Kind: TreeShape, Op: op, Err: ErrTreeShape}
	}
	return o.defaultValue, nil
}

func failNotFound(o getOptions, op string) (any, error) {
	if o.onException {
		return nil, &QueryError{Kind: NotFound, Op: op, Err: ErrNotFound}
	}
	return o.defaultValue, nil
}

// parseSlice implements Python's slice.indices(length) algorithm for the
// `a:b` / `a:b:c` syntax, with empty components meaning "use the
// direction-appropriate default".
func parseSlice(spec string, length int) ([]int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, &ErrInvalidSlice{Spec: spec}
	}

	parseComponent := func(s string) (*int, error) {
		if s == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ErrInvalidSlice{Spec: spec}
		}
		return &v, nil
	}

	step := 1
	if len(parts) == 3 && parts[2] != "" {
		v, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, &ErrInvalidSlice{Spec: spec}
		}
		step = v
	}
	if step == 0 {
		return nil, &ErrInvalidSlice{Spec: spec}
	}

	startArg, err := parseComponent(parts[0])
	if err != nil {
		return nil, err
	}
	stopArg, err := parseComponent(parts[1])
	if err != nil {
		return nil, err
	}

	start, stop := sliceIndices(startArg, stopArg, step, length)

	var indices []int
	if step > 0 {
		for i := start; i < stop; i += step {
			indices = append(indices, i)
		}
	} else {
		for i := start; i > stop; i += step {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

func sliceIndices(startArg, stopArg *int, step, length int) (start, stop int) {
	var lower, upper int
	if step > 0 {
		lower, upper = 0, length
	} else {
		lower, upper = -1, length-1
	}

	clamp := func(v int) int {
		if v < 0 {
			v += length
			if v < lower {
				return lower
			}
			return v
		}
		if v < upper {
			return v
		}
		return upper
	}

	if startArg == nil {
		if step < 0 {
			start = upper
		} else {
			start = lower
		}
	} else {
		start = clamp(*startArg)
	}

	if stopArg == nil {
		if step < 0 {
			stop = lower
		} else {
			stop = upper
		}
	} else {
		stop = clamp(*stopArg)
	}
	return start, stop
}
