// Copyright (c) HashiCorp, Inc.

package selectstmt

import (
	"fmt"

	"github.com/Geeks-Trident-LLC/dlquery/internal/matcher"
	"github.com/Geeks-Trident-LLC/dlquery/internal/predicate"
)

// Atom is a single `key op value` comparison, the leaf of a PredicateTree.
type Atom struct {
	Key    string
	Op     string // canonical spelling from the lexer: is, is_not, eq, ne, lt, le, gt, ge, match, not_match, contain, not_contain, belong, not_belong
	Raw    string // the value literal as written, before family disambiguation
	Family predicate.ValueFamily
	Value  string // Raw with any version(..)/semantic_version(..)/date(..)/time(..)/datetime(..) wrapper stripped
}

// NewAtom builds an Atom from a parsed key/op/value triple, resolving the
// comparator value-disambiguation rule for the lt/le/gt/ge/eq/ne family.
func NewAtom(key, op, rawValue string) *Atom {
	a := &Atom{Key: key, Op: op, Raw: rawValue, Value: rawValue}
	switch op {
	case "lt", "le", "gt", "ge", "eq", "ne":
		family, payload := predicate.ParseComparatorValue(rawValue)
		a.Family = family
		a.Value = payload
	}
	return a
}

// Evaluate resolves Key against record and applies Op, swallowing
// predicate-argument failures to false unless opts.OnException is set. A
// missing key evaluates to false rather than erroring.
func (a *Atom) Evaluate(record map[string]any, opts predicate.Options) (bool, error) {
	value, ok := record[a.Key]
	if !ok {
		return false, nil
	}

	switch a.Op {
	case "is":
		return predicate.Validate(a.Value, value, predicate.Options{Valid: true, OnException: opts.OnException})
	case "is_not":
		return predicate.Validate(a.Value, value, predicate.Options{Valid: false, OnException: opts.OnException})
	case "match":
		return a.evalMatch(value, opts, true)
	case "not_match":
		return a.evalMatch(value, opts, false)
	case "contain":
		return guarded(opts, a.Op, func() (bool, error) { return predicate.Contain(value, a.Value) })
	case "not_contain":
		return guarded(opts, a.Op, func() (bool, error) {
			result, err := predicate.Contain(value, a.Value)
			return !result, err
		})
	case "belong":
		return guarded(opts, a.Op, func() (bool, error) { return predicate.Belong(value, a.Value) })
	case "not_belong":
		return guarded(opts, a.Op, func() (bool, error) {
			result, err := predicate.Belong(value, a.Value)
			return !result, err
		})
	case "lt", "le", "gt", "ge", "eq", "ne":
		return a.evalCompare(value, opts)
	}
	return false, &ErrUnknownOperator{Op: a.Op}
}

func (a *Atom) evalMatch(value any, opts predicate.Options, wantMatch bool) (bool, error) {
	return guarded(opts, a.Op, func() (bool, error) {
		m, err := matcher.CompileRegex(a.Value, false)
		if err != nil {
			return false, err
		}
		result := m.MatchString(predicate.Stringify(value))
		if !wantMatch {
			result = !result
		}
		return result, nil
	})
}

func (a *Atom) evalCompare(value any, opts predicate.Options) (bool, error) {
	op := predicate.CompareOp(a.Op)
	switch a.Family {
	case predicate.FamilyVersion:
		return guarded(opts, a.Op, func() (bool, error) { return predicate.CompareVersion(predicate.Stringify(value), op, a.Value) })
	case predicate.FamilySemanticVersion:
		return guarded(opts, a.Op, func() (bool, error) { return predicate.CompareSemanticVersion(predicate.Stringify(value), op, a.Value) })
	case predicate.FamilyDate:
		return guarded(opts, a.Op, func() (bool, error) { return predicate.CompareDate(predicate.Stringify(value), op, a.Value) })
	case predicate.FamilyTime:
		return guarded(opts, a.Op, func() (bool, error) { return predicate.CompareTime(predicate.Stringify(value), op, a.Value) })
	case predicate.FamilyDatetime:
		return guarded(opts, a.Op, func() (bool, error) { return predicate.CompareDatetime(predicate.Stringify(value), op, a.Value) })
	}

	if (op == predicate.OpEQ || op == predicate.OpNE) && !predicate.LooksNumeric(a.Value) {
		return guarded(opts, a.Op, func() (bool, error) { return predicate.Compare(value, op, a.Value) })
	}
	return guarded(opts, a.Op, func() (bool, error) { return predicate.CompareNumber(value, op, a.Value) })
}

// guarded mirrors internal/lookup's helper of the same shape: a
// predicate-argument failure is swallowed to false (logged at Info level)
// unless opts.OnException requests propagation.
func guarded(opts predicate.Options, name string, fn func() (bool, error)) (bool, error) {
	result, err := fn()
	if err != nil {
		if opts.OnException {
			return false, err
		}
		predicate.Logger.Info("atom evaluation failed, returning false", "op", name, "error", err)
		return false, nil
	}
	return result, nil
}

// connective is "and" or "or", the two interior-node kinds a PredicateTree
// supports.
type connective string

const (
	andConnective connective = "and"
	orConnective  connective = "or"
)

// PredicateTree is a left-linear binary tree of atomic comparisons joined
// by And/Or. A nil tree evaluates to true (no WHERE clause at all).
type PredicateTree struct {
	atom  *Atom
	op    connective
	left  *PredicateTree
	right *PredicateTree
}

// Leaf wraps a single atom as a PredicateTree.
func Leaf(a *Atom) *PredicateTree {
	return &PredicateTree{atom: a}
}

// Join builds the interior node `left op right`.
func Join(left *PredicateTree, op connective, right *PredicateTree) *PredicateTree {
	return &PredicateTree{op: op, left: left, right: right}
}

// Evaluate walks the tree against record, short-circuiting left-to-right so
// a cheap left side can skip a costly right side.
func (t *PredicateTree) Evaluate(record map[string]any, opts predicate.Options) (bool, error) {
	if t == nil {
		return true, nil
	}
	if t.atom != nil {
		return t.atom.Evaluate(record, opts)
	}
	left, err := t.left.Evaluate(record, opts)
	if err != nil {
		return false, err
	}
	if t.op == andConnective && !left {
		return false, nil
	}
	if t.op == orConnective && left {
		return true, nil
	}
	return t.right.Evaluate(record, opts)
}

// ErrUnknownOperator is a defensive *select-syntax* error for an Atom whose
// operator the parser accepted lexically but Evaluate does not recognize;
// the parser never constructs such an Atom.
type ErrUnknownOperator struct {
	Op string
}

func (e *ErrUnknownOperator) Error() string {
	return fmt.Sprintf("selectstmt: unknown operator %q", e.Op)
}
