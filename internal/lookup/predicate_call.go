package lookup

import (
	"strings"

	"github.com/Geeks-Trident-LLC/dlquery/internal/matcher"
	"github.com/Geeks-Trident-LLC/dlquery/internal/predicate"
)

// specKind tags which evaluation path a PredicateSpec's right-hand form
// dispatches through.
type specKind int

const (
	specNamed specKind = iota
	specCompareNumber
	specCompare
	specContain
	specBelong
	specCompareVersion
	specCompareSemanticVersion
	specCompareDate
	specCompareTime
	specCompareDatetime
	specMatch
)

// PredicateSpec is the compiled form of a lookup right side written as a
// named predicate call, e.g. is_ipv4_address(), gt(3.5), contain(abc).
type PredicateSpec struct {
	kind    specKind
	named   string
	valid   bool
	op      predicate.CompareOp
	arg     string
	matcher matcher.Matcher
}

// Evaluate runs the compiled predicate against value, applying opts'
// on_exception policy: a parse/compare failure is swallowed to false
// (logged at Info level) unless opts.OnException is set.
func (spec *PredicateSpec) Evaluate(value any, opts predicate.Options) (bool, error) {
	switch spec.kind {
	case specNamed:
		return predicate.Validate(spec.named, value, predicate.Options{Valid: spec.valid, OnException: opts.OnException})
	case specCompareNumber:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.CompareNumber(value, spec.op, spec.arg) })
	case specCompare:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.Compare(value, spec.op, spec.arg) })
	case specContain:
		return guarded(opts, spec.named, func() (bool, error) {
			result, err := predicate.Contain(value, spec.arg)
			if err != nil {
				return false, err
			}
			if !spec.valid {
				result = !result
			}
			return result, nil
		})
	case specBelong:
		return guarded(opts, spec.named, func() (bool, error) {
			result, err := predicate.Belong(value, spec.arg)
			if err != nil {
				return false, err
			}
			if !spec.valid {
				result = !result
			}
			return result, nil
		})
	case specCompareVersion:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.CompareVersion(predicate.Stringify(value), spec.op, spec.arg) })
	case specCompareSemanticVersion:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.CompareSemanticVersion(predicate.Stringify(value), spec.op, spec.arg) })
	case specCompareDate:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.CompareDate(predicate.Stringify(value), spec.op, spec.arg) })
	case specCompareTime:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.CompareTime(predicate.Stringify(value), spec.op, spec.arg) })
	case specCompareDatetime:
		return guarded(opts, spec.named, func() (bool, error) { return predicate.CompareDatetime(predicate.Stringify(value), spec.op, spec.arg) })
	case specMatch:
		return guarded(opts, spec.named, func() (bool, error) {
			result := spec.matcher.MatchString(predicate.Stringify(value))
			if !spec.valid {
				result = !result
			}
			return result, nil
		})
	}
	return false, nil
}

// guarded applies the same swallow-or-propagate policy predicate.WithPolicy
// uses, for the comparator families that live in the lookup package rather
// than the predicate table.
func guarded(opts predicate.Options, name string, fn func() (bool, error)) (bool, error) {
	result, err := fn()
	if err != nil {
		if opts.OnException {
			return false, err
		}
		predicate.Logger.Info("predicate check failed, returning false", "predicate", name, "error", err)
		return false, nil
	}
	return result, nil
}

var compareOpAliases = map[string]predicate.CompareOp{
	"gt": predicate.OpGT, "ge": predicate.OpGE,
	"lt": predicate.OpLT, "le": predicate.OpLE,
	"eq": predicate.OpEQ, "ne": predicate.OpNE,
}

// parsePredicateCall recognizes s as a `<case>(<args>)` named-predicate
// right-hand form, returning ok=false (not an error) when s does not have
// that shape at all, so the caller falls back to compiling s as an
// ordinary matcher.
func parsePredicateCall(s string) (*PredicateSpec, bool, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false, nil
	}
	name := s[:open]
	args := s[open+1 : len(s)-1]
	if name == "" || !isIdentifierName(name) {
		return nil, false, nil
	}

	switch {
	case strings.HasPrefix(name, "is_not_"):
		return &PredicateSpec{kind: specNamed, named: strings.TrimPrefix(name, "is_not_"), valid: false}, true, nil
	case strings.HasPrefix(name, "isnot_"):
		return &PredicateSpec{kind: specNamed, named: strings.TrimPrefix(name, "isnot_"), valid: false}, true, nil
	case strings.HasPrefix(name, "is_"):
		return &PredicateSpec{kind: specNamed, named: strings.TrimPrefix(name, "is_"), valid: true}, true, nil
	}

	if op, ok := compareOpAliases[name]; ok {
		family, payload := predicate.ParseComparatorValue(args)
		switch family {
		case predicate.FamilyVersion:
			return &PredicateSpec{kind: specCompareVersion, op: op, arg: payload, named: name}, true, nil
		case predicate.FamilySemanticVersion:
			return &PredicateSpec{kind: specCompareSemanticVersion, op: op, arg: payload, named: name}, true, nil
		case predicate.FamilyDate:
			return &PredicateSpec{kind: specCompareDate, op: op, arg: payload, named: name}, true, nil
		case predicate.FamilyTime:
			return &PredicateSpec{kind: specCompareTime, op: op, arg: payload, named: name}, true, nil
		case predicate.FamilyDatetime:
			return &PredicateSpec{kind: specCompareDatetime, op: op, arg: payload, named: name}, true, nil
		}
		if (op == predicate.OpEQ || op == predicate.OpNE) && !predicate.LooksNumeric(args) {
			return &PredicateSpec{kind: specCompare, op: op, arg: args, named: name}, true, nil
		}
		return &PredicateSpec{kind: specCompareNumber, op: op, arg: args, named: name}, true, nil
	}

	switch name {
	case "contain", "contains":
		return &PredicateSpec{kind: specContain, arg: args, named: name, valid: true}, true, nil
	case "not_contain", "notcontain":
		return &PredicateSpec{kind: specContain, arg: args, named: name, valid: false}, true, nil
	case "belong", "belongs":
		return &PredicateSpec{kind: specBelong, arg: args, named: name, valid: true}, true, nil
	case "not_belong", "notbelong":
		return &PredicateSpec{kind: specBelong, arg: args, named: name, valid: false}, true, nil
	case "match":
		m, err := matcher.CompileRegex(args, false)
		if err != nil {
			return nil, false, &ErrLookupSyntax{Lookup: s, Reason: err.Error()}
		}
		return &PredicateSpec{kind: specMatch, matcher: m, valid: true, named: name}, true, nil
	case "not_match", "notmatch":
		m, err := matcher.CompileRegex(args, false)
		if err != nil {
			return nil, false, &ErrLookupSyntax{Lookup: s, Reason: err.Error()}
		}
		return &PredicateSpec{kind: specMatch, matcher: m, valid: false, named: name}, true, nil
	}

	return nil, false, nil
}

func isIdentifierName(s string) bool {
	for _, r := range s {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

