// Package lookup compiles a lookup string — a key-matching pattern with an
// optional value constraint — into a left matcher and an optional right
// side.
package lookup

import (
	"github.com/Geeks-Trident-LLC/dlquery/internal/matcher"
	"github.com/Geeks-Trident-LLC/dlquery/internal/predicate"
)

// RightSide is the optional constraint after a lookup's separating '=':
// either a plain matcher (text/wildcard/regex) or a named predicate call.
// Exactly one of Matcher or Predicate is set.
type RightSide struct {
	Matcher   *matcher.Matcher
	Predicate *PredicateSpec
}

// Satisfies reports whether value satisfies this right side, applying
// opts' on_exception policy to any predicate-argument failure.
func (r *RightSide) Satisfies(value any, opts predicate.Options) (bool, error) {
	if r.Predicate != nil {
		return r.Predicate.Evaluate(value, opts)
	}
	return r.Matcher.MatchString(predicate.Stringify(value)), nil
}

// Compiled is the compiled form of a lookup string: a left key matcher and
// an optional right value constraint.
type Compiled struct {
	Left  matcher.Matcher
	Right *RightSide
}

// HasRight reports whether the lookup carried a right side at all.
func (c *Compiled) HasRight() bool { return c.Right != nil }

// Compile parses and compiles a non-empty lookup string: locate the
// first unescaped, non-embedded '=' as the left/right separator,
// compile the left side by the segment algorithm, and, if present, compile
// the right side either as a named predicate call or by the same segment
// algorithm.
func Compile(lookup string) (*Compiled, error) {
	if lookup == "" {
		return nil, &ErrLookupSyntax{Lookup: lookup, Reason: "empty lookup"}
	}

	leftRaw := lookup
	var rightRaw string
	hasRight := false
	if idx, ok := findSeparator(lookup); ok {
		leftRaw, rightRaw = lookup[:idx], lookup[idx+1:]
		hasRight = true
	}

	left, err := compileSide(unescapeEquals(leftRaw))
	if err != nil {
		return nil, err
	}

	compiled := &Compiled{Left: left}
	if !hasRight {
		return compiled, nil
	}

	rightRaw = unescapeEquals(rightRaw)
	if spec, ok, err := parsePredicateCall(rightRaw); err != nil {
		return nil, err
	} else if ok {
		compiled.Right = &RightSide{Predicate: spec}
		return compiled, nil
	}

	rightMatcher, err := compileSide(rightRaw)
	if err != nil {
		return nil, err
	}
	compiled.Right = &RightSide{Matcher: &rightMatcher}
	return compiled, nil
}
