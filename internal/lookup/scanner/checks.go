// Package scanner provides the rune-level reader and the balanced-segment
// scanner the lookup compiler uses to split a lookup side into alternating
// plain and embedded _kind(..) fragments.
package scanner

// CheckFn reports whether a given rune satisfies some criteria.
type CheckFn func(rune) bool

var (
	IsEOF              = Eq(RuneEOF)
	IsParenthesisLeft  = Eq('(')
	IsParenthesisRight = Eq(')')
)

func Eq(valid rune) CheckFn {
	return func(r rune) bool { return r == valid }
}
