// Package matcher compiles text, wildcard, and regex pattern fragments
// into anchored, optionally case-insensitive regular expressions.
package matcher

import (
	"regexp"
	"strings"
)

// Matcher is a compiled, anchored regular expression.
type Matcher struct {
	re *regexp.Regexp
}

// MatchString reports whether s satisfies the compiled pattern in full.
func (m Matcher) MatchString(s string) bool {
	return m.re.MatchString(s)
}

// String returns the underlying regex source, useful for diagnostics and
// for compile-idempotence tests.
func (m Matcher) String() string {
	return m.re.String()
}

func anchor(body string, ignoreCase bool) string {
	var b strings.Builder
	if ignoreCase {
		b.WriteString("(?i)")
	}
	b.WriteByte('^')
	b.WriteString(body)
	b.WriteByte('$')
	return b.String()
}

func compile(body string, ignoreCase bool) (Matcher, error) {
	re, err := regexp.Compile(anchor(body, ignoreCase))
	if err != nil {
		return Matcher{}, err
	}
	return Matcher{re: re}, nil
}

// CompileText escapes every regex metacharacter in s and anchors the
// result, so the matcher accepts only the literal string s (modulo case,
// when ignoreCase is set).
func CompileText(s string, ignoreCase bool) (Matcher, error) {
	return compile(regexp.QuoteMeta(s), ignoreCase)
}

// TextBody returns the unanchored regex fragment for a plain-text segment,
// for use by callers (the lookup compiler) composing multiple segments
// before a single outer anchor/case-flag pass.
func TextBody(s string) string {
	return regexp.QuoteMeta(s)
}

// CompileWildcard translates a shell-style wildcard pattern to an anchored
// regex: '?' matches any one character, '*' matches any run of characters
// (including none), '[...]' is preserved as a character class, and
// '[!...]' is rewritten to the negated class '[^...]'. Every other regex
// metacharacter is escaped.
func CompileWildcard(s string, ignoreCase bool) (Matcher, error) {
	return compile(WildcardBody(s), ignoreCase)
}

// WildcardBody returns the unanchored regex fragment for a wildcard
// segment.
func WildcardBody(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '?':
			b.WriteByte('.')
		case '*':
			b.WriteString(".*")
		case '[':
			// copy the class verbatim up to its closing ']', rewriting a
			// leading '!' to '^'.
			j := i + 1
			negate := j < len(runes) && runes[j] == '!'
			if negate {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				// unbalanced '[' — treat as a literal
				b.WriteString(regexp.QuoteMeta(string(r)))
				continue
			}
			b.WriteByte('[')
			if negate {
				b.WriteByte('^')
			}
			b.WriteString(string(runes[i+1+boolToInt(negate) : j]))
			b.WriteByte(']')
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CompileBody anchors and compiles a regex body that a caller has already
// assembled from one or more per-kind Body fragments (the lookup
// compiler's segment algorithm concatenates TextBody/WildcardBody/RegexBody
// fragments before a single outer anchor/case-flag pass).
func CompileBody(body string, ignoreCase bool) (Matcher, error) {
	return compile(body, ignoreCase)
}

// CompileRegex embeds s as-is (already a regex) and anchors it.
func CompileRegex(s string, ignoreCase bool) (Matcher, error) {
	return compile(s, ignoreCase)
}

// RegexBody returns the unanchored fragment for a regex segment: the
// pattern as given, unmodified.
func RegexBody(s string) string {
	return s
}
