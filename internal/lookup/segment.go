package lookup

import (
	"strings"

	"github.com/Geeks-Trident-LLC/dlquery/internal/lookup/scanner"
	"github.com/Geeks-Trident-LLC/dlquery/internal/matcher"
)

// compileSide implements the segment algorithm shared by a lookup's left
// side and its right side (when the right side is not a named predicate
// call): scan for embedded _text(..)/_itext(..)/_wildcard(..)/
// _iwildcard(..)/_regex(..)/_iregex(..) forms, translate each fragment to
// a regex body, concatenate, and anchor once with an elevated
// case-insensitive flag if any fragment asked for one.
func compileSide(raw string) (matcher.Matcher, error) {
	segs, err := scanner.New(raw).ScanSegments()
	if err != nil {
		return matcher.Matcher{}, &ErrLookupSyntax{Lookup: raw, Reason: err.Error()}
	}

	var body strings.Builder
	ignoreCase := false
	for _, seg := range segs {
		switch seg.Kind {
		case scanner.Plain, scanner.Text:
			body.WriteString(matcher.TextBody(seg.Payload))
		case scanner.IText:
			body.WriteString(matcher.TextBody(seg.Payload))
			ignoreCase = true
		case scanner.Wildcard:
			body.WriteString(matcher.WildcardBody(seg.Payload))
		case scanner.IWildcard:
			body.WriteString(matcher.WildcardBody(seg.Payload))
			ignoreCase = true
		case scanner.Regex:
			body.WriteString(matcher.RegexBody(seg.Payload))
		case scanner.IRegex:
			body.WriteString(matcher.RegexBody(seg.Payload))
			ignoreCase = true
		}
	}

	m, err := matcher.CompileBody(body.String(), ignoreCase)
	if err != nil {
		return matcher.Matcher{}, &ErrLookupSyntax{Lookup: raw, Reason: err.Error()}
	}
	return m, nil
}

// findSeparator locates the first unescaped '=' that is outside any
// embedded _kind(..) form. \= is the escape for a literal '=' that should
// not act as the lookup's left/right separator.
func findSeparator(s string) (int, bool) {
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '=' {
			i += 2
			continue
		}
		if prefix, ok := scanner.EmbeddedPrefix(s[i:]); ok {
			i += len(prefix)
			depth := 1
			for depth > 0 && i < len(s) {
				switch s[i] {
				case '(':
					depth++
				case ')':
					depth--
				}
				i++
			}
			continue
		}
		if s[i] == '=' {
			return i, true
		}
		i++
	}
	return 0, false
}

// unescapeEquals resolves the \= escape to a literal '=' once separator
// scanning is done and the character no longer needs to be distinguished
// from a real separator.
func unescapeEquals(s string) string {
	return strings.ReplaceAll(s, `\=`, "=")
}
