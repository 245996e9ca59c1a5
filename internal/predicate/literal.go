package predicate

import "strings"

// ValueFamily identifies which comparator a comparator value literal
// should be routed through.
type ValueFamily int

const (
	FamilyPlain ValueFamily = iota
	FamilyVersion
	FamilySemanticVersion
	FamilyDate
	FamilyTime
	FamilyDatetime
)

var literalWrappers = []struct {
	name   string
	family ValueFamily
}{
	// Each wrapper is matched as a "name(" prefix, so "version(" does not
	// match a "semantic_version(" literal and the order here is not load-
	// bearing.
	{"semantic_version", FamilySemanticVersion},
	{"version", FamilyVersion},
	{"datetime", FamilyDatetime},
	{"date", FamilyDate},
	{"time", FamilyTime},
}

// ParseComparatorValue recognizes a comparator's right-hand literal as one
// of the wrapped forms (version(v), semantic_version(v), datetime(v
// [options]), date(v), time(v)) and returns the family plus the unwrapped
// payload; unwrapped input is FamilyPlain with the literal unchanged.
func ParseComparatorValue(raw string) (ValueFamily, string) {
	s := strings.TrimSpace(raw)
	for _, w := range literalWrappers {
		if payload, ok := unwrapCall(s, w.name); ok {
			return w.family, payload
		}
	}
	return FamilyPlain, s
}

func unwrapCall(s, name string) (string, bool) {
	prefix := name + "("
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return s[len(prefix) : len(s)-1], true
}
