package predicate

import (
	"fmt"
	"regexp"
	"strings"
)

// Stringify is the exported form of the value-to-text coercion every
// textual predicate applies at its boundary, for callers outside this
// package (the lookup compiler) that build comparator arguments from tree
// scalars.
func Stringify(value any) string {
	return stringify(value)
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isEmpty implements is_empty: the stringified value equals "".
func isEmpty(value any) (bool, error) {
	return stringify(value) == "", nil
}

var optionalEmptyPattern = regexp.MustCompile(`^\s*$`)

// isOptionalEmpty implements is_optional_empty: the value is empty or
// consists only of whitespace.
func isOptionalEmpty(value any) (bool, error) {
	return optionalEmptyPattern.MatchString(stringify(value)), nil
}

// isTrueValue implements is_true: accepts the boolean directly, or the
// case-insensitive string "true".
func isTrueValue(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return strings.EqualFold(stringify(value), "true"), nil
}

// isFalseValue implements is_false: accepts the boolean directly, or the
// case-insensitive string "false".
func isFalseValue(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return !b, nil
	}
	return strings.EqualFold(stringify(value), "false"), nil
}
