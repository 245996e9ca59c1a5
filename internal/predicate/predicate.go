// Package predicate implements the closed taxonomy of named value checks
// and comparators the lookup compiler and select-statement parser bind
// column values against: emptiness, truth, network-address and
// interface-name shapes, and the numeric/string/version/datetime
// comparators.
package predicate

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Logger receives a line for every predicate failure that is swallowed to
// false instead of propagated.
var Logger hclog.Logger = hclog.New(&hclog.LoggerOptions{
	Name:  "dlquery.predicate",
	Level: hclog.Info,
})

// Func is a single-argument boolean check over a probe value, e.g.
// is_ipv4_address. The value has already been read out of the tree by the
// caller (the predicate package never walks the tree itself).
type Func func(value any) (bool, error)

// Options controls how a Func's raw result is adapted before it is
// returned to the caller: Valid=false inverts the result (the
// `is_not_*` spellings), and OnException controls whether parse/compare
// failures propagate or are swallowed to false.
type Options struct {
	Valid       bool
	OnException bool
}

// DefaultOptions returns {Valid: true, OnException: false}, the defaults
// used during query evaluation.
func DefaultOptions() Options {
	return Options{Valid: true, OnException: false}
}

// WithPolicy wraps fn so that a panic-free error from fn is either
// propagated (OnException) or swallowed to false (with the failure logged
// at Info level), and the boolean result is inverted when !opts.Valid. A
// higher-order function rather than an inheritance hierarchy, matching
// how the root package's Option functions wrap behavior in closures.
func WithPolicy(name string, fn Func, opts Options) Func {
	return func(value any) (bool, error) {
		result, err := fn(value)
		if err != nil {
			if opts.OnException {
				return false, err
			}
			Logger.Info("predicate check failed, returning false", "predicate", name, "value", fmt.Sprintf("%v", value), "error", err)
			result = false
		}
		if !opts.Valid {
			return !result, nil
		}
		return result, nil
	}
}

// table is the static dispatch table backing Validate — a name-to-function
// map rather than reflection over methods.
var table = map[string]Func{
	"empty":                    isEmpty,
	"optional_empty":           isOptionalEmpty,
	"true":                     isTrueValue,
	"false":                    isFalseValue,
	"ip_address":               isIPAddress,
	"ipv4_address":             isIPv4Address,
	"ipv6_address":             isIPv6Address,
	"mac_address":              isMACAddress,
	"loopback_interface":       isLoopbackInterface,
	"bundle_ethernet":          isBundleEthernet,
	"port_channel":             isPortChannel,
	"hundred_gigabit_ethernet": isHundredGigabitEthernet,
	"ten_gigabit_ethernet":     isTenGigabitEthernet,
	"gigabit_ethernet":         isGigabitEthernet,
	"fast_ethernet":            isFastEthernet,
}

// ErrUnknownPredicate is the *unknown-predicate* error kind: case resolves
// to no built-in `is_<case>` check.
type ErrUnknownPredicate struct {
	Case string
}

func (e *ErrUnknownPredicate) Error() string {
	return fmt.Sprintf("predicate: unknown case %q (no is_%s built-in)", e.Case, e.Case)
}

// Validate resolves case to its is_<case> check and invokes it against
// value, applying opts. An unresolved case is always an error, never
// swallowed.
func Validate(caseName string, value any, opts Options) (bool, error) {
	fn, ok := table[caseName]
	if !ok {
		return false, &ErrUnknownPredicate{Case: caseName}
	}
	wrapped := WithPolicy(caseName, fn, opts)
	return wrapped(value)
}

// Lookup returns the raw (unwrapped) Func registered for case, for callers
// that need to apply their own Options after resolving the name once, and
// the bool reports whether case was found.
func Lookup(caseName string) (Func, bool) {
	fn, ok := table[caseName]
	return fn, ok
}
