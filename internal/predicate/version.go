package predicate

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	hcversion "github.com/hashicorp/go-version"
)

// ErrInvalidVersion is the *predicate-argument* error for an operand that
// cannot be parsed as a version.
type ErrInvalidVersion struct {
	Value  string
	Reason error
}

func (e *ErrInvalidVersion) Error() string {
	return fmt.Sprintf("predicate: invalid version %q: %v", e.Value, e.Reason)
}

func (e *ErrInvalidVersion) Unwrap() error { return e.Reason }

// CompareVersion implements compare_version(op, other): a dot-separated,
// numeric-aware ordering that also accepts version strings like "1.2" or
// "1.2.3.4" that are not strict three-component semantic versions, built
// on github.com/hashicorp/go-version's loose parser.
func CompareVersion(value string, op CompareOp, other string) (bool, error) {
	switch op {
	case OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE:
	default:
		return false, &ErrInvalidOperator{Op: string(op), Family: "compare_version", Expected: []CompareOp{OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE}}
	}
	v, err := hcversion.NewVersion(value)
	if err != nil {
		return false, &ErrInvalidVersion{Value: value, Reason: err}
	}
	o, err := hcversion.NewVersion(other)
	if err != nil {
		return false, &ErrInvalidVersion{Value: other, Reason: err}
	}
	return numericCompare(float64(v.Compare(o)), 0, op), nil
}

// CompareSemanticVersion implements compare_semantic_version(op, other),
// using strict semver ordering (pre-release precedence, build metadata
// excluded from comparison) via github.com/Masterminds/semver/v3, which
// enforces those rules more strictly than go-version's looser parser.
func CompareSemanticVersion(value string, op CompareOp, other string) (bool, error) {
	switch op {
	case OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE:
	default:
		return false, &ErrInvalidOperator{Op: string(op), Family: "compare_semantic_version", Expected: []CompareOp{OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE}}
	}
	v, err := semver.NewVersion(value)
	if err != nil {
		return false, &ErrInvalidVersion{Value: value, Reason: err}
	}
	o, err := semver.NewVersion(other)
	if err != nil {
		return false, &ErrInvalidVersion{Value: other, Reason: err}
	}
	return numericCompare(float64(v.Compare(o)), 0, op), nil
}
