// Copyright (c) HashiCorp, Inc.

package selectstmt

import "fmt"

// ErrSelectSyntax is the *select-syntax* error kind: a malformed
// expression, an unknown operator spelling, or an odd-length connective
// chain.
type ErrSelectSyntax struct {
	Statement string
	Reason    string
}

func (e *ErrSelectSyntax) Error() string {
	return fmt.Sprintf("selectstmt: invalid statement %q: %s", e.Statement, e.Reason)
}
