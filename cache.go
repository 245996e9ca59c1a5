// Copyright (c) HashiCorp, Inc.

package query

import (
	"sync"

	"github.com/Geeks-Trident-LLC/dlquery/internal/lookup"
	"github.com/Geeks-Trident-LLC/dlquery/internal/selectstmt"
)

// CompileCache memoizes compiled lookups and select-statements keyed by
// their source text. Both compiled forms are immutable once built, so a
// cache may be shared and queried concurrently across goroutines. The
// zero value is ready to use.
type CompileCache struct {
	lookups sync.Map // string -> *lookup.Compiled
	selects sync.Map // string -> *selectstmt.Compiled
}

// defaultCache backs Find when the caller does not supply one of its own.
var defaultCache = &CompileCache{}

func (c *CompileCache) compileLookup(s string) (*lookup.Compiled, error) {
	if v, ok := c.lookups.Load(s); ok {
		return v.(*lookup.Compiled), nil
	}
	compiled, err := lookup.Compile(s)
	if err != nil {
		return nil, err
	}
	actual, _ := c.lookups.LoadOrStore(s, compiled)
	return actual.(*lookup.Compiled), nil
}

func (c *CompileCache) compileSelect(s string) (*selectstmt.Compiled, error) {
	if v, ok := c.selects.Load(s); ok {
		return v.(*selectstmt.Compiled), nil
	}
	compiled, err := selectstmt.ParseStatement(s)
	if err != nil {
		return nil, err
	}
	actual, _ := c.selects.LoadOrStore(s, compiled)
	return actual.(*selectstmt.Compiled), nil
}
