// Copyright (c) HashiCorp, Inc.

// Command dlquery is a thin command-line front end over the factory and
// query packages: decode a JSON, YAML, or CSV document and run a lookup or
// index access against it, printing the result as JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
