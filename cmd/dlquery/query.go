// Copyright (c) HashiCorp, Inc.

package main

import (
	"encoding/json"
	"fmt"

	query "github.com/Geeks-Trident-LLC/dlquery"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	var src sourceFlags
	var selectStatement string
	var strict bool

	cmd := &cobra.Command{
		Use:   "query <lookup>",
		Short: "Find every node matching a key/value lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := src.handle(cmd)
			if err != nil {
				return err
			}
			var opts []query.Option
			if strict {
				opts = append(opts, query.WithStrictPredicates())
			}
			results, err := h.Find(args[0], selectStatement, opts...)
			if err != nil {
				return err
			}
			return printJSON(cmd, results)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&selectStatement, "select", "", "select statement (column list and/or where clause) applied to each match")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of silently excluding a node on a predicate error")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
