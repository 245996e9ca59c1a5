// Copyright (c) HashiCorp, Inc.

package main

import (
	query "github.com/Geeks-Trident-LLC/dlquery"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var src sourceFlags
	var strict bool

	cmd := &cobra.Command{
		Use:   "get <index>",
		Short: "Fetch a scalar, mapping child, or sequence slice by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := src.handle(cmd)
			if err != nil {
				return err
			}
			var opts []query.GetOption
			if strict {
				opts = append(opts, query.WithGetException())
			}
			result, err := h.Get(args[0], opts...)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of returning a default value on a missing index")
	return cmd
}
