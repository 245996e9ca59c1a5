// Copyright (c) HashiCorp, Inc.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	query "github.com/Geeks-Trident-LLC/dlquery"
	"github.com/Geeks-Trident-LLC/dlquery/factory"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dlquery",
		Short:         "Query hierarchical JSON, YAML, and CSV documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newQueryCmd())
	root.AddCommand(newGetCmd())
	return root
}

type sourceFlags struct {
	file   string
	format string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "path to the input document (default: stdin)")
	cmd.Flags().StringVar(&f.format, "format", "", "input format: json, yaml, or csv (default: inferred from --file's extension)")
}

// handle builds a query.Handle from the flags' source, reading cmd's input
// stream when --file is empty and resolving --format from the file
// extension when the flag itself is empty.
func (f *sourceFlags) handle(cmd *cobra.Command) (*query.Handle, error) {
	format := strings.ToLower(f.format)
	var r io.Reader
	if f.file == "" {
		if format == "" {
			return nil, fmt.Errorf("--format is required when reading from stdin")
		}
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(f.file)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
		if format == "" {
			format = inferFormat(f.file)
		}
	}

	switch format {
	case "json":
		return factory.CreateFromJSONReader(r)
	case "yaml", "yml":
		return factory.CreateFromYAMLReader(r)
	case "csv":
		return factory.CreateFromCSVReader(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func inferFormat(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "json"
	case strings.HasSuffix(filename, ".yaml"), strings.HasSuffix(filename, ".yml"):
		return "yaml"
	case strings.HasSuffix(filename, ".csv"):
		return "csv"
	default:
		return ""
	}
}
