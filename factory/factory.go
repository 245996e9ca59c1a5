// Copyright (c) HashiCorp, Inc.

// Package factory builds query.Handle values from JSON, YAML, and CSV
// sources, one File/Data/Reader entry-point triple per format.
package factory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Geeks-Trident-LLC/dlquery/internal/tree"
	query "github.com/Geeks-Trident-LLC/dlquery"
	"gopkg.in/yaml.v3"
)

// CreateFromJSONFile decodes the JSON document in filename into a Handle,
// preserving object key order (json.Decoder's token stream, not
// encoding/json's map-into-interface{} shortcut, which would lose it).
func CreateFromJSONFile(filename string) (*query.Handle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return CreateFromJSONReader(f)
}

// CreateFromJSONData decodes a JSON document given as a string.
func CreateFromJSONData(data string) (*query.Handle, error) {
	return CreateFromJSONReader(strings.NewReader(data))
}

// CreateFromJSONReader decodes a JSON document from an arbitrary reader.
func CreateFromJSONReader(r io.Reader) (*query.Handle, error) {
	dec := json.NewDecoder(r)
	root, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("factory: decode json: %w", err)
	}
	t, err := tree.BuildOrdered(root)
	if err != nil {
		return nil, err
	}
	return query.NewHandle(t), nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		om := &tree.OrderedMapping{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			om.Keys = append(om.Keys, key)
			om.Values = append(om.Values, val)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return om, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("factory: unexpected json delimiter %q", delim)
	}
}

// CreateFromYAMLFile decodes the YAML document in filename into a Handle.
func CreateFromYAMLFile(filename string) (*query.Handle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return CreateFromYAMLReader(f)
}

// CreateFromYAMLData decodes a YAML document given as a string.
func CreateFromYAMLData(data string) (*query.Handle, error) {
	return CreateFromYAMLReader(strings.NewReader(data))
}

// CreateFromYAMLReader decodes a YAML document from an arbitrary reader,
// via yaml.Node so mapping key order survives instead of relying on the
// package's map-into-interface{} shortcut.
func CreateFromYAMLReader(r io.Reader) (*query.Handle, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("factory: decode yaml: %w", err)
	}
	root, err := decodeYAMLNode(&doc)
	if err != nil {
		return nil, err
	}
	t, err := tree.BuildOrdered(root)
	if err != nil {
		return nil, err
	}
	return query.NewHandle(t), nil
}

func decodeYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeYAMLNode(n.Content[0])
	case yaml.MappingNode:
		om := &tree.OrderedMapping{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := decodeYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			om.Keys = append(om.Keys, key)
			om.Values = append(om.Values, val)
		}
		return om, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := decodeYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("factory: unsupported yaml node kind %v", n.Kind)
	}
}

// CreateFromCSVFile decodes the CSV document in filename into a Handle.
// The first row is treated as the field-name header, matching
// csv.DictReader's fieldnames=None default.
func CreateFromCSVFile(filename string) (*query.Handle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return CreateFromCSVReader(f)
}

// CreateFromCSVData decodes a CSV document given as a string.
func CreateFromCSVData(data string) (*query.Handle, error) {
	return CreateFromCSVReader(strings.NewReader(strings.TrimSpace(data)))
}

// CreateFromCSVReader decodes CSV rows from an arbitrary reader into a
// root sequence of fieldname-to-cell mappings (all cells are strings,
// matching CSV's lack of a native type system).
func CreateFromCSVReader(r io.Reader) (*query.Handle, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		t, buildErr := tree.BuildOrdered([]any{})
		if buildErr != nil {
			return nil, buildErr
		}
		return query.NewHandle(t), nil
	}
	if err != nil {
		return nil, fmt.Errorf("factory: read csv header: %w", err)
	}

	rows := []any{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("factory: read csv row: %w", err)
		}
		row := &tree.OrderedMapping{}
		seen := make(map[string]int, len(header))
		for i, name := range header {
			var cell string
			if i < len(record) {
				cell = record[i]
			}
			if idx, ok := seen[name]; ok {
				row.Values[idx] = cell
				continue
			}
			seen[name] = len(row.Keys)
			row.Keys = append(row.Keys, name)
			row.Values = append(row.Values, cell)
		}
		rows = append(rows, row)
	}

	t, err := tree.BuildOrdered(rows)
	if err != nil {
		return nil, err
	}
	return query.NewHandle(t), nil
}
