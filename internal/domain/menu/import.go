package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// Format is a serialization format for export files.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ExportFileName is the suggested name of an exported settings file.
const ExportFileName = "simkl_search_settings.json"

// ParseFormat maps a flag value or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", s)
	}
}

// Decode parses a serialized tree, filling absent keys with defaults, then
// repairs its ids. Failures wrap ErrInvalidImport; nested groups also match
// entity.ErrNestedGroup.
func Decode(data []byte, format Format, newID IDGenerator) (entity.Tree, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
		}
		data = converted
	}

	var tree entity.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	repaired, _ := Repair(tree, newID)
	return repaired, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if _, ok := doc.([]any); !ok {
		return nil, entity.ErrInvalidTree
	}
	return json.Marshal(doc)
}

// Encode writes tree to w. JSON output is indented with two spaces and keeps
// characters such as & unescaped.
func Encode(w io.Writer, tree entity.Tree, format Format) error {
	records := tree.Records()
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// Marshal returns the compact JSON storage value of tree.
func Marshal(tree entity.Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree.Records()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
