// Package schema generates JSON Schemas for the menu export file and the
// configuration file.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/config"
)

const filePerm = 0o644

// Kind selects which schema to generate.
type Kind string

const (
	KindMenu   Kind = "menu"
	KindConfig Kind = "config"
)

// Kinds lists the supported schema kinds.
func Kinds() []Kind {
	return []Kind{KindMenu, KindConfig}
}

// Generate returns the schema of kind as indented JSON.
func Generate(kind Kind) ([]byte, error) {
	var s *jsonschema.Schema
	switch kind {
	case KindMenu:
		s = Menu()
	case KindConfig:
		s = Config()
	default:
		return nil, fmt.Errorf("unknown schema %q (want menu or config)", kind)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// Menu describes the export file: an array of menu items.
func Menu() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	s := r.Reflect(&[]entity.NodeRecord{})

	s.ID = "https://github.com/bnema/selsearch/menu.schema.json"
	s.Title = "Selection Search Menu"
	s.Description = "Search engines, groups and separators offered for selected text"
	return s
}

// Config describes config.toml.
func Config() *jsonschema.Schema {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	s := r.Reflect(&config.Config{})

	s.ID = "https://github.com/bnema/selsearch/config.schema.json"
	s.Title = "Selection Search Configuration"
	s.Description = "Configuration schema for selsearch"
	return s
}

// WriteFile writes the schema of kind to path.
func WriteFile(kind Kind, path string) error {
	data, err := Generate(kind)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
