package config

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = `# selsearch configuration
# Environment variables override any key: SELSEARCH_<SECTION>_<KEY>, e.g. SELSEARCH_EDITOR_DEBOUNCE_MS.
# Empty paths resolve to the XDG directories.

`

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg to path as TOML with sections sorted by name.
// The file is replaced atomically.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := fileHeader + sortTOMLSections(buf.String())

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders [section] blocks alphabetically. Keys that come
// before the first section stay on top.
func sortTOMLSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var preamble []string
	var sections []section
	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, section{name: m[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(sections, func(a, b section) int { return cmp.Compare(a.name, b.name) })

	var out strings.Builder
	if top := strings.TrimRight(strings.Join(preamble, "\n"), "\n"); top != "" {
		out.WriteString(top)
		out.WriteString("\n\n")
	}
	for i, sec := range sections {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(strings.TrimRight(strings.Join(sec.lines, "\n"), "\n"))
		out.WriteString("\n")
	}
	return out.String()
}
