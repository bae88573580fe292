// Package validation produces user-facing warnings for menu item fields.
// Warnings never block a save.
package validation

import (
	"strings"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/url"
)

// SearchURLWarnings returns the problems found in a search URL template.
func SearchURLWarnings(name, template string) []string {
	var warns []string
	template = strings.TrimSpace(template)
	if template == "" {
		if name == entity.SearchEverywhereName {
			return nil
		}
		return append(warns, "url is empty; the entry will do nothing")
	}
	if !url.LooksLikeHTTPURL(template) {
		warns = append(warns, "url should start with http:// or https:// and include a host")
	}
	if !url.HasPlaceholder(template) {
		warns = append(warns, "url has no %s placeholder; the selection will not be included")
	}
	return warns
}

// NameWarnings returns the problems found in an item name.
func NameWarnings(node entity.Node) []string {
	if node.Type() == entity.NodeTypeSeparator {
		return nil
	}
	if strings.TrimSpace(node.NodeName()) == "" {
		return []string{"name is empty; the entry will show a blank label"}
	}
	return nil
}
