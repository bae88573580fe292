package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/url"
)

// TreeOptions control RenderTree.
type TreeOptions struct {
	ShowIDs  bool
	ShowURLs bool
}

// RenderTree renders the menu as an indented list.
func (t *Theme) RenderTree(tree entity.Tree, opts TreeOptions) string {
	if len(tree) == 0 {
		return t.Subtle.Render("(empty menu)")
	}

	var b strings.Builder
	tree.Walk(func(node entity.Node, parent *entity.Group) bool {
		indent := ""
		if parent != nil {
			indent = "  "
		}
		b.WriteString(indent)
		b.WriteString(t.NodeLine(node, opts))
		b.WriteByte('\n')
		return true
	})
	return strings.TrimRight(b.String(), "\n")
}

// NodeLine renders one node without indentation.
func (t *Theme) NodeLine(node entity.Node, opts TreeOptions) string {
	var line string
	switch n := node.(type) {
	case *entity.Separator:
		line = t.Subtle.Render(strings.Repeat("─", 12))
	case *entity.Group:
		line = t.Highlight.Render("▸ "+n.Name) + " " + t.Subtle.Render(fmt.Sprintf("(%d)", len(n.Items)))
	case *entity.Search:
		line = t.Normal.Render(n.Name)
		if n.IsSearchEverywhere() {
			line += " " + t.BadgeMuted.Render("all")
		} else if opts.ShowURLs {
			line += "  " + t.Subtle.Render(n.URL)
			if n.QueryEncoding != entity.EncodeURIComponent {
				line += " " + t.BadgeMuted.Render(string(n.QueryEncoding))
			}
		} else if domain := url.ExtractDomain(n.URL); domain != "" {
			line += "  " + t.Subtle.Render(domain)
		}
	}
	if opts.ShowIDs {
		line += "  " + lipgloss.NewStyle().Foreground(t.Border).Render(node.NodeID())
	}
	return line
}
