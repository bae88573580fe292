package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Field is an editable property of a menu item.
type Field int

const (
	FieldName Field = iota
	FieldURL
)

type fieldSpec struct {
	label       string
	placeholder string
	prompt      string
	limit       int
}

var fieldSpecs = map[Field]fieldSpec{
	FieldName: {label: "Name", placeholder: "Name", prompt: "› ", limit: 256},
	FieldURL:  {label: "Search URL", placeholder: "https://example.com/search?q=%s", prompt: "→ ", limit: 2048},
}

// NewFieldInput creates a themed input for field, prefilled with value and
// with the cursor at the end.
func NewFieldInput(theme *Theme, field Field, value string) textinput.Model {
	cfg := fieldSpecs[field]
	accent := lipgloss.NewStyle().Foreground(theme.Accent)

	ti := textinput.New()
	ti.Prompt = cfg.prompt
	ti.Placeholder = cfg.placeholder
	ti.CharLimit = cfg.limit
	ti.PromptStyle = accent
	ti.Cursor.Style = accent
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.SetValue(value)
	return ti
}

// FieldBox renders an input view under the field label.
func (t *Theme) FieldBox(field Field, view string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Subtitle.Render(fieldSpecs[field].label),
		t.InputFocused.Render(view))
}
