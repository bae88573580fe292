// Package styles provides the lipgloss theme and small bubbletea widgets
// shared by the selsearch commands.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors of a theme.
type Palette struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color
}

// DarkPalette is used on dark terminals.
var DarkPalette = Palette{
	Background:     "#101014",
	Surface:        "#1c1c22",
	SurfaceVariant: "#2a2a33",
	Text:           "#ececf1",
	Muted:          "#8b8b99",
	Accent:         "#f5a623",
	Border:         "#3a3a44",
	Error:          "#ef4444",
	Warning:        "#eab308",
	Success:        "#22c55e",
}

// LightPalette is used on light terminals.
var LightPalette = Palette{
	Background:     "#fafafa",
	Surface:        "#eeeeee",
	SurfaceVariant: "#e0e0e6",
	Text:           "#1f1f24",
	Muted:          "#6b6b78",
	Accent:         "#b45309",
	Border:         "#c8c8d0",
	Error:          "#b91c1c",
	Warning:        "#a16207",
	Success:        "#15803d",
}

// Theme holds the palette and the styles derived from it.
type Theme struct {
	Palette

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style

	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	BadgeMuted       lipgloss.Style

	InputFocused lipgloss.Style
	Box          lipgloss.Style
}

// NewTheme picks the palette matching the terminal background.
func NewTheme() *Theme {
	if lipgloss.HasDarkBackground() {
		return NewThemeFromPalette(DarkPalette)
	}
	return NewThemeFromPalette(LightPalette)
}

// NewThemeFromPalette derives every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	rounded := func(border lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(border)
	}

	return &Theme{
		Palette: p,

		Title:     fg(p.Text).Bold(true),
		Subtitle:  fg(p.Muted).Bold(true),
		Normal:    fg(p.Text),
		Subtle:    fg(p.Muted),
		Highlight: fg(p.Accent).Bold(true),

		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Success),

		ActiveButton:   fg(p.Background).Background(p.Accent).Padding(0, 2).Bold(true),
		InactiveButton: fg(p.Muted).Background(p.Surface).Padding(0, 2),

		ListItem:         fg(p.Text),
		ListItemSelected: fg(p.Accent).Background(p.SurfaceVariant).Bold(true),
		BadgeMuted:       fg(p.Text).Background(p.SurfaceVariant).Padding(0, 1),

		InputFocused: rounded(p.Accent).Foreground(p.Text).Padding(0, 1),
		Box:          rounded(p.Border).Padding(1, 2),
	}
}

// SuccessLine renders a check-marked message.
func (t *Theme) SuccessLine(msg string) string {
	return t.SuccessStyle.Render("✓ ") + t.Normal.Render(msg)
}

// ErrorLine renders a cross-marked message.
func (t *Theme) ErrorLine(msg string) string {
	return t.ErrorStyle.Render("✗ ") + t.Normal.Render(msg)
}

// WarningLine renders a warning message.
func (t *Theme) WarningLine(msg string) string {
	return t.WarningStyle.Render("! ") + t.Normal.Render(msg)
}
