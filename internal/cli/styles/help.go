package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

// SettingsKeyMap defines keybindings for the settings editor.
type SettingsKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	AddSearch    key.Binding
	AddGroup     key.Binding
	AddSeparator key.Binding
	Rename       key.Binding
	EditURL      key.Binding
	Encoding     key.Binding
	Delete       key.Binding
	Restore      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddSearch, k.Rename, k.EditURL, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.AddSearch, k.AddGroup, k.AddSeparator},
		{k.Rename, k.EditURL, k.Encoding},
		{k.Delete, k.Restore},
		{k.Help, k.Quit},
	}
}

// DefaultSettingsKeyMap returns the default settings keybindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		AddSearch: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add engine"),
		),
		AddGroup: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "add group"),
		),
		AddSeparator: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "add separator"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "rename"),
		),
		EditURL: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "edit url"),
		),
		Encoding: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cycle encoding"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restore defaults"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EditKeyMap defines keybindings while a text field is being edited.
type EditKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Cancel}}
}

// DefaultEditKeyMap returns the default edit keybindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
