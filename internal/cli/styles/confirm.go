package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmState int

const (
	confirmPending confirmState = iota
	confirmAccepted
	confirmDismissed
)

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmModel asks a destructive yes/no question. "No" is preselected.
type ConfirmModel struct {
	question string
	detail   string
	yes      bool
	state    confirmState
	keys     ConfirmKeyMap
	theme    *Theme
}

// NewConfirm creates a confirmation dialog for question. detail may be empty.
func NewConfirm(theme *Theme, question, detail string) ConfirmModel {
	return ConfirmModel{
		question: question,
		detail:   detail,
		keys:     DefaultConfirmKeyMap(),
		theme:    theme,
	}
}

// Update handles key presses until the dialog is answered.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.state != confirmPending {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.yes = false
	case key.Matches(keyMsg, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(keyMsg, m.keys.Submit):
		m.state = confirmDismissed
		if m.yes {
			m.state = confirmAccepted
		}
	case key.Matches(keyMsg, m.keys.Cancel):
		m.state = confirmDismissed
	}
	return m, nil
}

// View renders the question with both choices.
func (m ConfirmModel) View() string {
	t := m.theme

	no, yes := t.ActiveButton, t.InactiveButton
	if m.yes {
		no, yes = t.InactiveButton, t.ActiveButton.Background(t.Error)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render(" No "), "  ", yes.Render(" Yes "))

	lines := []string{t.Title.Render(m.question)}
	if m.detail != "" {
		lines = append(lines, t.Subtle.Render(m.detail))
	}
	lines = append(lines, "", buttons, "", t.Subtle.Render("y/n to choose • enter to confirm • esc to cancel"))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Done reports whether the dialog has been answered.
func (m ConfirmModel) Done() bool {
	return m.state != confirmPending
}

// Result reports whether the user confirmed.
func (m ConfirmModel) Result() bool {
	return m.state == confirmAccepted
}
