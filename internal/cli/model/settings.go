// Package model holds the bubbletea models of the interactive commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/cli/styles"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/validation"
)

type settingsMode int

const (
	modeBrowse settingsMode = iota
	modeEditName
	modeEditURL
	modeConfirmDelete
	modeConfirmRestore
)

// row is one visible line of the flattened tree.
type row struct {
	node    entity.Node
	groupID string // empty at the top level
	index   int    // position within its list
	depth   int
}

// flatten lists the tree in display order.
func flatten(tree entity.Tree) []row {
	rows := make([]row, 0, tree.Count())
	for i, node := range tree {
		rows = append(rows, row{node: node, index: i})
		group, ok := node.(*entity.Group)
		if !ok {
			continue
		}
		for j, item := range group.Items {
			rows = append(rows, row{node: item, groupID: group.ID, index: j, depth: 1})
		}
	}
	return rows
}

// moveTarget computes where a one-step move of r lands. Leaves step into
// and out of adjacent groups; groups only move along the top level.
func moveTarget(tree entity.Tree, r row, up bool) (menu.Location, bool) {
	_, isGroup := r.node.(*entity.Group)

	if r.depth == 1 {
		group, ok := menu.FindGroup(tree, r.groupID)
		if !ok {
			return menu.Location{}, false
		}
		groupIndex := topIndex(tree, r.groupID)
		switch {
		case up && r.index > 0:
			return menu.Location{GroupID: r.groupID, Index: r.index - 1}, true
		case up:
			return menu.Location{Index: groupIndex}, true
		case r.index < len(group.Items)-1:
			return menu.Location{GroupID: r.groupID, Index: r.index + 1}, true
		default:
			return menu.Location{Index: groupIndex + 1}, true
		}
	}

	neighbour := r.index + 1
	if up {
		neighbour = r.index - 1
	}
	if neighbour < 0 || neighbour >= len(tree) {
		return menu.Location{}, false
	}
	if g, ok := tree[neighbour].(*entity.Group); ok && !isGroup {
		if up {
			return menu.Location{GroupID: g.ID, Index: -1}, true
		}
		return menu.Location{GroupID: g.ID, Index: 0}, true
	}
	return menu.Location{Index: neighbour}, true
}

func topIndex(tree entity.Tree, id string) int {
	for i, node := range tree {
		if node.NodeID() == id {
			return i
		}
	}
	return -1
}

// nextEncoding cycles through the query encodings.
func nextEncoding(current entity.QueryEncoding) entity.QueryEncoding {
	encodings := entity.QueryEncodings()
	for i, enc := range encodings {
		if enc == current {
			return encodings[(i+1)%len(encodings)]
		}
	}
	return encodings[0]
}

// editResultMsg reports the outcome of one edit.
type editResultMsg struct {
	status  string
	focusID string
	err     error
}

// treeLoadedMsg is sent once the initial tree is loaded.
type treeLoadedMsg struct {
	err error
}

// SettingsModel edits the search menu.
type SettingsModel struct {
	ctx   context.Context
	theme *styles.Theme
	uc    *usecase.ManageMenuUseCase

	keys     styles.SettingsKeyMap
	editKeys styles.EditKeyMap
	help     help.Model

	rows    []row
	cursor  int
	mode    settingsMode
	input   textinput.Model
	confirm styles.ConfirmModel

	loading bool
	status  string
	err     error
	width   int
	height  int
}

// NewSettingsModel creates the settings editor.
func NewSettingsModel(ctx context.Context, theme *styles.Theme, uc *usecase.ManageMenuUseCase) SettingsModel {
	return SettingsModel{
		ctx:      ctx,
		theme:    theme,
		uc:       uc,
		keys:     styles.DefaultSettingsKeyMap(),
		editKeys: styles.DefaultEditKeyMap(),
		help:     styles.NewStyledHelp(theme),
		loading:  true,
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	return m.load
}

func (m SettingsModel) load() tea.Msg {
	_, err := m.uc.Load(m.ctx)
	return treeLoadedMsg{err: err}
}

// Update implements tea.Model.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case treeLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.refresh("")
		return m, nil

	case editResultMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
		} else {
			m.status = ""
		}
		m.refresh(msg.focusID)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEditName, modeEditURL:
			return m.updateEdit(msg)
		case modeConfirmDelete, modeConfirmRestore:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == modeEditName || m.mode == modeEditURL {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh rebuilds the rows and keeps the cursor on focusID when given.
func (m *SettingsModel) refresh(focusID string) {
	m.rows = flatten(m.uc.Tree())
	if focusID != "" {
		for i, r := range m.rows {
			if r.node.NodeID() == focusID {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m SettingsModel) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// targetGroup is the group new items go to: the selected group, or the
// group of the selected item.
func (m SettingsModel) targetGroup() string {
	r, ok := m.selected()
	if !ok {
		return ""
	}
	if g, isGroup := r.node.(*entity.Group); isGroup {
		return g.ID
	}
	return r.groupID
}

func (m SettingsModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.MoveUp), key.Matches(msg, m.keys.MoveDown):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		to, ok := moveTarget(m.uc.Tree(), r, key.Matches(msg, m.keys.MoveUp))
		if !ok {
			return m, nil
		}
		id := r.node.NodeID()
		return m, m.edit(id, "", func(ctx context.Context) error {
			return m.uc.Move(ctx, id, to)
		})

	case key.Matches(msg, m.keys.AddSearch):
		groupID := m.targetGroup()
		return m, func() tea.Msg {
			search, err := m.uc.AddSearch(m.ctx, groupID)
			if err != nil {
				return editResultMsg{err: err}
			}
			return editResultMsg{status: "Engine added", focusID: search.ID}
		}

	case key.Matches(msg, m.keys.AddGroup):
		return m, func() tea.Msg {
			group, err := m.uc.AddGroup(m.ctx)
			if err != nil {
				return editResultMsg{err: err}
			}
			return editResultMsg{status: "Group added", focusID: group.ID}
		}

	case key.Matches(msg, m.keys.AddSeparator):
		groupID := m.targetGroup()
		return m, func() tea.Msg {
			sep, err := m.uc.AddSeparator(m.ctx, groupID)
			if errors.Is(err, menu.ErrConsecutiveSeparator) {
				return editResultMsg{err: errors.New("the list already ends with a separator")}
			}
			if err != nil {
				return editResultMsg{err: err}
			}
			return editResultMsg{status: "Separator added", focusID: sep.ID}
		}

	case key.Matches(msg, m.keys.Rename):
		r, ok := m.selected()
		if !ok || r.node.Type() == entity.NodeTypeSeparator {
			return m, nil
		}
		m.input = styles.NewFieldInput(m.theme, styles.FieldName, r.node.NodeName())
		m.mode = modeEditName
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.EditURL):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		search, isSearch := r.node.(*entity.Search)
		if !isSearch {
			return m, nil
		}
		m.input = styles.NewFieldInput(m.theme, styles.FieldURL, search.URL)
		m.mode = modeEditURL
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Encoding):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		search, isSearch := r.node.(*entity.Search)
		if !isSearch {
			return m, nil
		}
		id, enc := search.ID, nextEncoding(search.QueryEncoding)
		return m, m.edit(id, enc.Label(), func(ctx context.Context) error {
			return m.uc.SetEncoding(ctx, id, enc)
		})

	case key.Matches(msg, m.keys.Delete):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		detail := ""
		if g, isGroup := r.node.(*entity.Group); isGroup && len(g.Items) > 0 {
			detail = fmt.Sprintf("The group's %d items are removed too.", len(g.Items))
		}
		m.confirm = styles.NewConfirm(m.theme, fmt.Sprintf("Delete %q?", r.node.NodeName()), detail)
		m.mode = modeConfirmDelete

	case key.Matches(msg, m.keys.Restore):
		m.confirm = styles.NewConfirm(m.theme, "Restore the default menu?", "Your current menu will be replaced.")
		m.mode = modeConfirmRestore
	}

	return m, nil
}

// edit runs fn and reports status on success.
func (m SettingsModel) edit(focusID, status string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(m.ctx); err != nil {
			return editResultMsg{err: err, focusID: focusID}
		}
		return editResultMsg{status: status, focusID: focusID}
	}
}

func (m SettingsModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.editKeys.Save):
		r, ok := m.selected()
		mode := m.mode
		value := m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()
		if !ok {
			return m, nil
		}
		id := r.node.NodeID()
		if mode == modeEditURL {
			status := "URL updated"
			if warns := validation.SearchURLWarnings(r.node.NodeName(), value); len(warns) > 0 {
				status += " (" + warns[0] + ")"
			}
			return m, m.edit(id, status, func(ctx context.Context) error {
				return m.uc.SetURL(ctx, id, value)
			})
		}
		return m, m.edit(id, "Renamed", func(ctx context.Context) error {
			return m.uc.Rename(ctx, id, value)
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SettingsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, nil
	}

	mode := m.mode
	m.mode = modeBrowse
	if !m.confirm.Result() {
		return m, nil
	}

	if mode == modeConfirmRestore {
		return m, func() tea.Msg {
			if _, err := m.uc.RestoreDefaults(m.ctx); err != nil {
				return editResultMsg{err: err}
			}
			return editResultMsg{status: "Default menu restored"}
		}
	}

	r, ok := m.selected()
	if !ok {
		return m, nil
	}
	id := r.node.NodeID()
	return m, func() tea.Msg {
		node, err := m.uc.Delete(m.ctx, id)
		if err != nil {
			return editResultMsg{err: err}
		}
		return editResultMsg{status: fmt.Sprintf("Deleted %q", node.NodeName())}
	}
}

// View implements tea.Model.
func (m SettingsModel) View() string {
	t := m.theme

	if m.loading {
		return t.Subtle.Render("Loading menu...")
	}

	if m.mode == modeConfirmDelete || m.mode == modeConfirmRestore {
		return m.confirm.View()
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Search menu"))
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render("Use %s in a URL where the selected text goes."))
	b.WriteString("\n\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		r := m.rows[i]
		line := strings.Repeat("  ", r.depth) + t.NodeLine(r.node, styles.TreeOptions{ShowURLs: true})
		if i == m.cursor {
			line = t.ListItemSelected.Render("› " + line)
		} else {
			line = t.ListItem.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(t.Subtle.Render("(empty menu, press a to add an engine)"))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeEditName:
		b.WriteString("\n" + t.FieldBox(styles.FieldName, m.input.View()) + "\n")
	case modeEditURL:
		b.WriteString("\n" + t.FieldBox(styles.FieldURL, m.input.View()) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(t.ErrorLine(m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(t.SuccessLine(m.status))
		b.WriteString("\n")
	}

	if m.mode == modeEditName || m.mode == modeEditURL {
		b.WriteString(m.help.View(m.editKeys))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// window returns the range of rows that fit on screen.
func (m SettingsModel) window() (int, int) {
	visible := m.height - 12
	if m.height == 0 || visible >= len(m.rows) {
		return 0, len(m.rows)
	}
	if visible < 3 {
		visible = 3
	}
	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - visible
	}
	return start, end
}
