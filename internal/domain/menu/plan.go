package menu

import "github.com/bnema/selsearch/internal/domain/entity"

// Fixed native menu ids.
const (
	RootMenuID         = "simkl_search_main"
	OptionsSeparatorID = "separator_before_options"
	OptionsMenuID      = "options"
)

// Labels are the titles of the fixed entries.
type Labels struct {
	// RootTitle may contain %s, which the menu surface replaces with the selection.
	RootTitle    string
	OptionsTitle string
}

// DefaultLabels returns the stock titles.
func DefaultLabels() Labels {
	return Labels{
		RootTitle:    "Search '%s' on",
		OptionsTitle: "Options",
	}
}

func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	if l.RootTitle == "" {
		l.RootTitle = d.RootTitle
	}
	if l.OptionsTitle == "" {
		l.OptionsTitle = d.OptionsTitle
	}
	return l
}

// Plan returns the ordered list of native entries for tree: the root entry,
// the tree content in order with group items right after their group, then
// the options separator and the options entry. Every entry is restricted to
// the selection context.
func Plan(tree entity.Tree, labels Labels) []entity.MenuEntry {
	labels = labels.withDefaults()
	entries := make([]entity.MenuEntry, 0, tree.Count()+3)

	entries = append(entries, entity.MenuEntry{
		ID:       RootMenuID,
		Title:    labels.RootTitle,
		Type:     entity.MenuEntryNormal,
		Contexts: selectionOnly(),
	})

	tree.Walk(func(node entity.Node, parent *entity.Group) bool {
		parentID := RootMenuID
		if parent != nil {
			parentID = parent.ID
		}
		entries = append(entries, entryFor(node, parentID))
		return true
	})

	entries = append(entries,
		entity.MenuEntry{
			ID:       OptionsSeparatorID,
			Type:     entity.MenuEntrySeparator,
			ParentID: RootMenuID,
			Contexts: selectionOnly(),
		},
		entity.MenuEntry{
			ID:       OptionsMenuID,
			Title:    labels.OptionsTitle,
			Type:     entity.MenuEntryNormal,
			ParentID: RootMenuID,
			Contexts: selectionOnly(),
		},
	)
	return entries
}

func entryFor(node entity.Node, parentID string) entity.MenuEntry {
	entry := entity.MenuEntry{
		ID:       node.NodeID(),
		ParentID: parentID,
		Contexts: selectionOnly(),
	}
	if node.Type() == entity.NodeTypeSeparator {
		entry.Type = entity.MenuEntrySeparator
		return entry
	}
	entry.Type = entity.MenuEntryNormal
	entry.Title = node.NodeName()
	return entry
}

func selectionOnly() []entity.MenuContext {
	return []entity.MenuContext{entity.ContextSelection}
}
