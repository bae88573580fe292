package entity

// MenuEntryType distinguishes clickable entries from native separators.
type MenuEntryType string

const (
	MenuEntryNormal    MenuEntryType = "normal"
	MenuEntrySeparator MenuEntryType = "separator"
)

// MenuContext is the native context in which an entry is shown.
type MenuContext string

const ContextSelection MenuContext = "selection"

// MenuEntry is one element of the native context menu, created by id.
type MenuEntry struct {
	ID       string        `json:"id"`
	Title    string        `json:"title,omitempty"`
	Type     MenuEntryType `json:"type"`
	ParentID string        `json:"parentId,omitempty"`
	Contexts []MenuContext `json:"contexts,omitempty"`
}

// IsSeparator returns true for native separators.
func (e MenuEntry) IsSeparator() bool {
	return e.Type == MenuEntrySeparator
}

// TabRef identifies the tab a click originated from.
type TabRef struct {
	ID    int `json:"id"`
	Index int `json:"index"`
}

// MenuClick is the event delivered when the user picks a menu entry.
type MenuClick struct {
	MenuItemID    string `json:"menuItemId"`
	SelectionText string `json:"selectionText"`
	Tab           TabRef `json:"tab"`
}

// NavigationRequest asks the tab opener to open URL next to its opener tab.
type NavigationRequest struct {
	URL         string `json:"url"`
	Index       int    `json:"index"`
	OpenerTabID int    `json:"openerTabId"`
}
