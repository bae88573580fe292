package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func TestPlan(t *testing.T) {
	entries := Plan(sampleTree(), Labels{})

	type row struct {
		id, parent, title string
		sep               bool
	}
	got := make([]row, 0, len(entries))
	for _, e := range entries {
		assert.Equal(t, []entity.MenuContext{entity.ContextSelection}, e.Contexts)
		got = append(got, row{e.ID, e.ParentID, e.Title, e.IsSeparator()})
	}

	want := []row{
		{RootMenuID, "", "Search '%s' on", false},
		{"a", RootMenuID, "A", false},
		{"sep1", RootMenuID, "", true},
		{"g", RootMenuID, "G", false},
		{"b", "g", "B", false},
		{"sep2", "g", "", true},
		{"c", "g", "C", false},
		{"d", RootMenuID, "D", false},
		{OptionsSeparatorID, RootMenuID, "", true},
		{OptionsMenuID, RootMenuID, "Options", false},
	}
	assert.Equal(t, want, got)
}

func TestPlan_EmptyTree(t *testing.T) {
	entries := Plan(nil, Labels{RootTitle: "Look up '%s'", OptionsTitle: "Settings"})
	require.Len(t, entries, 3)
	assert.Equal(t, "Look up '%s'", entries[0].Title)
	assert.Equal(t, OptionsSeparatorID, entries[1].ID)
	assert.Equal(t, "Settings", entries[2].Title)
}

func TestPlan_Deterministic(t *testing.T) {
	tree := DefaultTree(sequentialIDs("id-"))
	assert.Equal(t, Plan(tree, DefaultLabels()), Plan(tree, DefaultLabels()))
}
