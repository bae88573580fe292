package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func TestAddSearch(t *testing.T) {
	tree := sampleTree()

	top, search, err := AddSearch(tree, "", "n1")
	require.NoError(t, err)
	assert.Equal(t, "n1", top[len(top)-1].NodeID())
	assert.Equal(t, entity.DefaultSearchName, search.Name)
	assert.Equal(t, entity.DefaultSearchURL, search.URL)
	assert.Equal(t, entity.EncodeURIComponent, search.QueryEncoding)
	assert.Len(t, tree, 4, "input tree is untouched")

	inGroup, _, err := AddSearch(tree, "g", "n2")
	require.NoError(t, err)
	group, _ := FindGroup(inGroup, "g")
	assert.Equal(t, "n2", group.Items[len(group.Items)-1].NodeID())

	_, _, err = AddSearch(tree, "missing", "n3")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAddGroup(t *testing.T) {
	tree, group := AddGroup(sampleTree(), "n1")
	assert.Equal(t, entity.DefaultGroupName, group.Name)
	assert.Empty(t, group.Items)
	assert.Same(t, group, tree[len(tree)-1])
}

func TestAddSeparator(t *testing.T) {
	tree, sep, err := AddSeparator(sampleTree(), "", "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.SeparatorName, sep.Name)

	_, _, err = AddSeparator(tree, "", "s2")
	assert.ErrorIs(t, err, ErrConsecutiveSeparator)

	grouped := entity.Tree{&entity.Group{ID: "g", Name: "G", Items: []entity.Leaf{entity.NewSeparator("x")}}}
	_, _, err = AddSeparator(grouped, "g", "s3")
	assert.ErrorIs(t, err, ErrConsecutiveSeparator)

	empty, _, err := AddSeparator(entity.Tree{entity.NewGroup("g", "G")}, "g", "s4")
	require.NoError(t, err)
	group, _ := FindGroup(empty, "g")
	assert.Len(t, group.Items, 1)
}

func TestRenameSetURLSetEncoding(t *testing.T) {
	tree, err := Rename(sampleTree(), "sep2", "renamed")
	require.NoError(t, err)
	node, _, _ := FindNode(tree, "sep2")
	assert.Equal(t, "renamed", node.NodeName())

	tree, err = SetURL(tree, "c", "https://new.example/?q=%s")
	require.NoError(t, err)
	c, _ := FindSearch(tree, "c")
	assert.Equal(t, "https://new.example/?q=%s", c.URL)

	tree, err = SetEncoding(tree, "c", entity.EncodeDash)
	require.NoError(t, err)
	c, _ = FindSearch(tree, "c")
	assert.Equal(t, entity.EncodeDash, c.QueryEncoding)

	_, err = SetURL(tree, "g", "x")
	assert.ErrorIs(t, err, ErrNotASearch)
	_, err = SetEncoding(tree, "c", "base64")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = Rename(tree, "missing", "x")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestDelete(t *testing.T) {
	tree, removed, err := Delete(sampleTree(), "g")
	require.NoError(t, err)
	assert.Equal(t, "g", removed.NodeID())
	assert.Equal(t, []string{"a", "sep1", "d"}, tree.IDs())

	tree, _, err = Delete(sampleTree(), "sep2")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "sep1", "g", "b", "c", "d"}, tree.IDs())

	_, _, err = Delete(sampleTree(), "missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		to      Location
		want    []string
		wantErr error
	}{
		{
			name: "reorder top level",
			id:   "d",
			to:   Location{Index: 0},
			want: []string{"d", "a", "sep1", "g", "b", "sep2", "c"},
		},
		{
			name: "top level into group",
			id:   "a",
			to:   Location{GroupID: "g", Index: 1},
			want: []string{"sep1", "g", "b", "a", "sep2", "c", "d"},
		},
		{
			name: "group item to top level end",
			id:   "b",
			to:   Location{Index: -1},
			want: []string{"a", "sep1", "g", "sep2", "c", "d", "b"},
		},
		{
			name: "within group",
			id:   "c",
			to:   Location{GroupID: "g", Index: 0},
			want: []string{"a", "sep1", "g", "c", "b", "sep2", "d"},
		},
		{
			name:    "group into group",
			id:      "g",
			to:      Location{GroupID: "g"},
			wantErr: entity.ErrNestedGroup,
		},
		{
			name:    "unknown target group",
			id:      "a",
			to:      Location{GroupID: "nope"},
			wantErr: ErrGroupNotFound,
		},
		{
			name:    "index past end",
			id:      "a",
			to:      Location{Index: 10},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "unknown node",
			id:      "zzz",
			to:      Location{},
			wantErr: ErrNodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Move(sampleTree(), tt.id, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tree.IDs())
		})
	}
}
