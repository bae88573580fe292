package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
)

func TestDecode_FillsAbsentKeys(t *testing.T) {
	data := []byte(`[
		{"url": "https://x.example/?q=%s"},
		{"type": "separator"},
		{"id": "g", "name": "G", "type": "group", "items": [{"name": "Inner"}]},
		{"id": "s", "name": "Sentinel", "url": "", "queryEncoding": "plus"}
	]`)

	tree, err := Decode(data, FormatJSON, sequentialIDs("new-"))
	require.NoError(t, err)
	require.Len(t, tree, 4)
	require.NoError(t, Validate(tree))

	first := tree[0].(*entity.Search)
	assert.Equal(t, entity.UnnamedItemName, first.Name)
	assert.Equal(t, entity.EncodeURIComponent, first.QueryEncoding)
	assert.Equal(t, "new-1", first.ID)

	assert.Equal(t, entity.NodeTypeSeparator, tree[1].Type())

	group := tree[2].(*entity.Group)
	require.Len(t, group.Items, 1)
	inner := group.Items[0].(*entity.Search)
	assert.Equal(t, "Inner", inner.Name)
	assert.Equal(t, entity.DefaultSearchURL, inner.URL)

	sentinel := tree[3].(*entity.Search)
	assert.Equal(t, "", sentinel.URL, "an explicit empty url is kept")
	assert.Equal(t, entity.EncodePlus, sentinel.QueryEncoding)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		is     []error
	}{
		{name: "object", data: `{"id":"a"}`, format: FormatJSON, is: []error{ErrInvalidImport}},
		{name: "string", data: `"hello"`, format: FormatJSON, is: []error{ErrInvalidImport}},
		{name: "broken json", data: `[{"id":`, format: FormatJSON, is: []error{ErrInvalidImport}},
		{
			name:   "nested group",
			data:   `[{"type":"group","items":[{"type":"group","items":[]}]}]`,
			format: FormatJSON,
			is:     []error{ErrInvalidImport, entity.ErrNestedGroup},
		},
		{
			name:   "unknown type",
			data:   `[{"type":"folder"}]`,
			format: FormatJSON,
			is:     []error{ErrInvalidImport, entity.ErrUnknownNodeType},
		},
		{name: "yaml mapping", data: "id: a\n", format: FormatYAML, is: []error{ErrInvalidImport}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Decode([]byte(tt.data), tt.format, sequentialIDs("new-"))
			require.Error(t, err)
			assert.Nil(t, tree)
			for _, target := range tt.is {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tree := DefaultTree(sequentialIDs("id-"))

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tree, format))

			decoded, err := Decode(buf.Bytes(), format, sequentialIDs("unused-"))
			require.NoError(t, err)
			assert.Equal(t, tree, decoded)
		})
	}
}

func TestEncode_JSONLayout(t *testing.T) {
	tree := entity.Tree{entity.NewSearch("a", "IMDB", "https://www.imdb.com/find?q=%s&s=all")}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tree, FormatJSON))

	want := `[
  {
    "id": "a",
    "name": "IMDB",
    "url": "https://www.imdb.com/find?q=%s&s=all",
    "queryEncoding": "encodeURIComponent",
    "type": "search"
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(entity.Tree{entity.NewSeparator("s")})
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"s","name":"--- Separator ---","type":"separator"}]`, string(data))

	empty, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "json": FormatJSON, ".JSON": FormatJSON, "yml": FormatYAML, ".yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.True(t, strings.HasSuffix(ExportFileName, ".json"))
}
