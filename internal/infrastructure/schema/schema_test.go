package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Menu(t *testing.T) {
	data, err := Generate(KindMenu)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Selection Search Menu", doc["title"])

	text := string(data)
	for _, want := range []string{`"queryEncoding"`, `"encodeURIComponent"`, `"plus"`, `"separator"`, `"items"`} {
		assert.Contains(t, text, want)
	}
}

func TestGenerate_Config(t *testing.T) {
	data, err := Generate(KindConfig)
	require.NoError(t, err)

	text := string(data)
	for _, want := range []string{`"storage"`, `"debounce_ms"`, `"repeat_threshold"`, `"launcher_command"`} {
		assert.Contains(t, text, want)
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := Generate("nope")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.schema.json")
	require.NoError(t, WriteFile(KindMenu, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
