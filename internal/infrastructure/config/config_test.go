package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 500, mgr.viper.GetInt("editor.debounce_ms"))
	assert.Equal(t, 3, mgr.viper.GetInt("errors.repeat_threshold"))
	assert.Equal(t, "Search '%s' on", mgr.viper.GetString("menu.root_title"))
	assert.Equal(t, "auto", mgr.viper.GetString("picker.launcher"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	content, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[editor]")
	assert.Contains(t, string(content), "debounce_ms = 500")

	cfg := mgr.Get()
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 3, cfg.Errors.RepeatThreshold)
	assert.True(t, strings.HasSuffix(cfg.Storage.DatabasePath, filepath.Join("selsearch", "selsearch.sqlite")))
	assert.True(t, strings.HasSuffix(cfg.Daemon.SocketPath, filepath.Join("selsearch", "daemon.sock")))
	assert.Equal(t, "Options", cfg.Labels().OptionsTitle)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
[editor]
debounce_ms = 250

[menu]
root_title = "Find '%s'"

[storage]
database_path = "/tmp/custom.sqlite"
sync_dir = "/tmp/sync"

[daemon]
socket_path = "/tmp/selsearch.sock"

[logging]
level = "WARNING"
log_dir = "/tmp/logs"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	t.Setenv("SELSEARCH_ERRORS_REPEAT_THRESHOLD", "5")

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 250, cfg.Editor.DebounceMs)
	assert.Equal(t, "Find '%s'", cfg.Menu.RootTitle)
	assert.Equal(t, "Options", cfg.Menu.OptionsTitle)
	assert.Equal(t, "/tmp/custom.sqlite", cfg.Storage.DatabasePath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Errors.RepeatThreshold)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := `
[picker]
launcher = "gnome-shell"

[storage]
database_path = "/tmp/x.sqlite"
sync_dir = "/tmp/sync"

[daemon]
socket_path = "/tmp/x.sock"

[logging]
log_dir = "/tmp/logs"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "picker.launcher")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "negative debounce", mutate: func(c *Config) { c.Editor.DebounceMs = -1 }, wantErr: "editor.debounce_ms"},
		{name: "zero threshold", mutate: func(c *Config) { c.Errors.RepeatThreshold = 0 }, wantErr: "errors.repeat_threshold"},
		{name: "two placeholders", mutate: func(c *Config) { c.Menu.RootTitle = "%s %s" }, wantErr: "menu.root_title"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			sections = append(sections, trimmed)
		}
	}
	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i])
	}
	assert.True(t, strings.HasPrefix(string(content), "# selsearch configuration"))
}

func TestSortTOMLSections(t *testing.T) {
	in := "top = 1\n[b]\nx = 1\n\n[a]\ny = 2\n"
	assert.Equal(t, "top = 1\n\n[a]\ny = 2\n\n[b]\nx = 1\n", sortTOMLSections(in))
}
