package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaths struct{ apps string }

func (p fakePaths) ConfigDir() (string, error)       { return "", nil }
func (p fakePaths) DataDir() (string, error)         { return "", nil }
func (p fakePaths) StateDir() (string, error)        { return "", nil }
func (p fakePaths) RuntimeDir() (string, error)      { return "", nil }
func (p fakePaths) ApplicationsDir() (string, error) { return p.apps, nil }

func newTestAdapter(t *testing.T) (*Adapter, string) {
	t.Helper()
	apps := filepath.Join(t.TempDir(), "applications")
	a := &Adapter{
		paths:    fakePaths{apps: apps},
		execPath: func() (string, error) { return "/usr/local/bin/selsearch", nil },
	}
	return a, apps
}

func TestAdapter_InstallStatusRemove(t *testing.T) {
	ctx := context.Background()
	a, apps := newTestAdapter(t)

	status, err := a.GetStatus(ctx)
	require.NoError(t, err)
	for _, e := range Entries {
		assert.False(t, status.Installed[e.FileName], e.FileName)
	}

	paths, err := a.Install(ctx)
	require.NoError(t, err)
	require.Len(t, paths, len(Entries))

	content, err := os.ReadFile(filepath.Join(apps, "selsearch-settings.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exec=/usr/local/bin/selsearch settings\n")
	assert.Contains(t, string(content), "Terminal=true\n")

	content, err = os.ReadFile(filepath.Join(apps, "selsearch-pick.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exec=/usr/local/bin/selsearch pick\n")
	assert.Contains(t, string(content), "Terminal=false\n")

	status, err = a.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/selsearch", status.ExecutablePath)
	for _, e := range Entries {
		assert.True(t, status.Installed[e.FileName], e.FileName)
	}

	installed, err := a.InstalledFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, paths, installed)

	require.NoError(t, a.Remove(ctx))
	require.NoError(t, a.Remove(ctx))
	_, err = os.Stat(filepath.Join(apps, "selsearch-pick.desktop"))
	assert.True(t, os.IsNotExist(err))

	installed, err = a.InstalledFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, installed)
}

func newTestLauncher(command []string, available ...string) (*SettingsLauncher, *[]string) {
	var started []string
	l := &SettingsLauncher{
		command:  command,
		execPath: func() (string, error) { return "/bin/selsearch", nil },
		lookPath: func(name string) (string, error) {
			for _, a := range available {
				if a == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		},
		start: func(name string, args ...string) (int, error) {
			started = append([]string{name}, args...)
			return 42, nil
		},
	}
	return l, &started
}

func TestSettingsLauncher_Command(t *testing.T) {
	t.Setenv("TERMINAL", "")

	tests := []struct {
		name      string
		command   []string
		available []string
		want      []string
		wantErr   error
	}{
		{
			name:    "configured command with placeholder",
			command: []string{"footclient", "--app-id", "selsearch", ExecPlaceholder, "settings"},
			want:    []string{"footclient", "--app-id", "selsearch", "/bin/selsearch", "settings"},
		},
		{
			name:      "first terminal found",
			available: []string{"xterm", "alacritty"},
			want:      []string{"alacritty", "-e", "/bin/selsearch", "settings"},
		},
		{
			name:      "xdg-terminal-exec preferred",
			available: []string{"xdg-terminal-exec", "foot"},
			want:      []string{"xdg-terminal-exec", "/bin/selsearch", "settings"},
		},
		{
			name:    "no terminal",
			wantErr: ErrNoTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLauncher(tt.command, tt.available...)
			argv, err := l.Command()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, argv)
		})
	}
}

func TestSettingsLauncher_TerminalEnvWins(t *testing.T) {
	t.Setenv("TERMINAL", "st")
	l, _ := newTestLauncher(nil, "st", "foot")

	argv, err := l.Command()
	require.NoError(t, err)
	assert.Equal(t, []string{"st", "-e", "/bin/selsearch", "settings"}, argv)
}

func TestSettingsLauncher_OpenSettings(t *testing.T) {
	l, started := newTestLauncher([]string{"kitty", ExecPlaceholder, "settings"})

	require.NoError(t, l.OpenSettings(context.Background()))
	assert.Equal(t, []string{"kitty", "/bin/selsearch", "settings"}, *started)
}
