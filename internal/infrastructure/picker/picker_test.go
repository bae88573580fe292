package picker

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
)

func sampleEntries() []entity.MenuEntry {
	tree := entity.Tree{
		entity.NewSearch("imdb", "IMDb", "https://imdb.example/find?q=%s"),
		entity.NewSeparator("sep"),
		&entity.Group{ID: "tv", Name: "TV Shows", Items: []entity.Leaf{
			entity.NewSearch("simkl", "Simkl", "https://simkl.example/search/?q=%s"),
			entity.NewSeparator("sep2"),
			&entity.Search{ID: "all", Name: entity.SearchEverywhereName},
		}},
	}
	return menu.Plan(tree, menu.DefaultLabels())
}

func TestChoices(t *testing.T) {
	choices := Choices(sampleEntries(), "")

	assert.Equal(t, []Choice{
		{ID: "imdb", Label: "IMDb"},
		{ID: "simkl", Label: "TV Shows › Simkl"},
		{ID: "all", Label: "TV Shows › Search everywhere"},
		{ID: menu.OptionsMenuID, Label: "Options"},
	}, choices)
}

func TestPrompt(t *testing.T) {
	assert.Equal(t, "Search 'the wire' on", Prompt(sampleEntries(), "the\n wire"))
	assert.Equal(t, "Search 'x' on", Prompt(nil, "x"))
}

type fakeRun struct {
	argv  []string
	stdin string
	out   string
	err   error
}

func (f *fakeRun) run(_ context.Context, argv []string, stdin []byte) ([]byte, error) {
	f.argv = argv
	f.stdin = string(stdin)
	return []byte(f.out), f.err
}

func newTestPicker(launcherName string, command []string, installed []string, run *fakeRun) *Picker {
	return &Picker{
		launcher: launcherName,
		command:  command,
		lookPath: func(name string) (string, error) {
			for _, n := range installed {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		},
		run: run.run,
	}
}

func TestPicker_Argv(t *testing.T) {
	tests := []struct {
		name        string
		wayland     string
		launcher    string
		command     []string
		installed   []string
		wantArgv0   string
		wantIndexed bool
		wantErr     error
	}{
		{name: "auto prefers fuzzel on wayland", wayland: "wayland-1", launcher: "auto", installed: []string{"rofi", "fuzzel"}, wantArgv0: "/usr/bin/fuzzel", wantIndexed: true},
		{name: "auto skips wayland-only on x11", launcher: "auto", installed: []string{"fuzzel", "dmenu"}, wantArgv0: "/usr/bin/dmenu"},
		{name: "explicit launcher", wayland: "wayland-1", launcher: "wofi", installed: []string{"fuzzel", "wofi"}, wantArgv0: "/usr/bin/wofi"},
		{name: "custom command", command: []string{"tofi"}, wantArgv0: "tofi"},
		{name: "nothing installed", launcher: "auto", wantErr: ErrNoLauncher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WAYLAND_DISPLAY", tt.wayland)
			p := newTestPicker(tt.launcher, tt.command, tt.installed, &fakeRun{})

			argv, indexed, err := p.Argv("Search 'x' on")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgv0, argv[0])
			assert.Equal(t, tt.wantIndexed, indexed)
		})
	}
}

func TestPicker_Choose(t *testing.T) {
	choices := Choices(sampleEntries(), "")

	t.Run("indexed launcher", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "")
		run := &fakeRun{out: "1\n"}
		p := newTestPicker("rofi", nil, []string{"rofi"}, run)

		got, err := p.Choose(context.Background(), "Search 'x' on", choices)
		require.NoError(t, err)
		assert.Equal(t, "simkl", got.ID)
		assert.Equal(t, "IMDb\nTV Shows › Simkl\nTV Shows › Search everywhere\nOptions\n", run.stdin)
		assert.Contains(t, run.argv, "Search 'x' on")
	})

	t.Run("line launcher", func(t *testing.T) {
		t.Setenv("WAYLAND_DISPLAY", "")
		p := newTestPicker("dmenu", nil, []string{"dmenu"}, &fakeRun{out: "Options\n"})

		got, err := p.Choose(context.Background(), "p", choices)
		require.NoError(t, err)
		assert.Equal(t, menu.OptionsMenuID, got.ID)
	})

	t.Run("cancelled", func(t *testing.T) {
		p := newTestPicker("", []string{"dmenu"}, nil, &fakeRun{err: &exec.ExitError{}})

		_, err := p.Choose(context.Background(), "p", choices)
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("unknown line", func(t *testing.T) {
		p := newTestPicker("", []string{"dmenu"}, nil, &fakeRun{out: "typed by hand\n"})

		_, err := p.Choose(context.Background(), "p", choices)
		assert.ErrorContains(t, err, "unknown entry")
	})

	t.Run("launcher failure", func(t *testing.T) {
		p := newTestPicker("", []string{"dmenu"}, nil, &fakeRun{err: errors.New("boom")})

		_, err := p.Choose(context.Background(), "p", choices)
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("no choices", func(t *testing.T) {
		p := newTestPicker("", []string{"dmenu"}, nil, &fakeRun{})

		_, err := p.Choose(context.Background(), "p", nil)
		assert.ErrorIs(t, err, ErrNoChoices)
	})
}
