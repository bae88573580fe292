// Package picker renders the daemon's menu through a dmenu-style launcher
// (rofi, fuzzel, wofi or dmenu) and reports the chosen entry.
package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/logging"
)

var (
	// ErrCancelled is returned when the user closes the launcher without choosing.
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoLauncher is returned when no supported launcher is installed.
	ErrNoLauncher = errors.New("no launcher found (install fuzzel, rofi, wofi or dmenu)")
	// ErrNoChoices is returned when the menu has nothing to pick.
	ErrNoChoices = errors.New("menu has no entries")
)

// DefaultGroupSeparator joins a group and an item name.
const DefaultGroupSeparator = " › "

// Choice is one selectable line.
type Choice struct {
	ID    string
	Label string
}

// Choices flattens surface entries into selectable lines. The root entry,
// separators and group headers are skipped; group items are prefixed with
// their group title.
func Choices(entries []entity.MenuEntry, groupSeparator string) []Choice {
	if groupSeparator == "" {
		groupSeparator = DefaultGroupSeparator
	}

	titles := make(map[string]string, len(entries))
	parents := make(map[string]bool, len(entries))
	for _, e := range entries {
		titles[e.ID] = e.Title
		if e.ParentID != "" {
			parents[e.ParentID] = true
		}
	}

	choices := lo.FilterMap(entries, func(e entity.MenuEntry, _ int) (Choice, bool) {
		if e.ID == menu.RootMenuID || e.IsSeparator() || parents[e.ID] {
			return Choice{}, false
		}
		label := e.Title
		if e.ParentID != "" && e.ParentID != menu.RootMenuID {
			label = titles[e.ParentID] + groupSeparator + e.Title
		}
		return Choice{ID: e.ID, Label: sanitize(label)}, true
	})
	return choices
}

// Prompt renders the root title for selection.
func Prompt(entries []entity.MenuEntry, selection string) string {
	title := menu.DefaultLabels().RootTitle
	if root, ok := lo.Find(entries, func(e entity.MenuEntry) bool { return e.ID == menu.RootMenuID }); ok && root.Title != "" {
		title = root.Title
	}
	if len(selection) > 40 {
		selection = selection[:37] + "..."
	}
	return strings.ReplaceAll(title, entity.QueryPlaceholder, sanitize(selection))
}

// sanitize keeps labels on one line for launchers.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// launcher describes one supported program.
type launcher struct {
	name string
	// args builds argv for prompt; index reports whether the launcher prints
	// the zero-based index of the chosen line instead of the line itself.
	args  func(prompt string) []string
	index bool
}

var launchers = []launcher{
	{name: "fuzzel", args: func(p string) []string { return []string{"--dmenu", "--index", "--prompt", p + " "} }, index: true},
	{name: "rofi", args: func(p string) []string { return []string{"-dmenu", "-i", "-format", "i", "-p", p} }, index: true},
	{name: "wofi", args: func(p string) []string { return []string{"--dmenu", "--insensitive", "--prompt", p} }},
	{name: "dmenu", args: func(p string) []string { return []string{"-i", "-p", p} }},
}

// Runner runs argv with stdin and returns stdout.
type Runner func(ctx context.Context, argv []string, stdin []byte) ([]byte, error)

// Picker runs the configured launcher.
type Picker struct {
	launcher string
	command  []string
	lookPath func(string) (string, error)
	run      Runner
}

// New creates a picker. launcherName is auto or one of the supported
// launchers; a non-empty command overrides both and must print the chosen line.
func New(launcherName string, command []string) *Picker {
	return &Picker{
		launcher: launcherName,
		command:  command,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Argv returns the command line used for prompt and whether its output is an index.
func (p *Picker) Argv(prompt string) ([]string, bool, error) {
	if len(p.command) > 0 {
		return append([]string{}, p.command...), false, nil
	}

	candidates := launchers
	if p.launcher != "" && p.launcher != "auto" {
		l, ok := lo.Find(launchers, func(l launcher) bool { return l.name == p.launcher })
		if !ok {
			return nil, false, fmt.Errorf("unknown launcher %q", p.launcher)
		}
		candidates = []launcher{l}
	} else if os.Getenv("WAYLAND_DISPLAY") == "" {
		// fuzzel and wofi are Wayland only.
		candidates = lo.Filter(launchers, func(l launcher, _ int) bool { return l.name == "rofi" || l.name == "dmenu" })
	}

	for _, l := range candidates {
		path, err := p.lookPath(l.name)
		if err != nil {
			continue
		}
		return append([]string{path}, l.args(prompt)...), l.index, nil
	}
	return nil, false, ErrNoLauncher
}

// Choose shows choices and returns the picked one.
func (p *Picker) Choose(ctx context.Context, prompt string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	argv, indexed, err := p.Argv(prompt)
	if err != nil {
		return Choice{}, err
	}

	var input bytes.Buffer
	for _, c := range choices {
		input.WriteString(c.Label)
		input.WriteByte('\n')
	}

	out, err := p.run(ctx, argv, input.Bytes())
	answer := strings.TrimRight(string(out), "\r\n")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && answer == "" {
			return Choice{}, ErrCancelled
		}
		return Choice{}, fmt.Errorf("launcher %s failed: %w", argv[0], err)
	}
	if answer == "" {
		return Choice{}, ErrCancelled
	}

	logging.FromContext(ctx).Debug().Str("launcher", argv[0]).Str("answer", answer).Msg("launcher returned")

	if indexed {
		i, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || i < 0 || i >= len(choices) {
			return Choice{}, fmt.Errorf("launcher returned invalid index %q", answer)
		}
		return choices[i], nil
	}

	c, ok := lo.Find(choices, func(c Choice) bool { return c.Label == answer })
	if !ok {
		return Choice{}, fmt.Errorf("launcher returned unknown entry %q", answer)
	}
	return c, nil
}

func runCommand(ctx context.Context, argv []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}
