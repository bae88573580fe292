package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/logging"
)

// ExecPlaceholder is replaced by the selsearch executable path in launcher commands.
const ExecPlaceholder = "{exe}"

// ErrNoTerminal is returned when no launcher is configured and no terminal is found.
var ErrNoTerminal = errors.New("no terminal emulator found (set settings.launcher_command)")

// terminals are tried in order when no launcher command is configured.
var terminals = [][]string{
	{"xdg-terminal-exec"},
	{"foot"},
	{"kitty"},
	{"alacritty", "-e"},
	{"wezterm", "start", "--"},
	{"xterm", "-e"},
}

// SettingsLauncher implements port.SettingsOpener by starting
// "selsearch settings" in a detached terminal.
type SettingsLauncher struct {
	command  []string
	execPath func() (string, error)
	lookPath func(string) (string, error)
	start    func(name string, args ...string) (int, error)
}

// NewSettingsLauncher creates a launcher. command may contain ExecPlaceholder;
// an empty command runs the settings editor in the first terminal found.
func NewSettingsLauncher(command []string) *SettingsLauncher {
	return &SettingsLauncher{
		command:  command,
		execPath: ExecutablePath,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Command returns the argv that OpenSettings runs.
func (l *SettingsLauncher) Command() ([]string, error) {
	execPath, err := l.execPath()
	if err != nil {
		return nil, fmt.Errorf("get executable path: %w", err)
	}

	if len(l.command) > 0 {
		argv := make([]string, len(l.command))
		for i, arg := range l.command {
			argv[i] = strings.ReplaceAll(arg, ExecPlaceholder, execPath)
		}
		return argv, nil
	}

	candidates := terminals
	if term := os.Getenv("TERMINAL"); term != "" {
		candidates = append([][]string{{term, "-e"}}, candidates...)
	}
	for _, candidate := range candidates {
		if _, err := l.lookPath(candidate[0]); err != nil {
			continue
		}
		argv := append([]string{}, candidate...)
		return append(argv, execPath, "settings"), nil
	}
	return nil, ErrNoTerminal
}

// OpenSettings starts the settings editor without waiting for it.
func (l *SettingsLauncher) OpenSettings(ctx context.Context) error {
	log := logging.FromContext(ctx)

	argv, err := l.Command()
	if err != nil {
		return err
	}

	pid, err := l.start(argv[0], argv[1:]...)
	if err != nil {
		return fmt.Errorf("spawn settings editor: %w", err)
	}

	log.Info().Strs("argv", argv).Int("pid", pid).Msg("settings editor launched")
	return nil
}

// startDetached starts a process that survives the daemon.
func startDetached(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

var _ port.SettingsOpener = (*SettingsLauncher)(nil)
