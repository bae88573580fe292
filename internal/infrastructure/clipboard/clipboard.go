// Package clipboard reads the primary selection using wl-clipboard on Wayland,
// with an X11 fallback through github.com/atotto/clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/logging"
)

// ErrNoSelectionTool is returned when no selection tool is installed.
var ErrNoSelectionTool = errors.New("no selection tool available (install wl-clipboard, xclip or xsel)")

// commandRunner runs a command and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Adapter implements port.SelectionReader.
type Adapter struct {
	pasteCmd string
	run      commandRunner
	fallback func() (string, error)
}

// New creates a selection reader.
// Detects Wayland vs X11 and selects the appropriate tool.
func New() port.SelectionReader {
	a := &Adapter{run: runCommand}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath("wl-paste"); err == nil {
			a.pasteCmd = path
		}
	}

	// atotto reads the primary selection through xclip or xsel.
	if a.pasteCmd == "" && os.Getenv("DISPLAY") != "" && !clipboard.Unsupported {
		clipboard.Primary = true
		a.fallback = clipboard.ReadAll
	}

	return a
}

// ReadSelection returns the primary selection, trimmed of surrounding whitespace.
func (a *Adapter) ReadSelection(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	var (
		text string
		tool string
	)
	switch {
	case a.pasteCmd != "":
		tool = a.pasteCmd
		out, err := a.run(ctx, a.pasteCmd, "--primary", "--no-newline")
		if err != nil {
			// wl-paste exits non-zero when nothing is selected.
			log.Debug().Err(err).Str("tool", tool).Msg("selection read failed (may be empty)")
			return "", nil
		}
		text = string(out)
	case a.fallback != nil:
		tool = "atotto/clipboard"
		out, err := a.fallback()
		if err != nil {
			return "", fmt.Errorf("failed to read primary selection: %w", err)
		}
		text = out
	default:
		log.Error().Err(ErrNoSelectionTool).Msg("selection read failed")
		return "", ErrNoSelectionTool
	}

	text = strings.TrimSpace(text)
	log.Debug().Str("tool", tool).Int("len", len(text)).Msg("selection read success")
	return text, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
