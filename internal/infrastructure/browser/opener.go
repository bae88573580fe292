// Package browser opens search results in the user's web browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/browser"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/logging"
)

// URLPlaceholder is replaced by the target URL in browser commands.
const URLPlaceholder = "{url}"

// ErrEmptyURL is returned for navigation requests without a URL.
var ErrEmptyURL = errors.New("navigation request has no url")

func init() {
	// The daemon has no terminal; keep xdg-open chatter out of its output.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// TabOpener implements port.TabOpener. Desktop browsers place new tabs
// themselves, so the requested index and opener only end up in the log.
type TabOpener struct {
	command []string
	openURL func(url string) error
	run     func(ctx context.Context, name string, args ...string) error
}

// NewTabOpener creates an opener. An empty command uses the system default
// browser; otherwise URLPlaceholder in command is replaced by the URL, or the
// URL is appended when no argument contains it.
func NewTabOpener(command []string) *TabOpener {
	return &TabOpener{
		command: command,
		openURL: browser.OpenURL,
		run:     startCommand,
	}
}

// OpenTab opens req.URL.
func (o *TabOpener) OpenTab(ctx context.Context, req entity.NavigationRequest) error {
	if req.URL == "" {
		return ErrEmptyURL
	}
	log := logging.FromContext(ctx)

	if len(o.command) == 0 {
		if err := o.openURL(req.URL); err != nil {
			return fmt.Errorf("failed to open %s: %w", req.URL, err)
		}
	} else {
		argv := Argv(o.command, req.URL)
		if err := o.run(ctx, argv[0], argv[1:]...); err != nil {
			return fmt.Errorf("failed to run %s: %w", argv[0], err)
		}
	}

	log.Debug().
		Str("url", req.URL).
		Int("index", req.Index).
		Int("opener_tab_id", req.OpenerTabID).
		Msg("tab opened")
	return nil
}

// Argv expands command for url.
func Argv(command []string, url string) []string {
	argv := make([]string, 0, len(command)+1)
	substituted := false
	for _, arg := range command {
		if strings.Contains(arg, URLPlaceholder) {
			arg = strings.ReplaceAll(arg, URLPlaceholder, url)
			substituted = true
		}
		argv = append(argv, arg)
	}
	if !substituted {
		argv = append(argv, url)
	}
	return argv
}

func startCommand(_ context.Context, name string, args ...string) error {
	// Not bound to ctx: the browser outlives the click request.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

var _ port.TabOpener = (*TabOpener)(nil)
