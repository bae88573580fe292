package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/cli/styles"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/infrastructure/ipc"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the daemon is running and what it shows",
	Long: `Ask the daemon for its state and print the menu it currently shows.

With --watch the menu is printed again every time the daemon rebuilds it,
until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "follow menu rebuilds")
}

func runStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	health, err := app.Client.Health(app.Ctx())
	if err != nil {
		if errors.Is(err, ipc.ErrDaemonUnavailable) {
			fmt.Println(theme.WarningLine("Daemon not running"))
			fmt.Println(theme.Subtle.Render("  socket: " + app.Client.SocketPath()))
			return nil
		}
		return err
	}

	fmt.Println(theme.SuccessLine(fmt.Sprintf("Daemon %s (%s)", health.Status, theme.Highlight.Render(health.State))))
	fmt.Println(theme.Subtle.Render("  socket: " + app.Client.SocketPath()))

	if !statusWatch {
		snap, err := app.Client.Menu(app.Ctx())
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(renderEntries(theme, snap.Entries))
		return nil
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Client.Events(ctx, func(ev ipc.Event) error {
		if ev.Type != ipc.EventSnapshot {
			return nil
		}
		fmt.Println()
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("revision %d", ev.Snapshot.Revision)))
		fmt.Println(renderEntries(theme, ev.Snapshot.Entries))
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// renderEntries prints surface entries the way a context menu nests them.
func renderEntries(theme *styles.Theme, entries []entity.MenuEntry) string {
	if len(entries) == 0 {
		return theme.Subtle.Render("(no menu)")
	}

	depth := map[string]int{"": -1}
	var b strings.Builder
	for _, e := range entries {
		d := depth[e.ParentID] + 1
		depth[e.ID] = d

		line := theme.Normal.Render(e.Title)
		switch {
		case e.IsSeparator():
			line = theme.Subtle.Render("────────────")
		case e.ID == menu.RootMenuID:
			line = theme.Title.Render(e.Title)
		}
		b.WriteString(strings.Repeat("  ", d))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
