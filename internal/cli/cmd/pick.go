package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/cli"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/clipboard"
	"github.com/bnema/selsearch/internal/infrastructure/ipc"
	"github.com/bnema/selsearch/internal/infrastructure/picker"
	"github.com/bnema/selsearch/internal/logging"
)

var (
	pickText     string
	pickLauncher string
	clickIndex   int
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Search the primary selection through a launcher menu",
	Long: `Show the daemon's menu in rofi, fuzzel, wofi or dmenu and search the
selected text with the chosen engine.

The text comes from the primary selection (the last text highlighted with
the mouse) unless --text is given. Bind this command to a key in your
window manager, for example in Sway:

  bindsym $mod+s exec selsearch pick`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

var clickCmd = &cobra.Command{
	Use:   "click <id> [text...]",
	Short: "Click a menu entry from a script",
	Long: `Deliver a click on the menu entry <id> with the given text as the
selection, as if it had been chosen from the menu. Prints the opened URLs.

Use 'selsearch menu list --ids' to find entry ids.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(pickCmd, clickCmd)

	pickCmd.Flags().StringVarP(&pickText, "text", "t", "", "search this text instead of the selection")
	pickCmd.Flags().StringVarP(&pickLauncher, "launcher", "l", "", "launcher to use (overrides picker.launcher)")
	clickCmd.Flags().IntVar(&clickIndex, "tab-index", -1, "position of the tab the click came from")
}

func runPick(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	selection, err := readSelection(ctx, pickText, clipboard.New())
	if err != nil {
		return err
	}

	snap, err := app.Client.Menu(ctx)
	if err != nil {
		return daemonHint(app, err)
	}

	launcher := app.Config.Picker.Launcher
	if pickLauncher != "" {
		launcher = pickLauncher
	}
	p := picker.New(launcher, app.Config.Picker.Command)

	choices := picker.Choices(snap.Entries, app.Config.Picker.GroupSeparator)
	choice, err := p.Choose(ctx, picker.Prompt(snap.Entries, selection), choices)
	if errors.Is(err, picker.ErrCancelled) {
		log.Debug().Msg("pick cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	resp, err := app.Client.Click(ctx, entity.MenuClick{
		MenuItemID:    choice.ID,
		SelectionText: selection,
		Tab:           entity.TabRef{Index: -1},
	})
	if err != nil {
		return daemonHint(app, err)
	}
	log.Debug().Str("item", choice.ID).Strs("urls", resp.URLs).Msg("pick dispatched")
	return nil
}

var errNoSelection = errors.New("no text selected")

// readSelection returns text, or the reader's selection when text is empty.
// Whitespace only counts as no selection; otherwise the text is kept as is.
func readSelection(ctx context.Context, text string, reader port.SelectionReader) (string, error) {
	if text == "" {
		var err error
		if text, err = reader.ReadSelection(ctx); err != nil {
			return "", err
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", errNoSelection
	}
	return text, nil
}

func runClick(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	resp, err := app.Client.Click(app.Ctx(), entity.MenuClick{
		MenuItemID:    args[0],
		SelectionText: strings.Join(args[1:], " "),
		Tab:           entity.TabRef{Index: clickIndex},
	})
	if err != nil {
		return daemonHint(app, err)
	}

	if resp.OpenedSettings {
		fmt.Println(app.Theme.SuccessLine("Settings opened"))
	}
	for _, u := range resp.URLs {
		fmt.Println(u)
	}
	return nil
}

// daemonHint adds a start hint to connection errors.
func daemonHint(app *cli.App, err error) error {
	if errors.Is(err, ipc.ErrDaemonUnavailable) {
		fmt.Println(app.Theme.WarningLine("The daemon is not running, start it with 'selsearch daemon'"))
	}
	return err
}
