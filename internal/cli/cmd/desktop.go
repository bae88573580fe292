package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/infrastructure/desktop"
	xdgadapter "github.com/bnema/selsearch/internal/infrastructure/xdg"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage desktop integration",
	Long: `Install launcher entries for the settings editor and the picker.

Subcommands:
  install  - Install desktop files to ~/.local/share/applications/
  remove   - Remove them
  status   - Show what is installed`,
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install desktop files",
	Long: `Install selsearch-settings.desktop and selsearch-pick.desktop to the
user's applications directory so both show up in application launchers.

Location: $XDG_DATA_HOME/applications/
         (typically ~/.local/share/applications/)

This command is idempotent - safe to run multiple times.`,
	Args: cobra.NoArgs,
	RunE: runDesktopInstall,
}

var desktopRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove desktop files",
	Args:  cobra.NoArgs,
	RunE:  runDesktopRemove,
}

var desktopStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installed desktop files",
	Args:  cobra.NoArgs,
	RunE:  runDesktopStatus,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopInstallCmd, desktopRemoveCmd, desktopStatusCmd)
}

func runDesktopInstall(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	paths, err := desktop.New(xdgadapter.New()).Install(app.Ctx())
	if err != nil {
		fmt.Println(theme.ErrorLine(err.Error()))
		return err
	}
	for _, p := range paths {
		fmt.Println(theme.SuccessLine("Installed " + theme.Highlight.Render(p)))
	}
	return nil
}

func runDesktopRemove(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := desktop.New(xdgadapter.New()).Remove(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine("Desktop files removed"))
	return nil
}

func runDesktopStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	status, err := desktop.New(xdgadapter.New()).GetStatus(app.Ctx())
	if err != nil {
		return err
	}

	fmt.Println(theme.Subtle.Render("executable: ") + status.ExecutablePath)
	for _, e := range desktop.Entries {
		path := filepath.Join(status.ApplicationsDir, e.FileName)
		if status.Installed[e.FileName] {
			fmt.Println(theme.SuccessLine(path))
		} else {
			fmt.Println(theme.WarningLine(path + " (not installed)"))
		}
	}
	return nil
}
