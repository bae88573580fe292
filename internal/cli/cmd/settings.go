package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/cli/model"
)

var settingsDetach bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the search menu interactively",
	Long: `Open the interactive menu editor.

Changes to names and URLs are saved after a short pause, everything else is
saved immediately. The daemon rebuilds its menu after every save.

With --detach the daemon opens the editor in a new terminal window instead.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().BoolVarP(&settingsDetach, "detach", "d", false, "ask the daemon to open the editor in a terminal")
}

func runSettings(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if settingsDetach {
		if err := app.Client.OpenSettings(app.Ctx()); err != nil {
			return daemonHint(app, err)
		}
		fmt.Println(app.Theme.SuccessLine("Settings editor opened"))
		return nil
	}

	m := model.NewSettingsModel(app.Ctx(), app.Theme, app.ManageUC)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return app.ManageUC.Flush(app.Ctx())
}
