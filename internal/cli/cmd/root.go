// Package cmd provides Cobra CLI commands for selsearch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/cli"
	"github.com/bnema/selsearch/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	rootCmd   = &cobra.Command{
		Use:   "selsearch",
		Short: "Search the selected text on your favorite sites",
		Long: `selsearch - a context menu for searching the selected text.

The daemon keeps a menu of search engines, groups and separators in sync
with its storage and opens one tab per chosen engine with the selection
substituted into the engine's URL.

Start the daemon with 'selsearch daemon', edit the menu with
'selsearch settings' or the 'selsearch menu' subcommands, and bind
'selsearch pick' to a key to search the primary selection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				Daemon: cmd.Name() == daemonCmd.Name(),
				Quiet:  !verbose,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				if err := app.Close(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warnings only")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
