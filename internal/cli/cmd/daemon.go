package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the background menu daemon",
	Long: `Run the daemon that owns the search menu.

The daemon loads the menu from local storage (seeding the defaults on first
run), rebuilds it whenever either storage area or the config file changes,
and serves clicks and update requests on a unix socket:

  $XDG_RUNTIME_DIR/selsearch/daemon.sock

Only one daemon runs at a time. Stop it with SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.RunDaemon(ctx)
}
