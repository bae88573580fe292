package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/cli"
	"github.com/bnema/selsearch/internal/cli/styles"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/desktop"
	"github.com/bnema/selsearch/internal/infrastructure/filesystem"
	xdgadapter "github.com/bnema/selsearch/internal/infrastructure/xdg"
)

var (
	purgeForce bool
	purgeSync  bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove selsearch data and configuration",
	Long: `Remove everything selsearch wrote to disk:
  - Config directory
  - Data directory (menu database)
  - State directory (logs)
  - Desktop integration files

A sync directory configured outside the data directory is kept unless --sync
is given, since other machines may share it.

Stop the daemon first. Use --force to skip the confirmation and the daemon check.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "remove everything without prompting")
	purgeCmd.Flags().BoolVar(&purgeSync, "sync", false, "also remove an external sync directory")
}

func runPurge(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	theme := app.Theme

	if !purgeForce {
		if _, err := app.Client.Health(ctx); err == nil {
			fmt.Println(theme.WarningLine("The daemon is running; stop it first or use --force"))
			return cli.ErrDaemonRunning
		}
	}

	xdg := xdgadapter.New()
	purgeUC := usecase.NewPurgeDataUseCase(filesystem.New(), xdg, desktop.New(xdg), app.Config.Storage.SyncDir)

	targets, err := purgeUC.GetPurgeTargets(ctx)
	if err != nil {
		return err
	}

	var total int64
	existing := 0
	for _, t := range targets {
		if t.Exists && (purgeSync || t.Type != entity.PurgeTargetSync) {
			total += t.Size
			existing++
		}
	}
	if existing == 0 {
		fmt.Println(theme.SuccessLine("Nothing to remove"))
		return nil
	}

	fmt.Println(theme.RenderPurgeTargets(targets))
	ok, err := confirm(fmt.Sprintf("Remove %d items (%s)", existing, styles.FormatSize(total)), purgeForce)
	if err != nil || !ok {
		return err
	}

	out, err := purgeUC.PurgeAll(ctx, purgeSync)
	if out != nil {
		for _, r := range out.Results {
			if r.Success {
				fmt.Println(theme.SuccessLine(r.Target.Path))
			} else {
				fmt.Println(theme.ErrorLine(fmt.Sprintf("%s: %v", r.Target.Path, r.Error)))
			}
		}
	}
	return err
}
