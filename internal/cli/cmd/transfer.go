package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/domain/menu"
)

var (
	transferFormat string
	transferYes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the menu to a file",
	Long: `Write the menu as pretty-printed JSON (or YAML with --format yaml).

Without a file argument the menu is written to stdout. The format is
guessed from the file extension when --format is not given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the menu with an exported file",
	Long: `Replace the whole menu with the content of an exported file.

Use - to read from stdin. Missing fields are filled with defaults and
duplicate ids are regenerated. A file that is not a list of items, or that
nests groups inside groups, is rejected and the menu is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var restoreDefaultsCmd = &cobra.Command{
	Use:   "restore-defaults",
	Short: "Replace the menu with the default engines",
	Args:  cobra.NoArgs,
	RunE:  runRestoreDefaults,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy the menu to or from the sync directory",
	Long: `The sync directory holds a copy of the menu that can be shared between
machines with any file synchronization tool. A running daemon picks up
changes made there on its own.`,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Copy the local menu to the sync directory",
	Args:  cobra.NoArgs,
	RunE:  runSyncPush,
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local menu with the synced one",
	Args:  cobra.NoArgs,
	RunE:  runSyncPull,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, restoreDefaultsCmd, syncCmd)
	syncCmd.AddCommand(syncPushCmd, syncPullCmd)

	exportCmd.Flags().StringVarP(&transferFormat, "format", "f", "", "json or yaml")
	importCmd.Flags().StringVarP(&transferFormat, "format", "f", "", "json or yaml")
	importCmd.Flags().BoolVarP(&transferYes, "yes", "y", false, "skip confirmation prompt")
	restoreDefaultsCmd.Flags().BoolVarP(&transferYes, "yes", "y", false, "skip confirmation prompt")
	syncPullCmd.Flags().BoolVarP(&transferYes, "yes", "y", false, "skip confirmation prompt")
}

// formatFor resolves --format, falling back to the file extension.
func formatFor(flag, path string) (menu.Format, error) {
	if flag != "" {
		return menu.ParseFormat(flag)
	}
	if path == "" || path == "-" {
		return menu.FormatJSON, nil
	}
	return menu.ParseFormat(filepath.Ext(path))
}

func runExport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	format, err := formatFor(transferFormat, path)
	if err != nil {
		return err
	}

	if path == "" || path == "-" {
		return app.ManageUC.Export(app.Ctx(), os.Stdout, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := app.ManageUC.Export(app.Ctx(), f, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintln(os.Stderr, app.Theme.SuccessLine(fmt.Sprintf("Menu exported to %s", app.Theme.Highlight.Render(path))))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path := args[0]
	format, err := formatFor(transferFormat, path)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f

		ok, err := confirm("Replace the current menu with "+filepath.Base(path), transferYes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(app.Theme.Subtle.Render("Cancelled"))
			return nil
		}
	}

	tree, err := app.ManageUC.Import(app.Ctx(), r, format)
	if err != nil {
		if errors.Is(err, menu.ErrInvalidImport) {
			fmt.Println(app.Theme.ErrorLine("Invalid menu file, nothing was changed"))
		}
		return err
	}

	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Imported %d items", tree.Count())))
	return nil
}

func runRestoreDefaults(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ok, err := confirm("Replace the current menu with the defaults", transferYes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(app.Theme.Subtle.Render("Cancelled"))
		return nil
	}

	tree, err := app.ManageUC.RestoreDefaults(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Default menu restored (%d items)", tree.Count())))
	return nil
}

func runSyncPush(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.ManageUC.PushSync(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Menu copied to %s", app.Theme.Highlight.Render(app.Sync.Path()))))
	return nil
}

func runSyncPull(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ok, err := confirm("Replace the local menu with the synced one", transferYes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(app.Theme.Subtle.Render("Cancelled"))
		return nil
	}

	tree, err := app.ManageUC.PullSync(app.Ctx())
	if errors.Is(err, usecase.ErrSyncEmpty) {
		fmt.Println(app.Theme.WarningLine("The sync directory holds no menu yet, run 'selsearch sync push' first"))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Pulled %d items", tree.Count())))
	return nil
}
