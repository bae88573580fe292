package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/cli/styles"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/validation"
)

var (
	menuListIDs   bool
	menuListURLs  bool
	menuListJSON  bool
	menuGroup     string
	menuName      string
	menuURL       string
	menuEncoding  string
	menuMoveIndex int
	menuYes       bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Inspect and edit the search menu",
	Long: `Non-interactive menu editing. Every change is saved to local storage
and the daemon is asked to rebuild its menu.

Use 'selsearch settings' for the interactive editor.`,
}

var menuListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the menu tree",
	Args:    cobra.NoArgs,
	RunE:    runMenuList,
}

var menuAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a search engine",
	Long: `Append a search engine to the main menu, or to a group with --group.

The URL must contain %s where the selected text goes, for example:
  selsearch menu add --name IMDb --url 'https://www.imdb.com/find?q=%s'`,
	Args: cobra.NoArgs,
	RunE: runMenuAdd,
}

var menuAddGroupCmd = &cobra.Command{
	Use:   "add-group",
	Short: "Add a group (submenu)",
	Args:  cobra.NoArgs,
	RunE:  runMenuAddGroup,
}

var menuAddSeparatorCmd = &cobra.Command{
	Use:   "add-separator",
	Short: "Add a separator",
	Args:  cobra.NoArgs,
	RunE:  runMenuAddSeparator,
}

var menuRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Remove an item (a group is removed with its items)",
	Args:    cobra.ExactArgs(1),
	RunE:    runMenuRemove,
}

var menuMoveCmd = &cobra.Command{
	Use:   "mv <id>",
	Short: "Move an item",
	Long: `Move an item to --index within the main menu, or within a group with
--group. A negative index moves the item to the end. Groups cannot be moved
into groups.`,
	Args: cobra.ExactArgs(1),
	RunE: runMenuMove,
}

var menuRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runMenuRename,
}

var menuSetURLCmd = &cobra.Command{
	Use:   "set-url <id> <url>",
	Short: "Change the URL of a search engine",
	Args:  cobra.ExactArgs(2),
	RunE:  runMenuSetURL,
}

var menuSetEncodingCmd = &cobra.Command{
	Use:   "set-encoding <id> [encoding]",
	Short: "Change how the selection is encoded in a search URL",
	Long: `Change the query encoding of a search engine. Without an encoding
argument an interactive list is shown.

Encodings:
  encodeURIComponent  percent-encode (%20)
  plus                spaces become +
  dash                spaces become -
  none                leave the text as is`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMenuSetEncoding,
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.AddCommand(menuListCmd, menuAddCmd, menuAddGroupCmd, menuAddSeparatorCmd,
		menuRemoveCmd, menuMoveCmd, menuRenameCmd, menuSetURLCmd, menuSetEncodingCmd)

	menuListCmd.Flags().BoolVar(&menuListIDs, "ids", false, "show item ids")
	menuListCmd.Flags().BoolVar(&menuListURLs, "urls", false, "show search URLs")
	menuListCmd.Flags().BoolVar(&menuListJSON, "json", false, "print the stored JSON instead")

	menuAddCmd.Flags().StringVarP(&menuGroup, "group", "g", "", "id of the group to add to")
	menuAddCmd.Flags().StringVarP(&menuName, "name", "n", "", "engine name")
	menuAddCmd.Flags().StringVarP(&menuURL, "url", "u", "", "search URL containing %s")
	menuAddCmd.Flags().StringVarP(&menuEncoding, "encoding", "e", "", "query encoding")

	menuAddGroupCmd.Flags().StringVarP(&menuName, "name", "n", "", "group name")

	menuAddSeparatorCmd.Flags().StringVarP(&menuGroup, "group", "g", "", "id of the group to add to")

	menuRemoveCmd.Flags().BoolVarP(&menuYes, "yes", "y", false, "skip confirmation prompt")

	menuMoveCmd.Flags().StringVarP(&menuGroup, "group", "g", "", "id of the destination group")
	menuMoveCmd.Flags().IntVarP(&menuMoveIndex, "index", "i", -1, "destination position")
}

func runMenuList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	tree, err := app.ManageUC.Load(app.Ctx())
	if err != nil {
		return err
	}

	if menuListJSON {
		return menu.Encode(os.Stdout, tree, menu.FormatJSON)
	}

	fmt.Println(app.Theme.RenderTree(tree, styles.TreeOptions{ShowIDs: menuListIDs, ShowURLs: menuListURLs}))
	return nil
}

func runMenuAdd(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	var enc entity.QueryEncoding
	if menuEncoding != "" {
		if enc, err = parseEncoding(menuEncoding); err != nil {
			return err
		}
	}

	search, err := app.ManageUC.AddSearch(ctx, menuGroup)
	if err != nil {
		return err
	}
	if menuName != "" {
		if err := app.ManageUC.Rename(ctx, search.ID, menuName); err != nil {
			return err
		}
	}
	if menuURL != "" {
		if err := app.ManageUC.SetURL(ctx, search.ID, menuURL); err != nil {
			return err
		}
	}
	if enc != "" {
		if err := app.ManageUC.SetEncoding(ctx, search.ID, enc); err != nil {
			return err
		}
	}

	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Added search %s", app.Theme.Highlight.Render(search.ID))))
	printURLWarnings(app.Theme, menuName, menuURL)
	return nil
}

func runMenuAddGroup(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	group, err := app.ManageUC.AddGroup(ctx)
	if err != nil {
		return err
	}
	if menuName != "" {
		if err := app.ManageUC.Rename(ctx, group.ID, menuName); err != nil {
			return err
		}
	}

	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Added group %s", app.Theme.Highlight.Render(group.ID))))
	return nil
}

func runMenuAddSeparator(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	sep, err := app.ManageUC.AddSeparator(app.Ctx(), menuGroup)
	if err != nil {
		return err
	}

	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Added separator %s", app.Theme.Highlight.Render(sep.ID))))
	return nil
}

func runMenuRemove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	id := args[0]

	tree, err := app.ManageUC.Load(ctx)
	if err != nil {
		return err
	}
	node, _, ok := menu.FindNode(tree, id)
	if !ok {
		return fmt.Errorf("%w: %s", menu.ErrNodeNotFound, id)
	}

	label := fmt.Sprintf("Remove %q", node.NodeName())
	if group, isGroup := node.(*entity.Group); isGroup && len(group.Items) > 0 {
		label = fmt.Sprintf("Remove group %q and its %d items", group.Name, len(group.Items))
	}
	ok, err = confirm(label, menuYes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(app.Theme.Subtle.Render("Cancelled"))
		return nil
	}

	if _, err := app.ManageUC.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Removed %s", app.Theme.Highlight.Render(node.NodeName()))))
	return nil
}

func runMenuMove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	to := menu.Location{GroupID: menuGroup, Index: menuMoveIndex}
	if err := app.ManageUC.Move(app.Ctx(), args[0], to); err != nil {
		return err
	}

	where := "main menu"
	if to.GroupID != "" {
		where = "group " + to.GroupID
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Moved %s to %s", args[0], where)))
	return nil
}

func runMenuRename(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.ManageUC.Rename(app.Ctx(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Renamed %s", args[0])))
	return nil
}

func runMenuSetURL(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.ManageUC.SetURL(app.Ctx(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("Updated URL of %s", args[0])))
	if search, ok := menu.FindSearch(app.ManageUC.Tree(), args[0]); ok {
		printURLWarnings(app.Theme, search.Name, search.URL)
	}
	return nil
}

// printURLWarnings reports template problems. They never block a save.
func printURLWarnings(theme *styles.Theme, name, template string) {
	for _, w := range validation.SearchURLWarnings(name, template) {
		fmt.Println(theme.WarningLine(w))
	}
}

func runMenuSetEncoding(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	id := args[0]

	tree, err := app.ManageUC.Load(ctx)
	if err != nil {
		return err
	}
	search, ok := menu.FindSearch(tree, id)
	if !ok {
		return fmt.Errorf("%w: %s", menu.ErrNotASearch, id)
	}

	var enc entity.QueryEncoding
	if len(args) == 2 {
		enc, err = parseEncoding(args[1])
	} else {
		enc, err = selectEncoding(search.QueryEncoding)
	}
	if err != nil {
		return err
	}

	if err := app.ManageUC.SetEncoding(ctx, id, enc); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessLine(fmt.Sprintf("%s now uses %s", search.Name, enc.Label())))
	return nil
}
