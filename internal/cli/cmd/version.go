package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/bnema/selsearch/internal/cli/styles"
	"github.com/bnema/selsearch/internal/infrastructure/schema"
)

var schemaOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(styles.NewTheme().RenderVersion(buildInfo))
	},
}

var schemaCmd = &cobra.Command{
	Use:       "schema [menu|config]",
	Short:     "Print the JSON Schema of the export file or the config file",
	Long:      `Print the JSON Schema of an exported menu (default) or of config.toml.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: schemaKinds(),
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(versionCmd, schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write to file instead of stdout")
}

func runSchema(_ *cobra.Command, args []string) error {
	kind := schema.KindMenu
	if len(args) == 1 {
		kind = schema.Kind(args[0])
	}

	if schemaOutput != "" {
		if err := schema.WriteFile(kind, schemaOutput); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, styles.NewTheme().SuccessLine("Schema written to "+schemaOutput))
		return nil
	}

	data, err := schema.Generate(kind)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func schemaKinds() []string {
	return lo.Map(schema.Kinds(), func(k schema.Kind, _ int) string { return string(k) })
}
