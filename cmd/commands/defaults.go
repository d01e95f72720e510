package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blogpanel/blogpanel/internal/cli"
	"github.com/blogpanel/blogpanel/pkg/models"
)

// DefaultsResult pairs the state the panel opens with and the one it resets to
type DefaultsResult struct {
	Source  string              `json:"source" yaml:"source"`
	Initial models.ArticleState `json:"initial" yaml:"initial"`
	Reset   models.ArticleState `json:"reset" yaml:"reset"`
}

// NewDefaultsCommand creates the defaults command
func NewDefaultsCommand() *cobra.Command {
	var format string
	var catalogPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Show the initial and reset option sets",
		Long: `Show the option set the panel starts with and the one Reset restores.

The initial set takes the first option of every category. The reset set
overrides it with the catalog's defaults.`,
		Example: `  blogpanel defaults
  blogpanel defaults --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(format); err != nil {
				return err
			}

			ctx := cli.NewCommandContext(configPath)
			ctx.LoadSettingsWithDefault()
			catalog, err := ctx.LoadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			result := DefaultsResult{
				Source:  ctx.CatalogSource(),
				Initial: catalog.Initial(),
				Reset:   catalog.DefaultState(),
			}

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, result)
			}
			outputDefaultsText(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&configPath, "config", "", "Settings file (default .blogpanel/settings.yaml)")

	return cmd
}

func outputDefaultsText(w io.Writer, result DefaultsResult) {
	fmt.Fprintf(w, "Catalog: %s\n\n", result.Source)

	table := cli.NewTableFormatter(w)
	table.Header("CATEGORY", "INITIAL", "RESET")
	for _, cat := range models.Categories() {
		initial := result.Initial.Get(cat)
		reset := result.Reset.Get(cat)
		table.Row(cat.Title(), initial.Title, reset.Title)
	}
	table.Flush()
}
