package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blogpanel/blogpanel/internal/cli"
	"github.com/blogpanel/blogpanel/pkg/models"
)

// CatalogResult represents the output structure for the catalog command
type CatalogResult struct {
	Source     string          `json:"source" yaml:"source"`
	Categories []CategoryGroup `json:"categories" yaml:"categories"`
}

// CategoryGroup lists the options of one category
type CategoryGroup struct {
	Category string          `json:"category" yaml:"category"`
	Title    string          `json:"title" yaml:"title"`
	Default  string          `json:"default" yaml:"default"`
	Options  []models.Option `json:"options" yaml:"options"`
}

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	var format string
	var catalogPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "catalog [category]",
		Short: "Show the options the settings panel offers",
		Long: `Show the option catalog: every category with its options and the
value the panel resets to.

Categories:
  font_family       - Font families
  font_color        - Font colors
  background_color  - Background colors
  content_width     - Content widths
  font_size         - Font sizes`,
		Example: `  # Show the whole catalog
  blogpanel catalog

  # Show only font colors as YAML
  blogpanel catalog font-color --format yaml

  # Inspect a custom catalog file
  blogpanel catalog --catalog themes.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(format); err != nil {
				return err
			}

			categories := models.Categories()
			if len(args) > 0 {
				cat, err := cli.ValidateCategory(args[0])
				if err != nil {
					return err
				}
				categories = []models.Category{cat}
			}

			if catalogPath != "" {
				if err := cli.ValidateCatalogPath(catalogPath); err != nil {
					return err
				}
			}

			ctx := cli.NewCommandContext(configPath)
			ctx.LoadSettingsWithDefault()
			catalog, err := ctx.LoadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			defaults := catalog.DefaultState()
			result := CatalogResult{Source: ctx.CatalogSource()}
			for _, cat := range categories {
				result.Categories = append(result.Categories, CategoryGroup{
					Category: cat.String(),
					Title:    cat.Title(),
					Default:  defaults.Get(cat).Value,
					Options:  catalog.Options(cat),
				})
			}

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, result)
			}
			outputCatalogText(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&configPath, "config", "", "Settings file (default .blogpanel/settings.yaml)")

	return cmd
}

func outputCatalogText(w io.Writer, result CatalogResult) {
	fmt.Fprintf(w, "Catalog: %s\n", result.Source)

	for _, group := range result.Categories {
		fmt.Fprintf(w, "\n%s (%s)\n", group.Title, group.Category)

		table := cli.NewTableFormatter(w)
		table.Header("", "TITLE", "VALUE", "CLASS", "")
		for _, opt := range group.Options {
			marker := ""
			if opt.Value == group.Default {
				marker = "*"
			}
			table.Row(marker, cli.TruncateString(opt.Title, 24), opt.Value, opt.ClassName, cli.Swatch(opt.Value))
		}
		table.Flush()
	}

	fmt.Fprintln(w, "\n* reset value")
}
