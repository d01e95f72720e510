package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blogpanel/blogpanel/cmd/commands"
	"github.com/blogpanel/blogpanel/internal/cli"
	"github.com/blogpanel/blogpanel/internal/logging"
	"github.com/blogpanel/blogpanel/pkg/examples"
	"github.com/blogpanel/blogpanel/pkg/files"
	"github.com/blogpanel/blogpanel/pkg/models"
	"github.com/blogpanel/blogpanel/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	articlePath string
	catalogPath string
	configPath  string
	startOpen   bool
	noMouse     bool
	debug       bool
	logDir      string

	quiet     bool
	noColor   bool
	assumeYes bool
)

var rootCmd = &cobra.Command{
	Use:   "blogpanel",
	Short: "Terminal article reader with a collapsible display settings panel",
	Long: `Blogpanel shows an article in the terminal next to a collapsible settings
panel. Pick a font, colors, content width and font size, then apply them to
the article or reset to the catalog defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, assumeYes)
	},
	RunE: runReader,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new blogpanel project",
	Long:  `Creates the .blogpanel folder with a settings file and an editable catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		if _, err := os.Stat(files.ProjectDir); err == nil && force {
			ok, err := cli.Confirm("Overwrite the existing settings and catalog?", false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Nothing changed")
				return nil
			}
			for _, name := range []string{files.SettingsFile, files.CatalogFile} {
				if err := os.Remove(filepath.Join(files.ProjectDir, name)); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove %s: %w", name, err)
				}
			}
		}

		cli.PrintInfo("Initializing blogpanel project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s folder structure", files.ProjectDir)
		cli.PrintSuccess("Edit %s to change the available options", filepath.Join(files.ProjectDir, files.CatalogFile))
		if !quiet {
			fmt.Println("\nRun 'blogpanel --article FILE' to start reading.")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blogpanel",
	Long:  `Display the current version of the blogpanel CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "blogpanel version %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&articlePath, "article", "a", "", "Article file to read (default: a built-in sample)")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (.yaml, .yml or .toml)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Settings file (default .blogpanel/settings.yaml)")
	rootCmd.Flags().BoolVar(&startOpen, "open", false, "Start with the settings panel open")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Write debug logs")
	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "Directory for debug logs")

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing settings and catalog")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewCatalogCommand())
	rootCmd.AddCommand(commands.NewDefaultsCommand())
}

func runReader(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext(configPath)
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}
	applyFlags(settings)

	logging.Init(logging.Config{
		Dir:    settings.Logging.Dir,
		Level:  settings.Logging.Level,
		Format: settings.Logging.Format,
		Debug:  debug,
	})
	defer logging.Shutdown()
	log := logging.ForComponent(logging.CompCLI)

	if catalogPath != "" {
		if err := cli.ValidateCatalogPath(catalogPath); err != nil {
			return err
		}
	}
	catalog, err := ctx.LoadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var article *models.Article
	if articlePath != "" {
		if err := cli.ValidateFilePath(articlePath); err != nil {
			return err
		}
		article, err = files.ReadArticle(articlePath)
		if err != nil {
			return err
		}
	} else {
		article = examples.Article()
	}

	log.Info("starting",
		"version", version,
		"catalog", ctx.CatalogSource(),
		"article", articlePath)

	return tui.RunApp(tui.AppConfig{
		Catalog:     catalog,
		Article:     article,
		ArticlePath: articlePath,
		Settings:    *settings,
	})
}

func applyFlags(settings *models.Settings) {
	if startOpen {
		settings.UI.StartOpen = true
	}
	if noMouse {
		settings.UI.Mouse = false
	}
	if logDir != "" {
		settings.Logging.Dir = logDir
	}
	if debug {
		settings.Logging.Level = "debug"
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
