package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blogpanel/blogpanel/pkg/files"
	"github.com/blogpanel/blogpanel/pkg/models"
)

// CommandContext resolves the settings and catalog a command works with
type CommandContext struct {
	ProjectPath  string
	SettingsPath string
	Settings     *models.Settings
	Catalog      *models.Catalog
	CatalogPath  string
	validated    bool
}

// NewCommandContext creates a context. An empty settingsPath uses the
// project settings file in the current directory.
func NewCommandContext(settingsPath string) *CommandContext {
	if settingsPath == "" {
		settingsPath = files.SettingsPath()
	}
	return &CommandContext{
		ProjectPath:  files.ProjectDir,
		SettingsPath: settingsPath,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'blogpanel init' first", files.ProjectDir)
	}

	c.validated = true
	return nil
}

// LoadSettings reads the settings file once. A missing file yields defaults.
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.ReadSettings(c.SettingsPath)
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
		c.Settings = settings
	}
	return settings
}

// ResolveCatalogPath picks the catalog file: the override, then the
// settings entry, then the project catalog. An empty result means the
// built-in catalog.
func (c *CommandContext) ResolveCatalogPath(override string) string {
	if override != "" {
		return override
	}
	if c.Settings != nil && c.Settings.Catalog != "" {
		return c.Settings.Catalog
	}
	projectCatalog := filepath.Join(c.ProjectPath, files.CatalogFile)
	if _, err := os.Stat(projectCatalog); err == nil {
		return projectCatalog
	}
	return ""
}

// LoadCatalog loads and validates the catalog chosen by ResolveCatalogPath
func (c *CommandContext) LoadCatalog(override string) (*models.Catalog, error) {
	if c.Catalog != nil && override == "" {
		return c.Catalog, nil
	}

	path := c.ResolveCatalogPath(override)
	catalog, err := files.LoadCatalog(path)
	if err != nil {
		return nil, err
	}

	c.Catalog = catalog
	c.CatalogPath = path
	return catalog, nil
}

// CatalogSource describes where the loaded catalog came from
func (c *CommandContext) CatalogSource() string {
	if c.CatalogPath == "" {
		return "built-in"
	}
	return c.CatalogPath
}
