package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blogpanel/blogpanel/internal/logging"
	"github.com/blogpanel/blogpanel/pkg/examples"
	"github.com/blogpanel/blogpanel/pkg/models"
)

const (
	ProjectDir   = ".blogpanel"
	SettingsFile = "settings.yaml"
	CatalogFile  = "catalog.yaml"
	LogsDir      = "logs"
)

var filesLog = logging.ForComponent(logging.CompFiles)

// SettingsPath returns the default settings location for the current directory
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// InitProjectStructure creates the project directory with default settings
// and a copy of the built-in catalog. Existing files are left untouched.
func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	catalogPath := filepath.Join(ProjectDir, CatalogFile)
	if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
		if err := WriteCatalog(catalogPath, examples.Catalog()); err != nil {
			return err
		}
	}

	if _, err := os.Stat(SettingsPath()); os.IsNotExist(err) {
		settings := models.DefaultSettings()
		settings.Catalog = catalogPath
		settings.Logging.Dir = filepath.Join(ProjectDir, LogsDir)
		if err := WriteSettings(SettingsPath(), settings); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads settings from path. A missing file yields the defaults.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			filesLog.Debug("settings_missing", "path", path)
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings writes settings as YAML
func WriteSettings(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}
	return WriteFile(path, string(content))
}

// ReadArticle reads and parses an article file
func ReadArticle(path string) (*models.Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read article %s: %w", path, err)
	}
	return models.ParseArticle(path, string(content)), nil
}

// WriteFile writes content to a file, creating parent directories
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
