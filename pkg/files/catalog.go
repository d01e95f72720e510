package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/blogpanel/blogpanel/pkg/examples"
	"github.com/blogpanel/blogpanel/pkg/models"
)

// ErrUnsupportedFormat is returned for catalog files that are neither YAML nor TOML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// LoadCatalog reads a catalog file. The format follows the extension:
// .yaml/.yml or .toml. An empty path returns the built-in catalog.
func LoadCatalog(path string) (*models.Catalog, error) {
	if path == "" {
		return examples.Catalog(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	catalog := &models.Catalog{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(content), catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	filesLog.Debug("catalog_loaded",
		"path", path,
		"font_families", len(catalog.FontFamilies),
		"font_colors", len(catalog.FontColors),
		"background_colors", len(catalog.BackgroundColors))

	return catalog, nil
}

// WriteCatalog writes a catalog as YAML
func WriteCatalog(path string, catalog *models.Catalog) error {
	content, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog to YAML: %w", err)
	}
	return WriteFile(path, string(content))
}
