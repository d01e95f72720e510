package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blogpanel/blogpanel/pkg/models"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateCatalogPath checks that a catalog file exists and has a supported extension
func ValidateCatalogPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !Contains([]string{".yaml", ".yml", ".toml"}, ext) {
		return fmt.Errorf("invalid catalog file: %s (must end in .yaml, .yml or .toml)", path)
	}
	return ValidateFilePath(path)
}

// ValidateCategory parses a category argument. Dashes are accepted in place
// of underscores.
func ValidateCategory(name string) (models.Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	cat, err := models.ParseCategory(normalized)
	if err != nil {
		keys := make([]string, 0, len(models.Categories()))
		for _, c := range models.Categories() {
			keys = append(keys, c.String())
		}
		return 0, fmt.Errorf("invalid category: %s (must be one of: %s)", name, strings.Join(keys, ", "))
	}
	return cat, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
