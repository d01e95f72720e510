package models

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned by Catalog.Validate
var ErrInvalidCatalog = errors.New("invalid option catalog")

// Catalog holds the ordered option lists for every category
type Catalog struct {
	FontFamilies     []Option `yaml:"font_families" toml:"font_families" json:"fontFamilies"`
	FontColors       []Option `yaml:"font_colors" toml:"font_colors" json:"fontColors"`
	BackgroundColors []Option `yaml:"background_colors" toml:"background_colors" json:"backgroundColors"`
	ContentWidths    []Option `yaml:"content_widths" toml:"content_widths" json:"contentWidths"`
	FontSizes        []Option `yaml:"font_sizes" toml:"font_sizes" json:"fontSizes"`

	// Defaults maps a category key to the value of its reset option.
	// Categories without an entry reset to their first option.
	Defaults map[string]string `yaml:"defaults,omitempty" toml:"defaults" json:"defaults,omitempty"`
}

// Options returns the list for a category
func (c *Catalog) Options(cat Category) []Option {
	switch cat {
	case CategoryFontFamily:
		return c.FontFamilies
	case CategoryFontColor:
		return c.FontColors
	case CategoryBackgroundColor:
		return c.BackgroundColors
	case CategoryContentWidth:
		return c.ContentWidths
	case CategoryFontSize:
		return c.FontSizes
	}
	return nil
}

// Contains reports whether an option belongs to a category
func (c *Catalog) Contains(cat Category, o Option) bool {
	for _, candidate := range c.Options(cat) {
		if candidate == o {
			return true
		}
	}
	return false
}

// FindValue looks up an option by its value
func (c *Catalog) FindValue(cat Category, value string) (Option, bool) {
	for _, o := range c.Options(cat) {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Initial returns the state built from the first option of every category
func (c *Catalog) Initial() ArticleState {
	var s ArticleState
	for _, cat := range Categories() {
		if opts := c.Options(cat); len(opts) > 0 {
			s = s.With(cat, opts[0])
		}
	}
	return s
}

// DefaultState returns the state the panel resets to
func (c *Catalog) DefaultState() ArticleState {
	s := c.Initial()
	for _, cat := range Categories() {
		value, ok := c.Defaults[cat.String()]
		if !ok {
			continue
		}
		if o, found := c.FindValue(cat, value); found {
			s = s.With(cat, o)
		}
	}
	return s
}

// Validate checks that every category has options with unique values
// and that every default points at an existing option.
func (c *Catalog) Validate() error {
	for _, cat := range Categories() {
		opts := c.Options(cat)
		if len(opts) == 0 {
			return fmt.Errorf("%w: %s has no options", ErrInvalidCatalog, cat)
		}

		seen := make(map[string]bool, len(opts))
		for i, o := range opts {
			if o.Value == "" {
				return fmt.Errorf("%w: %s option %d has no value", ErrInvalidCatalog, cat, i)
			}
			if seen[o.Value] {
				return fmt.Errorf("%w: %s has duplicate value %q", ErrInvalidCatalog, cat, o.Value)
			}
			seen[o.Value] = true
		}
	}

	if len(c.Defaults) > categoryCount {
		return fmt.Errorf("%w: %d defaults for %d categories", ErrInvalidCatalog, len(c.Defaults), categoryCount)
	}
	for key, value := range c.Defaults {
		cat, err := ParseCategory(key)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if _, ok := c.FindValue(cat, value); !ok {
			return fmt.Errorf("%w: default %s=%q is not in the catalog", ErrInvalidCatalog, key, value)
		}
	}

	return nil
}
