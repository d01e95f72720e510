package models

import "fmt"

// Category identifies one of the five article display options
type Category int

const (
	CategoryFontFamily Category = iota
	CategoryFontColor
	CategoryBackgroundColor
	CategoryContentWidth
	CategoryFontSize
)

const categoryCount = 5

// Categories returns every category in panel order
func Categories() []Category {
	return []Category{
		CategoryFontFamily,
		CategoryFontColor,
		CategoryBackgroundColor,
		CategoryContentWidth,
		CategoryFontSize,
	}
}

// String returns the configuration key of the category
func (c Category) String() string {
	switch c {
	case CategoryFontFamily:
		return "font_family"
	case CategoryFontColor:
		return "font_color"
	case CategoryBackgroundColor:
		return "background_color"
	case CategoryContentWidth:
		return "content_width"
	case CategoryFontSize:
		return "font_size"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Title returns the label shown next to the category's picker
func (c Category) Title() string {
	switch c {
	case CategoryFontFamily:
		return "Font"
	case CategoryFontColor:
		return "Font color"
	case CategoryBackgroundColor:
		return "Background color"
	case CategoryContentWidth:
		return "Content width"
	case CategoryFontSize:
		return "Font size"
	default:
		return c.String()
	}
}

// ParseCategory converts a configuration key back into a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %s", s)
}

// ArticleState is the complete set of display options applied to an article.
// It is a value type: use With to derive a modified copy.
type ArticleState struct {
	FontFamilyOption Option `yaml:"font_family" json:"fontFamilyOption"`
	FontColor        Option `yaml:"font_color" json:"fontColor"`
	BackgroundColor  Option `yaml:"background_color" json:"backgroundColor"`
	ContentWidth     Option `yaml:"content_width" json:"contentWidth"`
	FontSizeOption   Option `yaml:"font_size" json:"fontSizeOption"`
}

// Get returns the option selected for a category
func (s ArticleState) Get(c Category) Option {
	switch c {
	case CategoryFontFamily:
		return s.FontFamilyOption
	case CategoryFontColor:
		return s.FontColor
	case CategoryBackgroundColor:
		return s.BackgroundColor
	case CategoryContentWidth:
		return s.ContentWidth
	case CategoryFontSize:
		return s.FontSizeOption
	}
	return Option{}
}

// With returns a copy of the state with one category replaced
func (s ArticleState) With(c Category, o Option) ArticleState {
	switch c {
	case CategoryFontFamily:
		s.FontFamilyOption = o
	case CategoryFontColor:
		s.FontColor = o
	case CategoryBackgroundColor:
		s.BackgroundColor = o
	case CategoryContentWidth:
		s.ContentWidth = o
	case CategoryFontSize:
		s.FontSizeOption = o
	}
	return s
}
