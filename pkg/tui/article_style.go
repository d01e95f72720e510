package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/blogpanel/blogpanel/pkg/models"
)

const (
	minColumns = 20
	baseFontPx = 18
)

// ParsePixels reads a CSS-style length such as "948px"
func ParsePixels(v string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel value %q: %w", v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid pixel value %q", v)
	}
	return n, nil
}

// TextColumns converts the content width and font size into a line length.
// A terminal cell is taken as 0.6em wide. The result is clamped to
// [minColumns, available]; available <= 0 means unbounded.
func TextColumns(state models.ArticleState, available int) int {
	cols := available
	widthPx, werr := ParsePixels(state.ContentWidth.Value)
	fontPx, ferr := ParsePixels(state.FontSizeOption.Value)
	if werr == nil && ferr == nil {
		cols = widthPx * 10 / (fontPx * 6)
	}

	if cols < minColumns {
		cols = minColumns
	}
	if available > 0 && cols > available {
		cols = available
	}
	return cols
}

// ParagraphGap returns the number of blank lines between paragraphs
func ParagraphGap(state models.ArticleState) int {
	fontPx, err := ParsePixels(state.FontSizeOption.Value)
	if err != nil {
		return 1
	}
	return max(1, fontPx/baseFontPx)
}

// FontFamilyStyle maps a font family class to terminal text attributes
func FontFamilyStyle(o models.Option) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch o.ClassName {
	case "days-one":
		style = style.Bold(true)
	case "cormorant-garamond":
		style = style.Italic(true)
	case "merriweather":
		style = style.Bold(true).Italic(true)
	}
	return style
}

// TextStyle returns the body text style for a set of options
func TextStyle(state models.ArticleState) lipgloss.Style {
	return FontFamilyStyle(state.FontFamilyOption).
		Foreground(lipgloss.Color(state.FontColor.Value)).
		Background(lipgloss.Color(state.BackgroundColor.Value))
}

// RenderArticle lays out the article for the given options within
// available terminal columns
func RenderArticle(article *models.Article, state models.ArticleState, available int) string {
	if article == nil {
		return ""
	}

	cols := TextColumns(state, available)
	separator := strings.Repeat("\n", ParagraphGap(state)+1)

	blocks := make([]string, 0, len(article.Paragraphs)+1)
	if article.Title != "" {
		blocks = append(blocks, strings.ToUpper(wordwrap.String(article.Title, cols)))
	}
	for _, p := range article.Paragraphs {
		blocks = append(blocks, wordwrap.String(p, cols))
	}

	body := strings.Join(blocks, separator)
	return TextStyle(state).Width(cols).Render(body)
}
