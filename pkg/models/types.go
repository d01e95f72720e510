package models

import "strings"

// Option is one selectable choice within a display category
type Option struct {
	Title     string `yaml:"title" toml:"title" json:"title"`
	Value     string `yaml:"value" toml:"value" json:"value"`
	ClassName string `yaml:"class_name,omitempty" toml:"class_name" json:"className,omitempty"`
}

// IsZero reports whether the option was never set
func (o Option) IsZero() bool {
	return o == Option{}
}

// Article is a document shown in the reader
type Article struct {
	Path       string
	Title      string
	Paragraphs []string
}

// ParseArticle splits plain text into a title and paragraphs.
// A leading "# " line becomes the title; blank lines separate paragraphs.
func ParseArticle(path, content string) *Article {
	article := &Article{Path: path}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var current []string
	flush := func() {
		if len(current) > 0 {
			article.Paragraphs = append(article.Paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if article.Title == "" && len(article.Paragraphs) == 0 && len(current) == 0 && strings.HasPrefix(trimmed, "# ") {
			article.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()

	return article
}
