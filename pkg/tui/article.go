package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blogpanel/blogpanel/pkg/models"
)

// ArticleView is the scrollable reader styled by the applied options
type ArticleView struct {
	viewport viewport.Model
	article  *models.Article
	state    models.ArticleState
	width    int
	height   int
}

// NewArticleView creates a reader for the article
func NewArticleView(article *models.Article, state models.ArticleState) *ArticleView {
	v := &ArticleView{
		viewport: viewport.New(0, 0),
		article:  article,
		state:    state,
	}
	v.refresh()
	return v
}

// SetSize resizes the viewport
func (v *ArticleView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height
	v.refresh()
}

// SetState restyles the article with new options
func (v *ArticleView) SetState(state models.ArticleState) {
	v.state = state
	v.refresh()
}

// State returns the options the article is rendered with
func (v *ArticleView) State() models.ArticleState {
	return v.state
}

// SetArticle replaces the article, keeping the scroll position when possible
func (v *ArticleView) SetArticle(article *models.Article) {
	v.article = article
	v.refresh()
}

// Article returns the article being shown
func (v *ArticleView) Article() *models.Article {
	return v.article
}

// Columns returns the current text column count
func (v *ArticleView) Columns() int {
	return TextColumns(v.state, v.available())
}

func (v *ArticleView) available() int {
	// one cell of margin each side
	return v.width - 2
}

func (v *ArticleView) refresh() {
	if v.width <= 0 {
		return
	}
	offset := v.viewport.YOffset
	body := RenderArticle(v.article, v.state, v.available())
	bg := lipgloss.Color(v.state.BackgroundColor.Value)
	content := lipgloss.PlaceHorizontal(v.width, lipgloss.Center, "\n"+body+"\n",
		lipgloss.WithWhitespaceBackground(bg))
	v.viewport.SetContent(content)
	v.viewport.SetYOffset(offset)
}

// Update forwards scroll keys and wheel events to the viewport
func (v *ArticleView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// ScrollPercent reports how far the reader has scrolled
func (v *ArticleView) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// View renders the visible part of the article
func (v *ArticleView) View() string {
	if v.width <= 0 {
		return ""
	}
	return v.viewport.View()
}
