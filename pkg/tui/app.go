package tui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/blogpanel/blogpanel/internal/logging"
	"github.com/blogpanel/blogpanel/pkg/files"
	"github.com/blogpanel/blogpanel/pkg/models"
)

var uiLog = logging.ForComponent(logging.CompUI)

// footer rows: status line and help line
const footerHeight = 2

// AppConfig configures the reader
type AppConfig struct {
	Catalog     *models.Catalog
	Article     *models.Article
	ArticlePath string
	Settings    models.Settings
	Regions     Regions

	// Changes delivers a value whenever ArticlePath is rewritten
	Changes <-chan struct{}

	// WatchErr is why ArticlePath could not be watched
	WatchErr error
}

// App is the reader: the article on the left, the settings panel on the right
type App struct {
	panel   *SettingsPanel
	article *ArticleView
	applied models.ArticleState

	regions     Regions
	keys        appKeyMap
	help        help.Model
	confirm     *ConfirmationModel
	status      *StatusLine
	changes     <-chan struct{}
	articlePath string

	width  int
	height int

	copyFn      func(string) error
	loadArticle func(string) (*models.Article, error)
}

// Messages
type (
	articleChangedMsg struct{}

	articleLoadedMsg struct {
		article *models.Article
		err     error
	}
)

// NewApp builds the reader with the panel collapsed unless the settings ask
// for it to start open
func NewApp(cfg AppConfig) *App {
	regions := cfg.Regions
	if regions == nil {
		regions = noRegions{}
	}

	a := &App{
		applied:     cfg.Catalog.Initial(),
		regions:     regions,
		keys:        newAppKeyMap(),
		help:        help.New(),
		confirm:     NewConfirmation(),
		status:      NewStatusLine(),
		changes:     cfg.Changes,
		articlePath: cfg.ArticlePath,
		copyFn:      clipboard.WriteAll,
		loadArticle: files.ReadArticle,
	}
	a.panel = NewSettingsPanel(PanelConfig{
		Catalog:  cfg.Catalog,
		OnSubmit: a.apply,
		OnReset:  a.apply,
		Regions:  regions,
		Width:    cfg.Settings.UI.PanelWidth,
	})
	if cfg.Settings.UI.StartOpen {
		a.panel.Toggle()
	}
	a.article = NewArticleView(cfg.Article, a.applied)
	switch {
	case cfg.WatchErr != nil:
		a.status.WatchDisabled(cfg.WatchErr)
	case cfg.ArticlePath != "" && cfg.Changes != nil:
		a.status.Watching(cfg.ArticlePath)
	}
	return a
}

// Applied returns the options the article is rendered with
func (a *App) Applied() models.ArticleState {
	return a.applied
}

// Panel returns the settings panel
func (a *App) Panel() *SettingsPanel {
	return a.panel
}

// Dirty reports whether the panel holds selections that were never applied
func (a *App) Dirty() bool {
	return a.panel.Options() != a.applied
}

func (a *App) apply(state models.ArticleState) {
	a.applied = state
	a.article.SetState(state)
	uiLog.Info("options_applied",
		slog.String("font_family", state.FontFamilyOption.Value),
		slog.String("content_width", state.ContentWidth.Value),
		slog.String("font_size", state.FontSizeOption.Value))
}

func (a *App) Init() tea.Cmd {
	a.panel.Mount()
	return waitForChange(a.changes)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		wasOpen := a.panel.IsOpen()
		handled, cmd := a.panel.Update(msg)
		if a.panel.IsOpen() != wasOpen {
			a.layout()
		}
		if handled {
			return a, cmd
		}
		if tea.MouseEvent(msg).IsWheel() {
			return a, a.article.Update(msg)
		}
		return a, nil

	case articleChangedMsg:
		return a, tea.Batch(a.reloadArticle(), waitForChange(a.changes))

	case articleLoadedMsg:
		if msg.err != nil {
			uiLog.Warn("article_reload_failed", slog.String("error", msg.err.Error()))
			return a, a.status.ReloadFailed(msg.err)
		}
		a.article.SetArticle(msg.article)
		return a, a.status.Reloaded()

	case clearNoticeMsg:
		a.status.expire(msg)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}
	if key.Matches(msg, a.keys.ForceQ) {
		return a.quit()
	}

	wasOpen := a.panel.IsOpen()
	handled, cmd := a.panel.Update(msg)
	if a.panel.IsOpen() != wasOpen {
		a.layout()
	}
	if handled {
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Toggle):
		a.panel.Toggle()
		a.layout()
		return nil
	case key.Matches(msg, a.keys.Copy):
		return a.copyOptions()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
		return nil
	case key.Matches(msg, a.keys.Quit):
		if a.Dirty() {
			a.confirm.ShowInline("Quit without applying the selected options?", true, a.quit, nil)
			return nil
		}
		return a.quit()
	}

	return a.article.Update(msg)
}

func (a *App) quit() tea.Cmd {
	a.panel.Unmount()
	return tea.Quit
}

func (a *App) copyOptions() tea.Cmd {
	data, err := yaml.Marshal(a.applied)
	if err != nil {
		return a.status.CopyFailed(err)
	}
	if err := a.copyFn(string(data)); err != nil {
		uiLog.Warn("clipboard_copy_failed", slog.String("error", err.Error()))
		return a.status.CopyFailed(err)
	}
	return a.status.Copied()
}

func (a *App) reloadArticle() tea.Cmd {
	path := a.articlePath
	load := a.loadArticle
	return func() tea.Msg {
		article, err := load(path)
		return articleLoadedMsg{article: article, err: err}
	}
}

// waitForChange blocks on the next article change. The returned command is
// re-armed after every change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return articleChangedMsg{}
	}
}

func (a *App) panelWidth() int {
	width := lipgloss.Width(ToggleStyle.Render(Arrow(a.panel.IsOpen())))
	if a.panel.IsOpen() {
		width += a.panel.Width()
	}
	return width
}

func (a *App) layout() {
	if a.width == 0 || a.height == 0 {
		return
	}
	bodyHeight := a.height - footerHeight
	if a.help.ShowAll {
		bodyHeight -= 2
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	a.article.SetSize(max(0, a.width-a.panelWidth()), bodyHeight)
	a.panel.SetHeight(bodyHeight)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.article.View(), a.panel.View())

	var helpLine string
	switch {
	case a.confirm.Active():
		helpLine = a.confirm.ViewWithWidth(a.width)
	case a.panel.IsOpen():
		helpLine = a.help.View(a.panel.Help())
	default:
		helpLine = a.help.View(a.keys)
	}

	return a.regions.Scan(lipgloss.JoinVertical(lipgloss.Left, body, a.status.View(), helpLine))
}

// RunApp runs the reader until the user quits. Mouse support, the click
// region manager and the article watcher are released on every exit path.
func RunApp(cfg AppConfig) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Settings.UI.Mouse {
		zones := NewZoneRegions()
		defer zones.Close()
		cfg.Regions = zones
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if cfg.ArticlePath != "" && cfg.Changes == nil {
		watcher, err := files.NewArticleWatcher(cfg.ArticlePath)
		if err != nil {
			uiLog.Warn("article_watch_disabled", slog.String("error", err.Error()))
			cfg.WatchErr = err
		} else {
			defer watcher.Close()
			cfg.Changes = watcher.Changes()
			uiLog.Debug("article_watch_started", slog.String("path", watcher.Path()))
		}
	}

	app := NewApp(cfg)
	defer app.panel.Unmount()

	uiLog.Info("reader_started", slog.Bool("mouse", cfg.Settings.UI.Mouse), slog.String("article", cfg.ArticlePath))
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run reader: %w", err)
	}
	return nil
}
