package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blogpanel/blogpanel/internal/logging"
	"github.com/blogpanel/blogpanel/pkg/models"
)

var panelLog = logging.ForComponent(logging.CompPanel)

const (
	panelRootID   = "settings-panel"
	resetButtonID = "settings-reset"
	applyButtonID = "settings-apply"

	panelTitle        = "SET PARAMETERS"
	defaultPanelWidth = 44
	minPanelWidth     = 24
)

// Focus slots after the five pickers
const (
	focusReset = iota + 5
	focusApply
	focusCount
)

// PanelConfig configures a SettingsPanel. Both callbacks are optional.
type PanelConfig struct {
	Catalog  *models.Catalog
	OnSubmit func(models.ArticleState)
	OnReset  func(models.ArticleState)
	Regions  Regions
	Width    int
}

// SettingsPanel is the collapsible side panel holding the article option
// pickers and the Reset/Apply buttons.
type SettingsPanel struct {
	catalog  *models.Catalog
	onSubmit func(models.ArticleState)
	onReset  func(models.ArticleState)
	regions  Regions
	width    int
	height   int

	isOpen  bool
	options models.ArticleState

	pickers [5]Picker
	toggle  *ArrowButton
	watcher *DismissWatcher
	keys    panelKeyMap
	focus   int
}

// NewSettingsPanel builds a closed panel whose selections start at the first
// option of every category. The catalog must be valid; an invalid catalog is
// a programming error and panics.
func NewSettingsPanel(cfg PanelConfig) *SettingsPanel {
	if cfg.Catalog == nil {
		panic("settings panel: nil catalog")
	}
	if err := cfg.Catalog.Validate(); err != nil {
		panic(fmt.Sprintf("settings panel: %v", err))
	}

	regions := cfg.Regions
	if regions == nil {
		regions = noRegions{}
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultPanelWidth
	}
	if width < minPanelWidth {
		width = minPanelWidth
	}

	p := &SettingsPanel{
		catalog:  cfg.Catalog,
		onSubmit: cfg.OnSubmit,
		onReset:  cfg.OnReset,
		regions:  regions,
		width:    width,
		options:  cfg.Catalog.Initial(),
		toggle:   NewArrowButton(regions),
		keys:     newPanelKeyMap(),
	}
	p.watcher = NewDismissWatcher(regions, []string{panelRootID}, p.setOpen, p.CloseOnOutsideInteraction)

	for _, cat := range models.Categories() {
		onChange := func(o models.Option) { p.SelectOption(cat, o) }
		options := cfg.Catalog.Options(cat)

		if cat == models.CategoryFontSize {
			p.pickers[cat] = NewRadioGroup(RadioConfig{
				ID:       "picker-" + cat.String(),
				Title:    cat.Title(),
				Options:  options,
				Selected: p.options.Get(cat),
				OnChange: onChange,
				Regions:  regions,
			})
			continue
		}
		p.pickers[cat] = NewSelect(SelectConfig{
			ID:          "picker-" + cat.String(),
			Title:       cat.Title(),
			Placeholder: options[0].Title,
			Options:     options,
			Selected:    p.options.Get(cat),
			OnChange:    onChange,
			Regions:     regions,
			Width:       p.innerWidth(),
		})
	}
	p.pickers[p.focus].Focus()

	return p
}

func (p *SettingsPanel) innerWidth() int {
	// border and horizontal padding of PanelStyle
	return p.width - 6
}

// IsOpen reports whether the panel is expanded
func (p *SettingsPanel) IsOpen() bool {
	return p.isOpen
}

// Options returns the current selections
func (p *SettingsPanel) Options() models.ArticleState {
	return p.options
}

// Help returns the key map shown while the panel is open
func (p *SettingsPanel) Help() help.KeyMap {
	return p.keys
}

// Toggle flips the open state
func (p *SettingsPanel) Toggle() {
	p.setOpen(!p.isOpen)
}

// SelectOption replaces one category of the selections. The option must
// come from that category's catalog list; others are kept but logged.
// Unknown categories are ignored.
func (p *SettingsPanel) SelectOption(cat models.Category, o models.Option) {
	if cat < 0 || int(cat) >= len(p.pickers) {
		panelLog.Warn("unknown_category", slog.Int("category", int(cat)))
		return
	}
	if !p.catalog.Contains(cat, o) {
		panelLog.Warn("option_not_in_catalog", slog.String("category", cat.String()), slog.String("value", o.Value))
	}
	p.options = p.options.With(cat, o)
	p.pickers[cat].SetSelected(o)
	panelLog.Debug("option_selected", slog.String("category", cat.String()), slog.String("value", o.Value))
}

// Submit hands the current selections to OnSubmit
func (p *SettingsPanel) Submit() {
	state := p.options
	panelLog.Info("options_submitted", slog.Any("options", state))
	if p.onSubmit != nil {
		p.onSubmit(state)
	}
}

// Reset restores the default selections and hands them to OnReset
func (p *SettingsPanel) Reset() {
	defaults := p.catalog.DefaultState()
	p.options = defaults
	for _, cat := range models.Categories() {
		p.pickers[cat].Close()
		p.pickers[cat].SetSelected(defaults.Get(cat))
	}
	panelLog.Info("options_reset", slog.Any("options", defaults))
	if p.onReset != nil {
		p.onReset(defaults)
	}
}

// CloseOnOutsideInteraction collapses the panel whatever its state
func (p *SettingsPanel) CloseOnOutsideInteraction() {
	p.setOpen(false)
}

func (p *SettingsPanel) setOpen(open bool) {
	if p.isOpen != open {
		panelLog.Debug("panel_open_changed", slog.Bool("open", open))
	}
	p.isOpen = open
	if !open {
		for _, picker := range p.pickers {
			picker.Close()
		}
	}
}

// Mount attaches the outside click watchers of the panel and its dropdowns
func (p *SettingsPanel) Mount() {
	p.watcher.Attach()
	for _, picker := range p.pickers {
		picker.Mount()
	}
}

// Unmount detaches every watcher. Safe to call more than once.
func (p *SettingsPanel) Unmount() {
	p.watcher.Detach()
	for _, picker := range p.pickers {
		picker.Unmount()
	}
}

// SetHeight stretches the open aside to the given number of rows
func (p *SettingsPanel) SetHeight(height int) {
	p.height = height
}

// Width returns the rendered width of the open panel without the toggle
func (p *SettingsPanel) Width() int {
	return p.width
}

// FocusIndex returns the focused control: a category index, focusReset or focusApply
func (p *SettingsPanel) FocusIndex() int {
	return p.focus
}

func (p *SettingsPanel) setFocus(i int) {
	if i == p.focus {
		return
	}
	if p.focus < len(p.pickers) {
		p.pickers[p.focus].Blur()
	}
	p.focus = i
	if p.focus < len(p.pickers) {
		p.pickers[p.focus].Focus()
	}
}

func (p *SettingsPanel) moveFocus(delta int) {
	p.setFocus((p.focus + delta + focusCount) % focusCount)
}

// Update routes a message to the panel. It reports whether the panel
// consumed it; consumed messages must not reach the host's own handling.
func (p *SettingsPanel) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.updateMouse(msg)
	case tea.KeyMsg:
		if !p.isOpen {
			return false, nil
		}
		return p.updateKeys(msg)
	}
	return false, nil
}

func (p *SettingsPanel) updateKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Submit):
		p.Submit()
		return true, nil
	case key.Matches(msg, p.keys.Reset):
		p.Reset()
		return true, nil
	}

	if p.focus < len(p.pickers) && p.pickers[p.focus].Capturing() {
		return p.pickers[p.focus].Update(msg)
	}

	switch {
	case key.Matches(msg, p.keys.Close):
		p.setOpen(false)
		return true, nil
	case key.Matches(msg, p.keys.Up):
		p.moveFocus(-1)
		return true, nil
	case key.Matches(msg, p.keys.Down):
		p.moveFocus(1)
		return true, nil
	}

	switch p.focus {
	case focusReset:
		if key.Matches(msg, p.keys.Select) {
			p.Reset()
			return true, nil
		}
	case focusApply:
		if key.Matches(msg, p.keys.Select) {
			p.Submit()
			return true, nil
		}
	default:
		return p.pickers[p.focus].Update(msg)
	}
	return false, nil
}

func (p *SettingsPanel) updateMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !isPress(msg) {
		return false, nil
	}

	if p.toggle.Clicked(msg) {
		p.Toggle()
		return true, nil
	}

	if p.isOpen {
		for i, picker := range p.pickers {
			if handled, cmd := picker.Update(msg); handled {
				p.setFocus(i)
				return true, cmd
			}
		}
		if p.regions.InBounds(resetButtonID, msg) {
			p.setFocus(focusReset)
			p.Reset()
			return true, nil
		}
		if p.regions.InBounds(applyButtonID, msg) {
			p.setFocus(focusApply)
			p.Submit()
			return true, nil
		}
	}

	if p.watcher.HandleMouse(msg, p.isOpen) {
		return false, nil
	}
	return p.regions.InBounds(panelRootID, msg), nil
}

// View renders the toggle and, while open, the aside with the form
func (p *SettingsPanel) View() string {
	toggle := p.toggle.View(p.isOpen)
	if !p.isOpen {
		return p.regions.Mark(panelRootID, toggle)
	}
	return p.regions.Mark(panelRootID, lipgloss.JoinHorizontal(lipgloss.Top, toggle, p.renderAside()))
}

func (p *SettingsPanel) renderAside() string {
	inner := p.innerWidth()

	parts := []string{PanelTitleStyle.Render(panelTitle), ""}
	for _, cat := range models.Categories() {
		parts = append(parts, p.pickers[cat].View(), "")
		if cat == models.CategoryFontColor {
			parts = append(parts, SeparatorStyle.Render(strings.Repeat("╌", inner)), "")
		}
	}

	reset := p.regions.Mark(resetButtonID, GetButtonStyle(ClearButtonStyle, p.focus == focusReset).Render("Reset"))
	apply := p.regions.Mark(applyButtonID, GetButtonStyle(ApplyButtonStyle, p.focus == focusApply).Render("Apply"))
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, reset, "  ", apply))

	style := PanelStyle.Width(p.width - 2)
	if p.height > 2 {
		style = style.Height(p.height - 2)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
