package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"

	"github.com/blogpanel/blogpanel/pkg/models"
)

const defaultPickerWidth = 32

var (
	selectOpenKey  = key.NewBinding(key.WithKeys("enter", " "))
	selectPickKey  = key.NewBinding(key.WithKeys("enter"))
	selectCloseKey = key.NewBinding(key.WithKeys("esc"))
	selectUpKey    = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	selectDownKey  = key.NewBinding(key.WithKeys("down", "ctrl+n"))
	selectPrevKey  = key.NewBinding(key.WithKeys("left", "h"))
	selectNextKey  = key.NewBinding(key.WithKeys("right", "l"))
)

// SelectConfig describes a dropdown picker
type SelectConfig struct {
	ID          string
	Title       string
	Placeholder string
	Options     []models.Option
	Selected    models.Option
	OnChange    func(models.Option)
	Regions     Regions
	Width       int
}

// Select is a dropdown picker with a fuzzy filter. Closed, it shows the
// current selection; open, it lists the options matching the filter.
type Select struct {
	id          string
	title       string
	placeholder string
	options     []models.Option
	selected    models.Option
	onChange    func(models.Option)
	regions     Regions
	width       int

	focused bool
	open    bool
	cursor  int
	matches []int
	filter  textinput.Model
	watcher *DismissWatcher
}

// optionSource adapts an option list to fuzzy.Source
type optionSource []models.Option

func (s optionSource) String(i int) string { return s[i].Title }
func (s optionSource) Len() int            { return len(s) }

// NewSelect creates a closed dropdown
func NewSelect(cfg SelectConfig) *Select {
	regions := cfg.Regions
	if regions == nil {
		regions = noRegions{}
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultPickerWidth
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter"
	filter.CharLimit = 40

	s := &Select{
		id:          cfg.ID,
		title:       cfg.Title,
		placeholder: cfg.Placeholder,
		options:     cfg.Options,
		selected:    cfg.Selected,
		onChange:    cfg.OnChange,
		regions:     regions,
		width:       width,
		filter:      filter,
	}
	s.watcher = NewDismissWatcher(regions, []string{s.id}, func(open bool) { s.open = open }, s.Close)
	s.refilter()
	return s
}

func (s *Select) headerID() string {
	return s.id + "-header"
}

func (s *Select) optionID(i int) string {
	return fmt.Sprintf("%s-option-%d", s.id, i)
}

// Selected returns the chosen option
func (s *Select) Selected() models.Option {
	return s.selected
}

// SetSelected changes the selection without calling OnChange
func (s *Select) SetSelected(o models.Option) {
	s.selected = o
	s.moveCursorToSelection()
}

// IsOpen reports whether the option list is showing
func (s *Select) IsOpen() bool {
	return s.open
}

// Matches returns the options passing the current filter, in display order
func (s *Select) Matches() []models.Option {
	out := make([]models.Option, 0, len(s.matches))
	for _, idx := range s.matches {
		out = append(out, s.options[idx])
	}
	return out
}

// Cursor returns the highlighted row of the open list
func (s *Select) Cursor() int {
	return s.cursor
}

func (s *Select) Focus() {
	s.focused = true
}

func (s *Select) Blur() {
	s.focused = false
	s.Close()
}

func (s *Select) Capturing() bool {
	return s.open
}

// Mount attaches the outside click watcher of the dropdown
func (s *Select) Mount() {
	s.watcher.Attach()
}

// Unmount detaches the outside click watcher
func (s *Select) Unmount() {
	s.watcher.Detach()
}

// Open shows the option list with an empty filter
func (s *Select) Open() tea.Cmd {
	s.open = true
	s.filter.Reset()
	s.refilter()
	s.moveCursorToSelection()
	return s.filter.Focus()
}

// Close hides the option list
func (s *Select) Close() {
	s.open = false
	s.filter.Blur()
	s.filter.Reset()
	s.refilter()
}

func (s *Select) pick(o models.Option) {
	s.Close()
	if o == s.selected {
		return
	}
	s.selected = o
	panelLog.Debug("option_picked",
		slog.String("picker", s.id), slog.String("value", o.Value))
	if s.onChange != nil {
		s.onChange(o)
	}
}

func (s *Select) refilter() {
	s.matches = s.matches[:0]
	query := strings.TrimSpace(s.filter.Value())
	if query == "" {
		for i := range s.options {
			s.matches = append(s.matches, i)
		}
	} else {
		for _, m := range fuzzy.FindFrom(query, optionSource(s.options)) {
			s.matches = append(s.matches, m.Index)
		}
	}
	if s.cursor >= len(s.matches) {
		s.cursor = len(s.matches) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *Select) moveCursorToSelection() {
	s.cursor = 0
	for row, idx := range s.matches {
		if s.options[idx] == s.selected {
			s.cursor = row
			return
		}
	}
}

// Update handles keys while focused and mouse presses on the dropdown
func (s *Select) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return false, nil
		}
		if s.open {
			return s.updateOpen(msg)
		}
		return s.updateClosed(msg)

	case tea.MouseMsg:
		return s.updateMouse(msg)
	}
	return false, nil
}

func (s *Select) updateClosed(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, selectOpenKey):
		return true, s.Open()
	case key.Matches(msg, selectPrevKey):
		if o, ok := neighbour(s.options, s.selected, -1); ok {
			s.pick(o)
		}
		return true, nil
	case key.Matches(msg, selectNextKey):
		if o, ok := neighbour(s.options, s.selected, 1); ok {
			s.pick(o)
		}
		return true, nil
	}
	return false, nil
}

func (s *Select) updateOpen(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, selectCloseKey):
		s.Close()
		return true, nil
	case key.Matches(msg, selectPickKey):
		if s.cursor < len(s.matches) {
			s.pick(s.options[s.matches[s.cursor]])
		}
		return true, nil
	case key.Matches(msg, selectUpKey):
		if s.cursor > 0 {
			s.cursor--
		}
		return true, nil
	case key.Matches(msg, selectDownKey):
		if s.cursor < len(s.matches)-1 {
			s.cursor++
		}
		return true, nil
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.refilter()
	return true, cmd
}

func (s *Select) updateMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !isPress(msg) {
		return false, nil
	}

	if s.open {
		if s.watcher.HandleMouse(msg, s.open) {
			return false, nil
		}
		for _, idx := range s.matches {
			if s.regions.InBounds(s.optionID(idx), msg) {
				s.pick(s.options[idx])
				return true, nil
			}
		}
		if s.regions.InBounds(s.headerID(), msg) {
			s.Close()
			return true, nil
		}
		return s.regions.InBounds(s.id, msg), nil
	}

	if s.regions.InBounds(s.headerID(), msg) {
		return true, s.Open()
	}
	return false, nil
}

// View renders the label, the field and the open list
func (s *Select) View() string {
	inner := s.width - 4
	if inner < 4 {
		inner = 4
	}

	value := s.selected.Title
	valueStyle := NormalStyle
	if s.selected.IsZero() {
		value = s.placeholder
		valueStyle = PlaceholderStyle
	}
	arrow := "▾"
	if s.open {
		arrow = "▴"
	}
	text := runewidth.FillRight(truncate.StringWithTail(value, uint(inner-2), "…"), inner-2)
	field := FieldStyle
	if s.focused {
		field = ActiveFieldStyle
	}
	header := s.regions.Mark(s.headerID(), field.Render(valueStyle.Render(text)+" "+arrow))

	parts := []string{GetLabelStyle(s.focused).Render(s.title), header}
	if s.open {
		parts = append(parts, s.renderList(inner))
	}
	return s.regions.Mark(s.id, lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (s *Select) renderList(inner int) string {
	var b strings.Builder
	b.WriteString(s.filter.View())
	if len(s.matches) == 0 {
		b.WriteString("\n")
		b.WriteString(DescriptionStyle.Render("no matches"))
	}
	for row, idx := range s.matches {
		o := s.options[idx]
		mark := "  "
		if o == s.selected {
			mark = "✓ "
		}
		line := runewidth.FillRight(mark+truncate.StringWithTail(o.Title, uint(inner-2), "…"), inner)
		style := NormalStyle
		if row == s.cursor {
			style = SelectedStyle
		}
		b.WriteString("\n")
		b.WriteString(s.regions.Mark(s.optionID(idx), style.Render(line)))
	}
	return FieldStyle.Render(b.String())
}
