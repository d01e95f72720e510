package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blogpanel/blogpanel/pkg/models"
)

// RadioConfig describes an inline picker
type RadioConfig struct {
	ID       string
	Title    string
	Options  []models.Option
	Selected models.Option
	OnChange func(models.Option)
	Regions  Regions
}

// RadioGroup shows every option on one row and picks with left/right
type RadioGroup struct {
	id       string
	title    string
	options  []models.Option
	selected models.Option
	onChange func(models.Option)
	regions  Regions
	focused  bool
}

// NewRadioGroup creates an inline picker
func NewRadioGroup(cfg RadioConfig) *RadioGroup {
	regions := cfg.Regions
	if regions == nil {
		regions = noRegions{}
	}
	return &RadioGroup{
		id:       cfg.ID,
		title:    cfg.Title,
		options:  cfg.Options,
		selected: cfg.Selected,
		onChange: cfg.OnChange,
		regions:  regions,
	}
}

func (r *RadioGroup) optionID(i int) string {
	return fmt.Sprintf("%s-option-%d", r.id, i)
}

func (r *RadioGroup) Selected() models.Option     { return r.selected }
func (r *RadioGroup) SetSelected(o models.Option) { r.selected = o }
func (r *RadioGroup) Focus()                      { r.focused = true }
func (r *RadioGroup) Blur()                       { r.focused = false }
func (r *RadioGroup) Capturing() bool             { return false }
func (r *RadioGroup) Close()                      {}
func (r *RadioGroup) Mount()                      {}
func (r *RadioGroup) Unmount()                    {}

func (r *RadioGroup) pick(o models.Option) {
	if o == r.selected {
		return
	}
	r.selected = o
	panelLog.Debug("option_picked", slog.String("picker", r.id), slog.String("value", o.Value))
	if r.onChange != nil {
		r.onChange(o)
	}
}

// Update handles left/right while focused and presses on an option
func (r *RadioGroup) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !r.focused {
			return false, nil
		}
		switch {
		case key.Matches(msg, selectPrevKey):
			if o, ok := neighbour(r.options, r.selected, -1); ok {
				r.pick(o)
			}
			return true, nil
		case key.Matches(msg, selectNextKey):
			if o, ok := neighbour(r.options, r.selected, 1); ok {
				r.pick(o)
			}
			return true, nil
		}

	case tea.MouseMsg:
		if !isPress(msg) {
			return false, nil
		}
		for i, o := range r.options {
			if r.regions.InBounds(r.optionID(i), msg) {
				r.pick(o)
				return true, nil
			}
		}
	}
	return false, nil
}

// View renders the label and one marked cell per option
func (r *RadioGroup) View() string {
	cells := make([]string, 0, len(r.options))
	for i, o := range r.options {
		dot := "( )"
		style := NormalStyle
		if o == r.selected {
			dot = "(•)"
			style = SelectedStyle
		}
		cells = append(cells, r.regions.Mark(r.optionID(i), style.Render(dot+" "+o.Title)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells, "  ")...)
	return lipgloss.JoinVertical(lipgloss.Left, GetLabelStyle(r.focused).Render(r.title), row)
}

func joinWithGap(cells []string, gap string) []string {
	if len(cells) < 2 {
		return cells
	}
	out := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, c)
	}
	return out
}
