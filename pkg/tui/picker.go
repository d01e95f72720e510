package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogpanel/blogpanel/pkg/models"
)

// Picker is a control that chooses one option out of a fixed list
type Picker interface {
	// Update handles a message and reports whether the picker consumed it
	Update(msg tea.Msg) (bool, tea.Cmd)
	View() string
	Selected() models.Option
	// SetSelected changes the selection without notifying the owner
	SetSelected(o models.Option)
	Focus()
	Blur()
	// Capturing reports whether the picker wants every key, such as an
	// open dropdown with a filter
	Capturing() bool
	Close()
	Mount()
	Unmount()
}

// optionIndex returns the position of o in options, or -1
func optionIndex(options []models.Option, o models.Option) int {
	for i, candidate := range options {
		if candidate == o {
			return i
		}
	}
	return -1
}

// neighbour returns the option delta steps away from the selection,
// clamped to the ends of the list
func neighbour(options []models.Option, selected models.Option, delta int) (models.Option, bool) {
	if len(options) == 0 {
		return models.Option{}, false
	}
	idx := optionIndex(options, selected) + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(options) {
		idx = len(options) - 1
	}
	if options[idx] == selected {
		return selected, false
	}
	return options[idx], true
}
