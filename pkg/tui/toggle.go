package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const toggleButtonID = "panel-toggle"

// ArrowButton is the small tab that opens and collapses the settings panel
type ArrowButton struct {
	regions Regions
}

// NewArrowButton creates the toggle button
func NewArrowButton(regions Regions) *ArrowButton {
	if regions == nil {
		regions = noRegions{}
	}
	return &ArrowButton{regions: regions}
}

// Arrow returns the glyph for the given state: it points the way the
// panel will move when pressed.
func Arrow(isOpen bool) string {
	if isOpen {
		return "▶"
	}
	return "◀"
}

// View renders the button and marks its click region
func (b *ArrowButton) View(isOpen bool) string {
	return b.regions.Mark(toggleButtonID, ToggleStyle.Render(Arrow(isOpen)))
}

// Clicked reports whether msg is a press on the button
func (b *ArrowButton) Clicked(msg tea.MouseMsg) bool {
	return isPress(msg) && b.regions.InBounds(toggleButtonID, msg)
}
