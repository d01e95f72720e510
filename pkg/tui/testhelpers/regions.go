package testhelpers

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is an inclusive cell rectangle
type Rect struct {
	X0, Y0, X1, Y1 int
}

// FakeRegions is an in-memory click region table for driving TUI models
// without a terminal. Zones are placed explicitly instead of being scanned
// from rendered output.
type FakeRegions struct {
	zones  map[string]Rect
	marked map[string]int
}

// NewFakeRegions creates an empty region table
func NewFakeRegions() *FakeRegions {
	return &FakeRegions{
		zones:  make(map[string]Rect),
		marked: make(map[string]int),
	}
}

// Place registers a zone covering the given cells
func (r *FakeRegions) Place(id string, x0, y0, x1, y1 int) {
	r.zones[id] = Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Remove forgets a zone
func (r *FakeRegions) Remove(id string) {
	delete(r.zones, id)
}

// Mark records that a view asked for the zone and returns content unchanged
func (r *FakeRegions) Mark(id, content string) string {
	r.marked[id]++
	return content
}

// Marked reports whether a view marked the zone since the last ResetMarks
func (r *FakeRegions) Marked(id string) bool {
	return r.marked[id] > 0
}

// ResetMarks clears the mark counters
func (r *FakeRegions) ResetMarks() {
	r.marked = make(map[string]int)
}

// Scan returns the view unchanged
func (r *FakeRegions) Scan(view string) string {
	return view
}

// InBounds reports whether the mouse position falls inside a placed zone
func (r *FakeRegions) InBounds(id string, msg tea.MouseMsg) bool {
	rect, ok := r.zones[id]
	if !ok {
		return false
	}
	return msg.X >= rect.X0 && msg.X <= rect.X1 && msg.Y >= rect.Y0 && msg.Y <= rect.Y1
}

// ClickIn returns a left button press at the top-left cell of a placed zone
func (r *FakeRegions) ClickIn(id string) tea.MouseMsg {
	rect := r.zones[id]
	return Press(rect.X0, rect.Y0)
}
