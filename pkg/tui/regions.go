package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Regions locates named click regions in the last rendered frame.
// Views wrap content with Mark; the root view passes its output through
// Scan before handing it to the terminal.
type Regions interface {
	Mark(id, content string) string
	Scan(view string) string
	InBounds(id string, msg tea.MouseMsg) bool
}

// ZoneRegions backs Regions with a bubblezone manager
type ZoneRegions struct {
	manager *zone.Manager
}

// NewZoneRegions starts a zone manager. Close releases it.
func NewZoneRegions() *ZoneRegions {
	return &ZoneRegions{manager: zone.New()}
}

func (z *ZoneRegions) Mark(id, content string) string {
	return z.manager.Mark(id, content)
}

func (z *ZoneRegions) Scan(view string) string {
	return z.manager.Scan(view)
}

func (z *ZoneRegions) InBounds(id string, msg tea.MouseMsg) bool {
	return z.manager.Get(id).InBounds(msg)
}

// Close stops the zone manager's worker
func (z *ZoneRegions) Close() {
	z.manager.Close()
}

// noRegions is used when mouse support is off: nothing is ever hit
type noRegions struct{}

func (noRegions) Mark(_, content string) string      { return content }
func (noRegions) Scan(view string) string            { return view }
func (noRegions) InBounds(string, tea.MouseMsg) bool { return false }

// isPress reports whether msg is a button press other than the wheel
func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel()
}
