package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorPrimary  = "33"  // Blue for primary actions
	ColorStatusBg = "62"  // Status bar background
	ColorStatusFg = "230" // Status bar text
)

// Common styles
var (
	// Panel frame
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(1, 2)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	// Picker labels
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorNormal))

	ActiveLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorActive))

	// Dropdown field
	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 1)

	ActiveFieldStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Padding(0, 1)

	// Selection styles
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	// Arrow toggle
	ToggleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true).
			Padding(0, 1)

	// Form buttons
	ClearButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)).
				Padding(0, 2)

	ApplyButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary)).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(ColorPrimary)).
				Bold(true).
				Padding(0, 2)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))
)

// GetButtonStyle returns the button style, highlighted when focused
func GetButtonStyle(base lipgloss.Style, focused bool) lipgloss.Style {
	if !focused {
		return base
	}
	return base.BorderForeground(lipgloss.Color(ColorActive)).Underline(true)
}

// GetLabelStyle returns the picker label style for the focus state
func GetLabelStyle(focused bool) lipgloss.Style {
	if focused {
		return ActiveLabelStyle
	}
	return LabelStyle
}
