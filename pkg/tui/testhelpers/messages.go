package testhelpers

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key builds a key message of a special type such as tea.KeyEnter
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// Runes builds a key message for typed text
func Runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Press builds a left button press at x, y
func Press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	}
}

// Release builds a left button release at x, y
func Release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	}
}

// Wheel builds a wheel-down event at x, y
func Wheel(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonWheelDown,
		Action: tea.MouseActionPress,
	}
}
