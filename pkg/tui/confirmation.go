package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmYesKey = key.NewBinding(key.WithKeys("y", "Y"))
	confirmNoKey  = key.NewBinding(key.WithKeys("n", "N", "esc"))
)

// ConfirmationModel is an inline y/n prompt shown in the footer
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowInline activates the prompt. Either callback may be nil.
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles y/n while active. Other keys are swallowed.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch {
	case key.Matches(msg, confirmYesKey):
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case key.Matches(msg, confirmNoKey):
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// ViewWithWidth renders the prompt centered in width columns
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	if !m.active {
		return ""
	}
	message := fmt.Sprintf("%s %s", m.message, formatConfirmOptions(m.destructive))
	if width > 0 && lipgloss.Width(message) < width {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(message)
	}
	return message
}

// formatConfirmOptions renders "[y/n]" with the risky answer in red
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("y")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render("n")
	if destructive {
		yes = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render("y")
		no = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("n")
	}
	return fmt.Sprintf("[%s/%s]", yes, no)
}
