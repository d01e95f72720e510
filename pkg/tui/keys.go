package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// panelKeyMap holds the bindings active while the settings panel is open
type panelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Submit key.Binding
	Reset  key.Binding
	Close  key.Binding
}

func newPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev field")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next field")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev option")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap
func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Right, k.Select, k.Submit, k.Reset, k.Close}
}

// FullHelp implements help.KeyMap
func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Submit, k.Reset, k.Close},
	}
}

// appKeyMap holds the reader bindings
type appKeyMap struct {
	Toggle   key.Binding
	Copy     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Toggle:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "settings")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy options")),
		ScrollUp: key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "scroll up")),
		ScrollDn: key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Copy},
		{k.ScrollUp, k.ScrollDn},
		{k.Help, k.Quit},
	}
}
