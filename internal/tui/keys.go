package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Swing     key.Binding
	Collector key.Binding
	Typing    key.Binding
	Throw     key.Binding
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Stop      key.Binding
	Reset     key.Binding
	Tab       key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Swing:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "swing")),
		Collector: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "collector")),
		Typing:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "typing")),
		Throw:     key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "throw")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase")),
		Stop:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Swing, k.Collector, k.Typing,
		k.Throw, k.Left, k.Right, k.Backspace,
		k.Stop, k.Reset, k.Tab, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
