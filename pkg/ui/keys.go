package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the viewer's key bindings, grouped for the help bubble.
type keyMap struct {
	NextPanel key.Binding
	PrevPanel key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Unhover   key.Binding
	TopKUp    key.Binding
	TopKDown  key.Binding
	Yank      key.Binding
	Export    key.Binding
	Snapshot  key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "hover prev")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "hover next")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pin/unpin")),
		Unhover:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to pin")),
		TopKUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more concepts")),
		TopKDown:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "fewer concepts")),
		Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy value")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export html")),
		Snapshot:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "export svg")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload snapshot")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Unhover, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel, k.Left, k.Right},
		{k.Select, k.Unhover, k.TopKUp, k.TopKDown},
		{k.Yank, k.Export, k.Snapshot, k.Reload},
		{k.Help, k.Quit},
	}
}
