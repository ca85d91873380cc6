package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings of the browser.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Toggle      key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	SwitchPage  key.Binding
	Up          key.Binding
	Down        key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Back        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "non-contributing"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev variant"),
		),
		SwitchPage: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "grouping/rules"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "inspect rule"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete rule"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPage, k.Toggle, k.NextVariant, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchPage, k.Toggle, k.NextVariant, k.PrevVariant},
		{k.Up, k.Down, k.Edit, k.Delete, k.Back},
		{k.Help, k.Quit},
	}
}
