package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level shortcuts. Row navigation is handled
// by the tables' own key maps.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Comparison    key.Binding
	Opportunities key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "descer"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "próxima aba"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "aba anterior"),
		),
		Comparison: key.NewBinding(
			key.WithKeys("1", "c"),
			key.WithHelp("1/c", "regimes"),
		),
		Opportunities: key.NewBinding(
			key.WithKeys("2", "o"),
			key.WithHelp("2/o", "oportunidades"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "sair"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Comparison, k.Opportunities},
		{k.Help, k.Quit},
	}
}
