package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	CycleDown  key.Binding
	CycleUp    key.Binding
	PeriodDown key.Binding
	PeriodUp   key.Binding
	Log        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		CycleDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "shorter cycle"),
		),
		CycleUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "longer cycle"),
		),
		PeriodDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter period"),
		),
		PeriodUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer period"),
		),
		Log: key.NewBinding(
			key.WithKeys("a", "l"),
			key.WithHelp("a", "log date"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Log, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleDown, k.CycleUp, k.PeriodDown, k.PeriodUp},
		{k.Log, k.Help, k.Quit},
	}
}
