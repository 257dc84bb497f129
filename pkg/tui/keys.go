package tui

import "github.com/charmbracelet/bubbles/key"

// tuiKeyMap lists the dashboard key bindings. It satisfies help.KeyMap.
type tuiKeyMap struct {
	Unit   key.Binding
	Theme  key.Binding
	Filter key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Active while the filter input has focus.
	Accept key.Binding
	Cancel key.Binding
}

func tuiDefaultKeyMap() tuiKeyMap {
	return tuiKeyMap{
		Unit: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k tuiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Unit, k.Theme, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k tuiKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Unit, k.Theme},
		{k.Filter, k.Accept, k.Cancel},
		{k.Help, k.Quit},
	}
}
