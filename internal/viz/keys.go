package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Pause     key.Binding
	Next      key.Binding
	Easing    key.Binding
	Direction key.Binding
	Instant   key.Binding
	Theme     key.Binding
	Help      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause feed")),
		Next:      key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next value")),
		Easing:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "cycle easing")),
		Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "cycle direction")),
		Instant:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle animation")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Next},
		{k.Easing, k.Direction, k.Instant, k.Theme},
		{k.Help, k.Quit},
	}
}
