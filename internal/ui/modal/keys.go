package modal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Press   key.Binding
	Dismiss key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l", "ctrl+n"),
		key.WithHelp("→/tab", "next button"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h", "ctrl+p"),
		key.WithHelp("←/shift+tab", "previous button"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}
