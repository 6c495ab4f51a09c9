package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up             key.Binding
	down           key.Binding
	enter          key.Binding
	esc            key.Binding
	tab            key.Binding
	backtab        key.Binding
	quit           key.Binding
	refresh        key.Binding
	copyID         key.Binding
	copySubdomains key.Binding
	buildInfo      key.Binding
}

var keys = keyMap{
	up:             key.NewBinding(key.WithKeys("up", "k")),
	down:           key.NewBinding(key.WithKeys("down", "j")),
	enter:          key.NewBinding(key.WithKeys("enter")),
	esc:            key.NewBinding(key.WithKeys("esc")),
	tab:            key.NewBinding(key.WithKeys("tab")),
	backtab:        key.NewBinding(key.WithKeys("shift+tab")),
	quit:           key.NewBinding(key.WithKeys("ctrl+c")),
	refresh:        key.NewBinding(key.WithKeys("r")),
	copyID:         key.NewBinding(key.WithKeys("c")),
	copySubdomains: key.NewBinding(key.WithKeys("y")),
	buildInfo:      key.NewBinding(key.WithKeys("v")),
}
