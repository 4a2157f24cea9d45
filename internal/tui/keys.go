package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	tasks         key.Binding
	notes         key.Binding
	account       key.Binding
	quit          key.Binding
	logout        key.Binding
	newItem       key.Binding
	toggle        key.Binding
	refresh       key.Binding
	edit          key.Binding
	delete        key.Binding
	copy          key.Binding
	deleteAccount key.Binding
	save          key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	tasks:         key.NewBinding(key.WithKeys("1")),
	notes:         key.NewBinding(key.WithKeys("2")),
	account:       key.NewBinding(key.WithKeys("3")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:        key.NewBinding(key.WithKeys("l")),
	newItem:       key.NewBinding(key.WithKeys("a")),
	toggle:        key.NewBinding(key.WithKeys(" ", "enter")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	copy:          key.NewBinding(key.WithKeys("c")),
	deleteAccount: key.NewBinding(key.WithKeys("x")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n", "esc")),
}
