package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	refresh key.Binding
	create  key.Binding
	del     key.Binding
	imp     key.Binding
	copyDef key.Binding
	copyID  key.Binding
	toggle  key.Binding
	info    key.Binding
	submit  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	create:  key.NewBinding(key.WithKeys("c")),
	del:     key.NewBinding(key.WithKeys("d")),
	imp:     key.NewBinding(key.WithKeys("i")),
	copyDef: key.NewBinding(key.WithKeys("y")),
	copyID:  key.NewBinding(key.WithKeys("u")),
	toggle:  key.NewBinding(key.WithKeys("t")),
	info:    key.NewBinding(key.WithKeys("v")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
