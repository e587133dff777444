// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	search   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	edit     key.Binding
	delete   key.Binding
	reveal   key.Binding
	showPass key.Binding
	copy     key.Binding
	copyUser key.Binding
	generate key.Binding
	save     key.Binding
	version  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:   key.NewBinding(key.WithKeys("/")),
	newItem:  key.NewBinding(key.WithKeys("a", "n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d", "ctrl+d")),
	reveal:   key.NewBinding(key.WithKeys(" ")),
	showPass: key.NewBinding(key.WithKeys("ctrl+r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	version:  key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
