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
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	reload   key.Binding
	save     key.Binding
	toggle   key.Binding
	yes      key.Binding
	no       key.Binding
	addRow   key.Binding
	dropRow  key.Binding
	cycle    key.Binding
	required key.Binding
	private  key.Binding
	rowKey   key.Binding
	rowLabel key.Binding
	rowValue key.Binding
	options  key.Binding
	moveUp   key.Binding
	moveDown key.Binding
	reveal   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	addRow:   key.NewBinding(key.WithKeys("a")),
	dropRow:  key.NewBinding(key.WithKeys("x")),
	cycle:    key.NewBinding(key.WithKeys("t")),
	required: key.NewBinding(key.WithKeys("r")),
	private:  key.NewBinding(key.WithKeys("p")),
	rowKey:   key.NewBinding(key.WithKeys("k")),
	rowLabel: key.NewBinding(key.WithKeys("l")),
	rowValue: key.NewBinding(key.WithKeys("v")),
	options:  key.NewBinding(key.WithKeys("o")),
	moveUp:   key.NewBinding(key.WithKeys("[")),
	moveDown: key.NewBinding(key.WithKeys("]")),
	reveal:   key.NewBinding(key.WithKeys("s")),
}
