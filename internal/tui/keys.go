package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	MoreItems key.Binding
	LessItems key.Binding
	WiderGap  key.Binding
	NarrowGap key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		MoreItems: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add item"),
		),
		LessItems: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove item"),
		),
		WiderGap: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "wider gap"),
		),
		NarrowGap: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "narrower gap"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoreItems, k.LessItems, k.WiderGap, k.NarrowGap, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
