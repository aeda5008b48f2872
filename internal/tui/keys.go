package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Less    key.Binding
	More    key.Binding
	Side    key.Binding
	Split   key.Binding
	Flip    key.Binding
	Harmony key.Binding
	Reseed  key.Binding
	Save    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev level")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next level")),
		Less:    key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		More:    key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		Side:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit other mode")),
		Split:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "split dark levels")),
		Flip:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "dark first")),
		Harmony: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "harmony")),
		Reseed:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reseed")),
		Save:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save levels")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Less, k.More, k.Reseed, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Less, k.More},
		{k.Side, k.Split, k.Flip, k.Harmony},
		{k.Reseed, k.Save, k.Help, k.Quit},
	}
}
