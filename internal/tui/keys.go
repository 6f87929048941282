package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds board actions to keys.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Play      key.Binding
	Search    key.Binding
	Category  key.Binding
	JustAdded key.Binding
	Clear     key.Binding
	Home      key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Play:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		JustAdded: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "just added")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Home:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "home")),
		Submit:    key.NewBinding(key.WithKeys("enter")),
		Cancel:    key.NewBinding(key.WithKeys("esc")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) helpLine() []key.Binding {
	return []key.Binding{k.Play, k.Search, k.Category, k.JustAdded, k.Clear, k.Home, k.Quit}
}
