package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keymap defines all key bindings for the TUI.
type Keymap struct {
	Up       key.Binding
	Down     key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	Select key.Binding
	Back   key.Binding
	Search key.Binding
	New    key.Binding
	Delete key.Binding
	Fav    key.Binding
	Quit   key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("[", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("]", "next tab"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→", "next page"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle/select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Fav: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FooterText returns condensed help text for the footer.
func (k Keymap) FooterText() string {
	return "tab/[ ] switch view • ↑↓ navigate • enter toggle • q quit"
}
