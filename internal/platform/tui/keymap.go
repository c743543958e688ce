package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMap defines the fixed key bindings of the shooter.
type KeyMap struct {
	Up    key.Binding
	Left  key.Binding
	Down  key.Binding
	Right key.Binding
	Fire  key.Binding
	Exit  key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Fire, k.Exit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.Fire, k.Exit, k.Quit},
	}
}

// DefaultKeyMap returns the shooter key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(string(core.KeyUp)),
			key.WithHelp("w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys(string(core.KeyLeft)),
			key.WithHelp("a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys(string(core.KeyDown)),
			key.WithHelp("s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys(string(core.KeyRight)),
			key.WithHelp("d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(string(core.KeyFire)),
			key.WithHelp("space", "fire"),
		),
		Exit: key.NewBinding(
			key.WithKeys(string(core.KeyEsc)),
			key.WithHelp("esc", "leave level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
	}
}

// MapKey translates a key message to the game key it stands for.
// ok is false for keys the game ignores.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp, true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Down):
		return core.KeyDown, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Fire):
		return core.KeyFire, true
	case key.Matches(msg, k.Exit):
		return core.KeyEsc, true
	}
	return "", false
}
