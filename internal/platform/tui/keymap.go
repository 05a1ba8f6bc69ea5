package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termtris/internal/tetris"
)

// KeyMap declares the game's key bindings. Letters and arrow keys map to the
// same logical action; the help text doubles as the menu screen's legend.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Rotate key.Binding
	Play   key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "move right"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "move down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "rotate"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play / restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to an engine action. The second return value
// is false for unrecognized keys, which produce no event at all.
func (km KeyMap) Map(msg tea.KeyMsg) (tetris.Action, bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return tetris.ActionQuit, true
	case key.Matches(msg, km.Left):
		return tetris.ActionLeft, true
	case key.Matches(msg, km.Right):
		return tetris.ActionRight, true
	case key.Matches(msg, km.Down):
		return tetris.ActionDown, true
	case key.Matches(msg, km.Rotate):
		return tetris.ActionRotate, true
	case key.Matches(msg, km.Play):
		return tetris.ActionPlay, true
	case key.Matches(msg, km.Pause):
		return tetris.ActionPause, true
	}
	return 0, false
}
