package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Start       key.Binding
	Pause       key.Binding
	Trace       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Leaderboard key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Pause, k.Trace, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Trace},
		{k.Start, k.Pause, k.Restart},
		{k.Back, k.Leaderboard, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "lane up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "lane down"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hold lane"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("m", "b", "backspace"),
			key.WithHelp("m", "menu"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "leaderboard"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action and a lane axis.
// Axis is +1 for up, -1 for down and 0 otherwise.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, axis float64) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Up):
		return core.ActionNone, 1
	case key.Matches(msg, k.Down):
		return core.ActionNone, -1
	case key.Matches(msg, k.Start):
		return core.ActionConfirm, 0
	case key.Matches(msg, k.Pause):
		return core.ActionPause, 0
	case key.Matches(msg, k.Trace):
		return core.ActionTrace, 0
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, 0
	case key.Matches(msg, k.Back):
		return core.ActionBack, 0
	case key.Matches(msg, k.Leaderboard):
		return core.ActionLeaderboard, 0
	}
	return core.ActionNone, 0
}
