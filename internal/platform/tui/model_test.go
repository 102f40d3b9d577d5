package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config: config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  25,
			TickRate: 60,
			Seed:     7,
		},
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelStartsRunOnEnter(t *testing.T) {
	m := newTestModel(t)
	if m.Game().State() != runner.StateMenu {
		t.Fatalf("initial state = %v, want Menu", m.Game().State())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg{})

	if m.Game().State() != runner.StateInGame {
		t.Errorf("state = %v, want InGame", m.Game().State())
	}
	if m.input.Has(core.ActionConfirm) {
		t.Error("actions should be cleared after a tick")
	}
}

func TestModelReservesHelpLine(t *testing.T) {
	m := newTestModel(t)
	if got := m.Game().Runtime().ScreenH; got != 24 {
		t.Errorf("game height = %d, want 24", got)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	rt := m.Game().Runtime()
	if rt.ScreenW != 100 || rt.ScreenH != 30 {
		t.Errorf("game size = %dx%d, want 100x30", rt.ScreenW, rt.ScreenH)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen size = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHoldsSteeringKey(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg{})

	start := m.Game().Engine().Player.Position().Y
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Axis != 1 {
		t.Fatalf("axis = %v, want 1", m.input.Axis)
	}

	hold := m.hold
	for range hold {
		m = send(t, m, TickMsg{})
	}
	if m.input.Axis != 0 {
		t.Errorf("axis = %v after %d ticks, want 0", m.input.Axis, hold)
	}
	if got := m.Game().Engine().Player.Position().Y; got <= start {
		t.Errorf("player y = %v, want above %v", got, start)
	}
}

func TestModelMouseSetsPointer(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if !m.input.HasPointer {
		t.Fatal("pointer not recorded")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.input.HasPointer {
		t.Error("steering key should drop the pointer")
	}
}

func TestModelMouseClickStartsRun(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, TickMsg{})
	if m.Game().State() != runner.StateInGame {
		t.Errorf("state = %v, want InGame", m.Game().State())
	}
}

func TestModelLeaderboardWithoutStore(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runeKey('l'))
	m = send(t, m, TickMsg{})

	if !m.Game().Panels().Leaderboard {
		t.Fatal("leaderboard panel not shown")
	}
	if view := m.View(); !strings.Contains(view, "LEADERBOARD") {
		t.Error("view should fall back to the in-game leaderboard box")
	}

	m = send(t, m, runeKey('m'))
	m = send(t, m, TickMsg{})
	if m.Game().Panels().Leaderboard {
		t.Error("back should close the leaderboard")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "start") {
		t.Error("help line missing from view")
	}
	if !strings.Contains(view, "Lane Runner") {
		t.Error("home panel missing from view")
	}
}
