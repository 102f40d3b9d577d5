package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// MachineOptions wires a StateMachine to the components it orchestrates.
type MachineOptions struct {
	Display      Display
	Scores       *ScoreTracker
	Level        *LevelGenerator
	Player       *Player
	World        *World
	Gate         *TimeGate
	GameID       string  // Recorded with run history
	TickInterval float64 // Seconds between passive points
	TickPoints   int
	Logger       *log.Logger
}

type observer struct {
	id Subscription
	fn func(GameState)
}

// StateMachine owns the game state and sequences every run.
// It is the only component that freezes time or resets the others.
type StateMachine struct {
	log     *log.Logger
	display Display
	scores  *ScoreTracker
	level   *LevelGenerator
	player  *Player
	world   *World
	gate    *TimeGate
	gameID  string

	tickInterval float64
	tickPoints   int

	state     GameState
	panels    Panels
	observers []observer
	nextSub   Subscription
}

// NewStateMachine creates a machine in the Menu state.
func NewStateMachine(opts MachineOptions) *StateMachine {
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	if opts.Gate == nil {
		opts.Gate = &TimeGate{}
	}
	return &StateMachine{
		log:          orDiscard(opts.Logger),
		display:      opts.Display,
		scores:       opts.Scores,
		level:        opts.Level,
		player:       opts.Player,
		world:        opts.World,
		gate:         opts.Gate,
		gameID:       opts.GameID,
		tickInterval: opts.TickInterval,
		tickPoints:   opts.TickPoints,
		state:        StateMenu,
	}
}

// Subscribe registers fn for state changes.
func (m *StateMachine) Subscribe(fn func(GameState)) Subscription {
	m.nextSub++
	m.observers = append(m.observers, observer{id: m.nextSub, fn: fn})
	return m.nextSub
}

// Unsubscribe removes a registered observer. Unknown subscriptions are ignored.
func (m *StateMachine) Unsubscribe(sub Subscription) {
	for i, o := range m.observers {
		if o.id == sub {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// CurrentState returns the authoritative state.
func (m *StateMachine) CurrentState() GameState {
	return m.state
}

// IsGameState reports whether the machine is in s.
func (m *StateMachine) IsGameState(s GameState) bool {
	return m.state == s
}

// Panels returns the panels last pushed to the display.
func (m *StateMachine) Panels() Panels {
	return m.panels
}

// ChangeGameState moves to s and notifies every observer once, before
// returning. Changing to the current state only logs a warning.
func (m *StateMachine) ChangeGameState(s GameState) {
	if s == m.state {
		m.log.Warn("game state unchanged", "state", s)
		return
	}
	m.setState(s)
}

func (m *StateMachine) setState(s GameState) {
	if s == m.state {
		return
	}
	prev := m.state
	m.state = s
	m.log.Debug("game state changed", "from", prev, "to", s)

	// Observers may unsubscribe while being notified.
	snapshot := append([]observer(nil), m.observers...)
	for _, o := range snapshot {
		o.fn(s)
	}
}

func (m *StateMachine) showPanels(p Panels) {
	m.panels = p
	m.display.ShowPanels(p)
}

// ShowHome shows the home panels. Used for the initial Menu state.
func (m *StateMachine) ShowHome() {
	m.showPanels(Panels{Home: true})
}

// StartGame fully resets the run and enters InGame. Calling it again
// performs another full reset.
func (m *StateMachine) StartGame() {
	m.player.ResetPosition()
	m.player.SetActive(true)
	m.player.SetPlaying(true)

	m.world.DestroyTagged(RunTags...)
	m.level.Clear()
	m.scores.BeginRun()
	m.scores.RefreshHighScore()

	m.gate.Unfreeze()
	m.setState(StateInGame)
	m.showPanels(Panels{InGame: true})

	m.level.SetPlaying(true)
	m.level.ResetSpeed()
	m.level.SpawnPrefab()
	m.level.UpdateSpeed()

	m.UpdateCurrentScore()
	m.log.Info("run started", "run", m.scores.Session().ID, "high_score", m.scores.HighScore())
}

// GameOver ends the run. A second call while already over does nothing.
func (m *StateMachine) GameOver() {
	if m.state == StateGameOver {
		return
	}
	m.ChangeGameState(StateGameOver)
	m.gate.Freeze()
	m.level.SetPlaying(false)
	m.player.SetPlaying(false)
	m.player.SetActive(false)

	score := m.scores.CurrentScore()
	previous := m.scores.RefreshHighScore()
	m.display.ShowFinalScore(fmt.Sprintf("Your Score: %d", score))
	m.display.ShowHighScore(fmt.Sprintf("High Score: %d", previous))

	if !m.scores.Submitted() {
		m.submit(score, previous)
	}

	m.showPanels(Panels{GameOver: true})
	m.log.Info("game over", "run", m.scores.Session().ID, "score", score, "high_score", m.scores.HighScore())
}

// submit persists the run. Failures are logged; the game continues.
func (m *StateMachine) submit(score, previous int) {
	m.scores.MarkSubmitted()
	if score > previous {
		if err := m.scores.SaveScore(); err != nil {
			m.log.Warn("cannot save high score", "score", score, "error", err)
		}
	}
	if score <= 0 {
		return
	}
	rec, ok := m.scores.store.(RunRecorder)
	if !ok {
		return
	}
	if err := rec.RecordRun(m.gameID, m.scores.Session().ID, score); err != nil {
		m.log.Warn("cannot record run", "score", score, "error", err)
	}
}

// PauseGame freezes time. It only applies while InGame.
func (m *StateMachine) PauseGame() {
	if m.state != StateInGame {
		m.log.Warn("pause ignored", "state", m.state)
		return
	}
	m.ChangeGameState(StatePause)
	m.gate.Freeze()
	m.player.SetPlaying(false)
	m.showPanels(Panels{InGame: true, Pause: true})
	m.log.Info("game paused")
}

// ResumeGame unfreezes time. It only applies while paused.
func (m *StateMachine) ResumeGame() {
	if m.state != StatePause {
		m.log.Warn("resume ignored", "state", m.state)
		return
	}
	m.ChangeGameState(StateInGame)
	m.gate.Unfreeze()
	m.player.SetPlaying(true)
	m.showPanels(Panels{InGame: true})
	m.log.Info("game resumed")
}

// RestartGame starts a new run from any state.
func (m *StateMachine) RestartGame() {
	m.gate.Unfreeze()
	m.StartGame()
}

// ReturnToMenu abandons the current run and goes back to the menu.
func (m *StateMachine) ReturnToMenu() {
	m.ChangeGameState(StateMenu)
	m.gate.Unfreeze()
	m.level.SetPlaying(false)
	m.level.Clear()
	m.world.DestroyTagged(RunTags...)
	m.player.SetPlaying(false)
	m.player.SetActive(false)
	m.player.ResetPosition()
	m.scores.ResetScore()
	m.scores.ResetScoreMultiplier()
	m.ShowHome()
}

// BackToHome shows the home panels without changing state.
func (m *StateMachine) BackToHome() {
	m.gate.Unfreeze()
	m.ShowHome()
}

// ShowLeaderboard swaps the home panel for the leaderboard.
func (m *StateMachine) ShowLeaderboard() {
	m.showPanels(Panels{Leaderboard: true})
}

// UpdateCurrentScore pushes the current score to the display.
func (m *StateMachine) UpdateCurrentScore() {
	m.display.ShowCurrentScore(fmt.Sprintf("Score: %d", m.scores.CurrentScore()))
}

// Update runs one tick. dt is real time; passive scoring uses gated time.
// Pause and trace toggles are read in every state.
func (m *StateMachine) Update(dt float64, in core.InputFrame) {
	if in.Has(core.ActionPause) {
		if m.state == StatePause {
			m.ResumeGame()
		} else {
			m.PauseGame()
		}
	}
	if in.Has(core.ActionTrace) {
		m.player.ToggleTrace()
	}
	m.navigate(in)

	if m.state != StateInGame {
		return
	}
	if m.scores.Tick(m.gate.Apply(dt), m.tickInterval) {
		m.scores.AddScore(m.tickPoints)
		m.UpdateCurrentScore()
	}
}

// navigate handles the menu buttons.
func (m *StateMachine) navigate(in core.InputFrame) {
	switch m.state {
	case StateMenu:
		switch {
		case m.panels.Leaderboard && in.Has(core.ActionBack):
			m.BackToHome()
		case in.Has(core.ActionLeaderboard):
			m.ShowLeaderboard()
		case in.Has(core.ActionConfirm):
			m.StartGame()
		}
	case StateGameOver, StatePause:
		switch {
		case in.Has(core.ActionRestart), m.state == StateGameOver && in.Has(core.ActionConfirm):
			m.RestartGame()
		case in.Has(core.ActionBack):
			m.ReturnToMenu()
		}
	}
}
