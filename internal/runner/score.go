package runner

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RunSession is one play-through.
type RunSession struct {
	ID         string
	Score      int
	Multiplier float64
	Elapsed    float64 // Passive scoring accumulator, in seconds
	Submitted  bool
	StartedAt  time.Time
}

// ScoreTracker owns the current run's score and multiplier and the
// persisted high score.
type ScoreTracker struct {
	log   *log.Logger
	store HighScoreStore
	key   string

	run       RunSession
	highScore int
}

// NewScoreTracker loads the stored high score. A store error is logged and
// treated as no high score.
func NewScoreTracker(store HighScoreStore, key string, logger *log.Logger) *ScoreTracker {
	if store == nil {
		store = NewMemoryStore()
	}
	t := &ScoreTracker{
		log:   orDiscard(logger),
		store: store,
		key:   key,
		run:   RunSession{Multiplier: 1},
	}
	t.highScore = t.loadHighScore()
	return t
}

func (t *ScoreTracker) loadHighScore() int {
	hs, err := t.store.HighScore(t.key)
	if err != nil {
		t.log.Warn("cannot load high score", "key", t.key, "error", err)
		return 0
	}
	return hs
}

// BeginRun starts a fresh session with a new ID.
func (t *ScoreTracker) BeginRun() {
	t.run = RunSession{
		ID:         uuid.NewString(),
		Multiplier: 1,
		StartedAt:  time.Now(),
	}
}

// Session returns a copy of the current session.
func (t *ScoreTracker) Session() RunSession {
	return t.run
}

// AddScore adds n points. The multiplier is not applied.
func (t *ScoreTracker) AddScore(n int) {
	t.run.Score += n
}

// CurrentScore returns the score of the current run.
func (t *ScoreTracker) CurrentScore() int {
	return t.run.Score
}

// ResetScore sets the current score to zero.
func (t *ScoreTracker) ResetScore() {
	t.run.Score = 0
	t.run.Elapsed = 0
}

// ResetScoreMultiplier sets the multiplier back to 1.
func (t *ScoreTracker) ResetScoreMultiplier() {
	t.run.Multiplier = 1
}

// AddMultiplier raises the multiplier by step.
func (t *ScoreTracker) AddMultiplier(step float64) {
	t.run.Multiplier += step
}

// Multiplier returns the current multiplier.
func (t *ScoreTracker) Multiplier() float64 {
	return t.run.Multiplier
}

// HighScore returns the last known stored high score.
func (t *ScoreTracker) HighScore() int {
	return t.highScore
}

// RefreshHighScore re-reads the stored high score, which another tracker
// sharing the store may have raised. On a store error the cached value is kept.
func (t *ScoreTracker) RefreshHighScore() int {
	hs, err := t.store.HighScore(t.key)
	if err != nil {
		t.log.Warn("cannot refresh high score", "key", t.key, "error", err)
		return t.highScore
	}
	t.highScore = hs
	return hs
}

// Tick accumulates dt and reports whether a full interval has elapsed.
// The accumulator restarts from zero when it fires.
func (t *ScoreTracker) Tick(dt, interval float64) bool {
	if interval <= 0 {
		return false
	}
	t.run.Elapsed += dt
	if t.run.Elapsed < interval {
		return false
	}
	t.run.Elapsed = 0
	return true
}

// SaveScore writes the current score as the high score. Callers check
// that it is actually higher.
func (t *ScoreTracker) SaveScore() error {
	if err := t.store.SetHighScore(t.key, t.run.Score); err != nil {
		return err
	}
	t.highScore = t.run.Score
	return nil
}

// Submitted reports whether this run already wrote its high score.
func (t *ScoreTracker) Submitted() bool {
	return t.run.Submitted
}

// MarkSubmitted records that this run's score was handled.
func (t *ScoreTracker) MarkSubmitted() {
	t.run.Submitted = true
}
