package runner

import "sync"

// Display receives everything the core wants shown. It never reads back.
type Display interface {
	ShowPanels(p Panels)
	ShowCurrentScore(text string)
	ShowFinalScore(text string)
	ShowHighScore(text string)
}

// HighScoreStore persists named scalar high scores.
type HighScoreStore interface {
	HighScore(name string) (int, error)
	SetHighScore(name string, score int) error
}

// RunRecorder is optionally implemented by stores that keep a run history.
type RunRecorder interface {
	RecordRun(gameID, runID string, score int) error
}

// Viewport reports the visible area of the track.
type Viewport interface {
	// RightEdge returns the world X of the right edge of the view at the given depth.
	RightEdge(depth float64) float64
}

// NopDisplay discards everything.
type NopDisplay struct{}

func (NopDisplay) ShowPanels(Panels)       {}
func (NopDisplay) ShowCurrentScore(string) {}
func (NopDisplay) ShowFinalScore(string)   {}
func (NopDisplay) ShowHighScore(string)    {}

// MemoryStore is an in-process HighScoreStore, used when no database is available.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
	writes int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// HighScore returns the stored score for name, or 0.
func (m *MemoryStore) HighScore(name string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[name], nil
}

// SetHighScore stores score under name.
func (m *MemoryStore) SetHighScore(name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[name] = score
	m.writes++
	return nil
}

// Writes returns how many times SetHighScore was called.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
