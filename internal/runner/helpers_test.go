package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
)

type fixedViewport float64

func (v fixedViewport) RightEdge(float64) float64 {
	return float64(v)
}

type recordingDisplay struct {
	panels  []Panels
	current []string
	final   []string
	high    []string
}

func (d *recordingDisplay) ShowPanels(p Panels) {
	d.panels = append(d.panels, p)
}

func (d *recordingDisplay) ShowCurrentScore(text string) {
	d.current = append(d.current, text)
}

func (d *recordingDisplay) ShowFinalScore(text string) {
	d.final = append(d.final, text)
}

func (d *recordingDisplay) ShowHighScore(text string) {
	d.high = append(d.high, text)
}

func (d *recordingDisplay) lastPanels() Panels {
	return d.panels[len(d.panels)-1]
}

func (d *recordingDisplay) lastCurrent() string {
	return d.current[len(d.current)-1]
}

type recordingStore struct {
	*MemoryStore
	runs []int
}

func (s *recordingStore) RecordRun(gameID, runID string, score int) error {
	s.runs = append(s.runs, score)
	return nil
}

type failingStore struct{}

func (failingStore) HighScore(string) (int, error) {
	return 0, errors.New("disk on fire")
}

func (failingStore) SetHighScore(string, int) error {
	return errors.New("disk on fire")
}

// straightKind is a segment with its landmark two units before its end.
func straightKind(name string, length float64, ttl float64) SegmentKind {
	return SegmentKind{
		Name:   name,
		TTL:    ttl,
		Length: length,
		Children: []ChildSpec{
			{Name: "Landmark", Offset: core.V2(length-2, 0)},
			{Name: "Wall", Tag: TagObstacle, Offset: core.V2(length/2, 2), Size: core.V2(1, 1), Solid: true},
		},
	}
}

type testEngine struct {
	*Engine
	display *recordingDisplay
	store   *recordingStore
}

func newTestEngine(t *testing.T) testEngine {
	t.Helper()
	display := &recordingDisplay{}
	store := &recordingStore{MemoryStore: NewMemoryStore()}
	e, err := New(config.DefaultRunnerConfig(), []SegmentKind{straightKind("Level 1", 12, 26)}, Deps{
		Display:  display,
		Store:    store,
		Viewport: fixedViewport(20),
		GameID:   "lanes",
		Seed:     1,
	})
	require.NoError(t, err)
	require.NoError(t, e.Err())
	return testEngine{Engine: e, display: display, store: store}
}
