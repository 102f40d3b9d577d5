package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lanerunner/internal/core"
)

func TestRunScenario(t *testing.T) {
	e := newTestEngine(t)
	idle := core.NewInputFrame()

	e.Machine.StartGame()
	for range 3 {
		e.Step(1.0, idle)
	}
	require.Equal(t, 3, e.Scores.CurrentScore())
	assert.Equal(t, "Score: 3", e.display.lastCurrent())

	coin := e.World.Spawn(Object{Tag: TagCoin})
	e.Contacts.Push(ContactEvent{Kind: ContactTrigger, Tag: TagCoin, Object: coin})
	e.Step(0, idle)
	require.Equal(t, 8, e.Scores.CurrentScore())
	assert.False(t, e.World.Alive(coin))
	assert.Equal(t, "Score: 8", e.display.lastCurrent())

	mult := e.World.Spawn(Object{Tag: TagScoreMultiplier})
	e.Contacts.Push(ContactEvent{Kind: ContactTrigger, Tag: TagScoreMultiplier, Object: mult})
	e.Step(0, idle)
	assert.InDelta(t, 1.2, e.Scores.Multiplier(), 1e-9)
	require.Equal(t, 8, e.Scores.CurrentScore())

	wall := e.World.Spawn(Object{Tag: TagObstacle, Solid: true})
	e.Contacts.Push(ContactEvent{Kind: ContactSolid, Tag: TagObstacle, Object: wall})
	e.Step(0, idle)
	assert.Equal(t, StateGameOver, e.Machine.CurrentState())
	assert.Equal(t, []string{"Your Score: 8"}, e.display.final)
	assert.Equal(t, 8, e.store.scores["HighScore"])
}

func TestCoinAfterCrashIsNotScored(t *testing.T) {
	e := newTestEngine(t)
	idle := core.NewInputFrame()

	e.Machine.StartGame()
	for range 3 {
		e.Step(1.0, idle)
	}
	coin := e.World.Spawn(Object{Tag: TagCoin})
	e.Contacts.Push(ContactEvent{Kind: ContactTrigger, Tag: TagCoin, Object: coin})
	e.Step(0, idle)
	require.Equal(t, 8, e.Scores.CurrentScore())

	wall := e.World.Spawn(Object{Tag: TagObstacle, Solid: true})
	late := e.World.Spawn(Object{Tag: TagCoin})
	e.Contacts.Push(ContactEvent{Kind: ContactSolid, Tag: TagObstacle, Object: wall})
	e.Contacts.Push(ContactEvent{Kind: ContactTrigger, Tag: TagCoin, Object: late})
	e.Step(0, idle)

	assert.Equal(t, StateGameOver, e.Machine.CurrentState())
	assert.Equal(t, 8, e.Scores.CurrentScore())
	assert.Equal(t, "Score: 8", e.display.lastCurrent())
	assert.Equal(t, []string{"Your Score: 8"}, e.display.final)
	assert.Equal(t, 8, e.store.scores["HighScore"])
	assert.Equal(t, 0, e.Contacts.Len())
}

func TestStepFreezesWorldWhilePaused(t *testing.T) {
	e := newTestEngine(t)
	e.Machine.StartGame()
	seg := e.Level.ActiveSegment()
	before, _ := e.World.Position(seg)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	e.Step(1, pause)
	e.Step(1, core.NewInputFrame())

	after, _ := e.World.Position(seg)
	assert.Equal(t, before, after)
	assert.Equal(t, 0, e.Scores.CurrentScore())
}

func TestStepSpawnsContinuously(t *testing.T) {
	e := newTestEngine(t)
	e.Machine.StartGame()
	first := e.Level.ActiveSegment()

	// Segment length 12 at speed 2: a new one every 6 seconds once the first crosses.
	for range 40 {
		e.Step(0.5, core.NewInputFrame())
	}
	assert.NotEqual(t, first, e.Level.ActiveSegment())
	assert.Greater(t, e.Level.LiveSegments(), 1)
	assert.Equal(t, 20, e.Scores.CurrentScore())
}

type countingDetector struct{ calls int }

func (d *countingDetector) Detect(*ContactQueue) {
	d.calls++
}

func TestDetectorSkippedWhileFrozen(t *testing.T) {
	e := newTestEngine(t)
	d := &countingDetector{}
	e.Loop.Detector = d

	e.Machine.StartGame()
	e.Step(0.1, core.NewInputFrame())
	e.Machine.PauseGame()
	e.Step(0.1, core.NewInputFrame())

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, uint64(2), e.Loop.Ticks())
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	e := newTestEngine(t)
	e.Machine.StartGame()

	ctx, cancel := context.WithCancel(context.Background())
	polls := 0
	src := InputFunc(func() core.InputFrame {
		polls++
		if polls == 3 {
			cancel()
		}
		return core.NewInputFrame()
	})

	done := make(chan struct{})
	go func() {
		e.Loop.Run(ctx, time.Millisecond, src)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.GreaterOrEqual(t, e.Loop.Ticks(), uint64(3))
}
