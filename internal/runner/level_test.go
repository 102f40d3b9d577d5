package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lanerunner/internal/core"
)

func newTestLevel(t *testing.T, catalog []SegmentKind) (*World, *LevelGenerator) {
	t.Helper()
	w := NewWorld(nil)
	g := NewLevelGenerator(w, LevelOptions{
		Catalog:    catalog,
		SpawnPoint: &SpawnPoint{Position: core.V2(12, 0), Depth: 10},
		Viewport:   fixedViewport(10),
		Landmark:   "Landmark",
		DefaultTTL: 30,
		Seed:       7,
	})
	require.NoError(t, g.Err())
	return w, g
}

func TestShouldSpawn(t *testing.T) {
	tests := []struct {
		name     string
		landmark float64
		edge     float64
		want     bool
	}{
		{"far right", 15, 10, false},
		{"just right", 10.001, 10, false},
		{"on edge", 10, 10, true},
		{"left of edge", 9.5, 10, true},
		{"negative", -3, -2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSpawn(tt.landmark, tt.edge))
		})
	}
}

func TestLevelGeneratorConfigErrors(t *testing.T) {
	w := NewWorld(nil)
	sp := &SpawnPoint{}
	kinds := []SegmentKind{straightKind("a", 6, 0)}

	tests := []struct {
		name string
		opts LevelOptions
		want error
	}{
		{"empty catalog", LevelOptions{SpawnPoint: sp, Viewport: fixedViewport(0)}, ErrEmptyCatalog},
		{"no spawn point", LevelOptions{Catalog: kinds, Viewport: fixedViewport(0)}, ErrNoSpawnPoint},
		{"no viewport", LevelOptions{Catalog: kinds, SpawnPoint: sp}, ErrNoViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewLevelGenerator(w, tt.opts)
			assert.ErrorIs(t, g.Err(), tt.want)

			g.SetPlaying(true)
			assert.False(t, g.Playing())
			_, ok := g.SpawnPrefab()
			assert.False(t, ok)
			g.Update()
			assert.Equal(t, 0, w.Len())
		})
	}
}

func TestLevelSpawnsWhenLandmarkReachesEdge(t *testing.T) {
	// Landmark starts at 12+4=16, edge is 10, speed 2: crossing after 3s.
	w, g := newTestLevel(t, []SegmentKind{straightKind("a", 6, 0)})
	first, ok := g.SpawnPrefab()
	require.True(t, ok)
	g.SetPlaying(true)

	for i := range 5 {
		w.Update(0.5)
		g.Update()
		assert.Equal(t, first, g.ActiveSegment(), "step %d", i)
		assert.Equal(t, 1, g.LiveSegments())
	}

	w.Update(0.5)
	g.Update()
	assert.NotEqual(t, first, g.ActiveSegment())
	assert.Equal(t, 2, g.LiveSegments())
	assert.True(t, w.Alive(first), "superseded segment lives until its TTL")

	pos, _ := w.Position(g.ActiveSegment())
	assert.Equal(t, core.V2(12, 0), pos)
}

func TestLevelDoesNothingWhileNotPlaying(t *testing.T) {
	w, g := newTestLevel(t, []SegmentKind{straightKind("a", 6, 0)})
	g.SpawnPrefab()

	for range 20 {
		w.Update(0.5)
		g.Update()
	}
	assert.Equal(t, 1, g.LiveSegments())
}

func TestLevelMissingLandmarkDisablesGenerator(t *testing.T) {
	kind := SegmentKind{Name: "broken", Length: 4, Children: []ChildSpec{{Name: "Rock", Tag: TagObstacle}}}
	_, g := newTestLevel(t, []SegmentKind{kind})
	g.SpawnPrefab()
	g.SetPlaying(true)

	g.Update()
	assert.ErrorIs(t, g.Err(), ErrMissingLandmark)
	assert.False(t, g.Playing())

	g.SetPlaying(true)
	assert.False(t, g.Playing())
}

func TestLevelSegmentTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  float64
		want float64
	}{
		{"kind ttl", 26, 26},
		{"default ttl", 0, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, g := newTestLevel(t, []SegmentKind{straightKind("k", 6, tt.ttl)})
			id, _ := g.SpawnPrefab()

			w.Update(tt.want - 0.5)
			assert.True(t, w.Alive(id))
			w.Update(0.5)
			assert.False(t, w.Alive(id))
			assert.Equal(t, ObjectID(0), g.ActiveSegment())
		})
	}
}

func TestLevelTTLDoesNotLeakBetweenKinds(t *testing.T) {
	w, g := newTestLevel(t, []SegmentKind{straightKind("special", 6, 5)})
	special, _ := g.SpawnPrefab()
	g.catalog = []SegmentKind{straightKind("plain", 6, 0)}
	plain, _ := g.SpawnPrefab()

	w.Update(5)
	assert.False(t, w.Alive(special))
	assert.True(t, w.Alive(plain))
}

func TestLevelUpdateSpeedCompounds(t *testing.T) {
	w, g := newTestLevel(t, []SegmentKind{straightKind("a", 6, 0)})
	id, _ := g.SpawnPrefab()
	g.SetSpeedMultiplier(1.5)

	g.UpdateSpeed()
	g.UpdateSpeed()

	assert.InDelta(t, 2*1.5*1.5, g.MoveSpeed(), 1e-9)
	seg, ok := w.Get(id)
	require.True(t, ok)
	assert.InDelta(t, 4.5, seg.Motion.Speed(), 1e-9)
	assert.Equal(t, core.V2(-4.5, 0), seg.Motion.Velocity())
}

func TestLevelResetSpeedDoesNotPush(t *testing.T) {
	w, g := newTestLevel(t, []SegmentKind{straightKind("a", 6, 0)})
	id, _ := g.SpawnPrefab()
	g.SetSpeedMultiplier(3)
	g.UpdateSpeed()

	g.ResetSpeed()
	assert.Equal(t, DefaultMoveSpeed, g.MoveSpeed())
	assert.Equal(t, DefaultMoveSpeedMultiplier, g.SpeedMultiplier())

	seg, _ := w.Get(id)
	assert.Equal(t, 6.0, seg.Motion.Speed())
}

func TestLevelLowerSpeed(t *testing.T) {
	_, g := newTestLevel(t, []SegmentKind{straightKind("a", 6, 0)})
	g.SpawnPrefab()

	g.LowerSpeed()
	assert.Equal(t, 0.0, g.SpeedMultiplier())
	assert.Equal(t, 0.0, g.MoveSpeed())

	g.LowerSpeed()
	assert.Equal(t, -1.0, g.SpeedMultiplier())
}

func TestLevelClear(t *testing.T) {
	w, g := newTestLevel(t, []SegmentKind{straightKind("a", 6, 0)})
	g.SpawnPrefab()
	g.SpawnPrefab()
	require.Equal(t, 2, g.LiveSegments())

	g.Clear()
	assert.Equal(t, 0, g.LiveSegments())
	assert.Equal(t, ObjectID(0), g.ActiveSegment())
	assert.Equal(t, 0, w.Len())
}

func TestLevelRandomChoiceIsSeeded(t *testing.T) {
	kinds := []SegmentKind{straightKind("a", 6, 0), straightKind("b", 6, 0), straightKind("c", 6, 0)}
	names := func() []string {
		w, g := newTestLevel(t, kinds)
		var out []string
		for range 10 {
			id, _ := g.SpawnPrefab()
			seg, _ := w.Get(id)
			out = append(out, seg.Name)
		}
		return out
	}
	assert.Equal(t, names(), names())
}
