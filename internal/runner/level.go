package runner

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// Speed defaults restored at the start of every run.
const (
	DefaultMoveSpeed           = 2.0
	DefaultMoveSpeedMultiplier = 1.0
)

// ChildSpec describes one object inside a segment blueprint.
type ChildSpec struct {
	Name   string
	Tag    Tag
	Offset core.Vec2 // Relative to the segment origin
	Size   core.Vec2
	Solid  bool
}

// SegmentKind is one entry of the spawn catalog.
type SegmentKind struct {
	Name     string
	TTL      float64 // Seconds; 0 means the generator default
	Length   float64
	Children []ChildSpec
}

// SpawnPoint is where new segments appear.
type SpawnPoint struct {
	Position core.Vec2
	Depth    float64
}

// LevelOptions configures a LevelGenerator.
type LevelOptions struct {
	Catalog    []SegmentKind
	SpawnPoint *SpawnPoint
	Viewport   Viewport
	Landmark   string  // Child name that triggers the next spawn
	DefaultTTL float64 // Lifetime for kinds without their own
	MoveSpeed  float64 // Base speed restored by ResetSpeed; 0 means DefaultMoveSpeed
	Seed       int64
	Logger     *log.Logger
}

// LevelGenerator spawns track segments whenever the active segment's landmark
// scrolls into view.
type LevelGenerator struct {
	log      *log.Logger
	world    *World
	viewport Viewport
	rng      *rand.Rand
	catalog  []SegmentKind
	spawn    *SpawnPoint
	landmark string

	defaultTTL float64
	baseSpeed  float64

	moveSpeed           float64
	moveSpeedMultiplier float64

	lastSpawned    ObjectID
	landmarkObject ObjectID // Cached landmark of lastSpawned, resolved lazily
	segments       []ObjectID
	playing        bool
	err            error
}

// NewLevelGenerator creates a generator. Configuration errors are logged and
// leave the generator inert; check Err.
func NewLevelGenerator(world *World, opts LevelOptions) *LevelGenerator {
	base := opts.MoveSpeed
	if base <= 0 {
		base = DefaultMoveSpeed
	}
	landmark := opts.Landmark
	if landmark == "" {
		landmark = "Landmark"
	}

	g := &LevelGenerator{
		log:                 orDiscard(opts.Logger),
		world:               world,
		viewport:            opts.Viewport,
		rng:                 rand.New(rand.NewSource(opts.Seed)),
		catalog:             opts.Catalog,
		spawn:               opts.SpawnPoint,
		landmark:            landmark,
		defaultTTL:          opts.DefaultTTL,
		baseSpeed:           base,
		moveSpeed:           base,
		moveSpeedMultiplier: DefaultMoveSpeedMultiplier,
	}

	switch {
	case len(g.catalog) == 0:
		g.fail(ErrEmptyCatalog)
	case g.spawn == nil:
		g.fail(ErrNoSpawnPoint)
	case g.viewport == nil:
		g.fail(ErrNoViewport)
	}
	return g
}

func (g *LevelGenerator) fail(err error) {
	g.err = err
	g.playing = false
	g.log.Error("level generator disabled", "error", err)
}

// Err returns the configuration error that disabled the generator, if any.
func (g *LevelGenerator) Err() error {
	return g.err
}

// SetPlaying enables or disables per-tick spawn checks.
func (g *LevelGenerator) SetPlaying(playing bool) {
	g.playing = playing && g.err == nil
}

// Playing reports whether spawn checks are running.
func (g *LevelGenerator) Playing() bool {
	return g.playing
}

// SetSpawnPoint moves the spawn point, e.g. after the viewport was resized.
func (g *LevelGenerator) SetSpawnPoint(sp SpawnPoint) {
	g.spawn = &sp
}

// SpawnPrefab instantiates a random catalog entry at the spawn point and makes
// it the active segment.
func (g *LevelGenerator) SpawnPrefab() (ObjectID, bool) {
	if g.err != nil {
		return 0, false
	}

	kind := g.catalog[g.rng.Intn(len(g.catalog))]
	id := g.world.Spawn(Object{
		Name:   kind.Name,
		Tag:    TagSegment,
		Local:  g.spawn.Position,
		Size:   core.V2(kind.Length, 0),
		Motion: NewMotion(core.Left, g.moveSpeed),
	})
	for _, child := range kind.Children {
		g.world.SpawnChild(id, Object{
			Name:  child.Name,
			Tag:   child.Tag,
			Local: child.Offset,
			Size:  child.Size,
			Solid: child.Solid,
		})
	}

	ttl := g.ttlFor(kind)
	g.world.DestroyAfter(id, ttl)

	g.lastSpawned = id
	g.landmarkObject = 0
	g.segments = append(g.segments, id)
	g.log.Debug("segment spawned", "kind", kind.Name, "id", id, "ttl", ttl, "speed", g.moveSpeed)
	return id, true
}

func (g *LevelGenerator) ttlFor(kind SegmentKind) float64 {
	if kind.TTL > 0 {
		return kind.TTL
	}
	return g.defaultTTL
}

// Update runs the landmark check once. It does nothing unless playing.
func (g *LevelGenerator) Update() {
	if !g.playing || !g.world.Alive(g.lastSpawned) {
		return
	}

	if g.landmarkObject == 0 || !g.world.Alive(g.landmarkObject) {
		id, ok := g.world.FindChild(g.lastSpawned, g.landmark)
		if !ok {
			seg, _ := g.world.Get(g.lastSpawned)
			g.fail(fmt.Errorf("%w: %q has no child named %q", ErrMissingLandmark, seg.Name, g.landmark))
			return
		}
		g.landmarkObject = id
	}

	pos, _ := g.world.Position(g.landmarkObject)
	if ShouldSpawn(pos.X, g.viewport.RightEdge(g.spawn.Depth)) {
		g.SpawnPrefab()
	}
}

// ShouldSpawn is the landmark rule: spawn once the landmark is at or left of the boundary.
func ShouldSpawn(landmarkX, rightEdge float64) bool {
	return landmarkX <= rightEdge
}

// UpdateSpeed multiplies the move speed by the multiplier and applies it to
// the active segment. Repeated calls compound.
func (g *LevelGenerator) UpdateSpeed() {
	g.moveSpeed *= g.moveSpeedMultiplier
	if seg, ok := g.world.Get(g.lastSpawned); ok && seg.Motion != nil {
		seg.Motion.SetMovement(core.Left, g.moveSpeed)
	}
}

// ResetSpeed restores speed defaults without touching live segments.
func (g *LevelGenerator) ResetSpeed() {
	g.moveSpeed = g.baseSpeed
	g.moveSpeedMultiplier = DefaultMoveSpeedMultiplier
}

// LowerSpeed subtracts one from the multiplier and reapplies the speed.
func (g *LevelGenerator) LowerSpeed() {
	g.moveSpeedMultiplier -= 1
	g.UpdateSpeed()
}

// SetSpeedMultiplier replaces the multiplier used by the next UpdateSpeed.
func (g *LevelGenerator) SetSpeedMultiplier(m float64) {
	g.moveSpeedMultiplier = m
}

// MoveSpeed returns the current move speed.
func (g *LevelGenerator) MoveSpeed() float64 {
	return g.moveSpeed
}

// SpeedMultiplier returns the current multiplier.
func (g *LevelGenerator) SpeedMultiplier() float64 {
	return g.moveSpeedMultiplier
}

// ActiveSegment returns the last spawned segment, or 0.
func (g *LevelGenerator) ActiveSegment() ObjectID {
	if !g.world.Alive(g.lastSpawned) {
		return 0
	}
	return g.lastSpawned
}

// Clear destroys every segment this generator spawned and forgets the active one.
func (g *LevelGenerator) Clear() {
	for _, id := range g.segments {
		g.world.Destroy(id)
	}
	g.segments = g.segments[:0]
	g.lastSpawned = 0
	g.landmarkObject = 0
}

// LiveSegments returns how many spawned segments still exist.
func (g *LevelGenerator) LiveSegments() int {
	live := g.segments[:0]
	for _, id := range g.segments {
		if g.world.Alive(id) {
			live = append(live, id)
		}
	}
	g.segments = live
	return len(live)
}
