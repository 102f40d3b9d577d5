package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// ContactKind distinguishes physical collisions from trigger overlaps.
type ContactKind int

const (
	ContactSolid ContactKind = iota
	ContactTrigger
)

// ContactEvent is one contact between the player and an object, reported by the host.
type ContactEvent struct {
	Kind     ContactKind
	Tag      Tag
	Object   ObjectID
	Position core.Vec2 // World position of the object at contact time
}

// ContactQueue buffers contact events until the next tick boundary.
type ContactQueue struct {
	events []ContactEvent
}

// Push appends an event.
func (q *ContactQueue) Push(ev ContactEvent) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events and empties the queue.
func (q *ContactQueue) Drain() []ContactEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *ContactQueue) Len() int {
	return len(q.events)
}

// Effect is what a contact resolved to.
type Effect int

const (
	EffectNone Effect = iota
	EffectGameOver
	EffectCoin
	EffectScoreMultiplier
	EffectSpeed
	EffectPush
)

func (e Effect) String() string {
	switch e {
	case EffectGameOver:
		return "game-over"
	case EffectCoin:
		return "coin"
	case EffectScoreMultiplier:
		return "score-multiplier"
	case EffectSpeed:
		return "speed"
	case EffectPush:
		return "push"
	default:
		return "none"
	}
}

// FailHandler is the part of the state machine the resolver may call.
type FailHandler interface {
	GameOver()
	UpdateCurrentScore()
}

// SpeedController raises the track speed.
type SpeedController interface {
	UpdateSpeed()
}

// Scorer mutates the run's score.
type Scorer interface {
	AddScore(n int)
	AddMultiplier(step float64)
}

// Bodies removes and pushes contacted objects.
type Bodies interface {
	Destroy(id ObjectID) bool
	ApplyImpulse(id ObjectID, impulse core.Vec2) bool
}

// Positioner reports where the player is.
type Positioner interface {
	Position() core.Vec2
}

// ResolverOptions configures a CollisionResolver.
type ResolverOptions struct {
	Game       FailHandler
	Speed      SpeedController
	Score      Scorer
	Bodies     Bodies
	Player     Positioner
	CoinPoints int
	MultStep   float64
	PushForce  float64
	Logger     *log.Logger
}

// CollisionResolver applies exactly one effect per contact.
type CollisionResolver struct {
	opts ResolverOptions
	log  *log.Logger
}

// NewCollisionResolver creates a resolver.
func NewCollisionResolver(opts ResolverOptions) *CollisionResolver {
	return &CollisionResolver{opts: opts, log: orDiscard(opts.Logger)}
}

// Resolve classifies ev and applies its effect.
func (r *CollisionResolver) Resolve(ev ContactEvent) Effect {
	switch ev.Tag {
	case TagObstacle, TagSpawnObstacle:
		r.log.Debug("obstacle hit", "id", ev.Object, "tag", ev.Tag)
		r.opts.Game.GameOver()
		return EffectGameOver
	case TagCoin:
		r.opts.Score.AddScore(r.opts.CoinPoints)
		r.opts.Game.UpdateCurrentScore()
		r.opts.Bodies.Destroy(ev.Object)
		r.log.Debug("coin collected", "id", ev.Object, "points", r.opts.CoinPoints)
		return EffectCoin
	case TagScoreMultiplier:
		r.opts.Score.AddMultiplier(r.opts.MultStep)
		r.opts.Bodies.Destroy(ev.Object)
		r.log.Debug("multiplier collected", "id", ev.Object, "step", r.opts.MultStep)
		return EffectScoreMultiplier
	case TagSpeed:
		r.opts.Speed.UpdateSpeed()
		r.opts.Bodies.Destroy(ev.Object)
		r.log.Debug("speed collected", "id", ev.Object)
		return EffectSpeed
	}

	if ev.Kind != ContactSolid {
		return EffectNone
	}
	dir := ev.Position.Sub(r.opts.Player.Position()).Normalized()
	r.opts.Bodies.ApplyImpulse(ev.Object, dir.Scale(r.opts.PushForce))
	return EffectPush
}

// ResolveAll drains q and resolves events in order. Events queued after one
// that ends the run are discarded.
func (r *CollisionResolver) ResolveAll(q *ContactQueue) []Effect {
	events := q.Drain()
	if len(events) == 0 {
		return nil
	}
	effects := make([]Effect, 0, len(events))
	for _, ev := range events {
		effect := r.Resolve(ev)
		effects = append(effects, effect)
		if effect == EffectGameOver {
			break
		}
	}
	return effects
}
