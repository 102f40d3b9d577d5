package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// PlayerOptions configures a Player.
type PlayerOptions struct {
	Spawn       core.Vec2
	TopBound    float64
	BottomBound float64
	Offset      float64 // Distance kept from each bound
	AxisSpeed   float64 // Lanes per second under keyboard control
	Size        core.Vec2
	Logger      *log.Logger
}

// Player is the avatar. It only moves across lanes; the track moves past it.
type Player struct {
	opts PlayerOptions
	log  *log.Logger
	pos  core.Vec2

	notifier StateNotifier
	sub      Subscription
	active   bool

	playing        bool
	shouldTrace    bool
	controlEnabled bool
}

// NewPlayer creates an inactive player at its spawn position.
func NewPlayer(opts PlayerOptions) *Player {
	if opts.Size == (core.Vec2{}) {
		opts.Size = core.V2(1, 1)
	}
	return &Player{
		opts:        opts,
		log:         orDiscard(opts.Logger),
		pos:         opts.Spawn,
		shouldTrace: true,
	}
}

// Attach sets the notifier the player subscribes to while active.
func (p *Player) Attach(n StateNotifier) {
	p.notifier = n
}

// SetActive activates or deactivates the player. Active players observe
// state changes; inactive ones do not.
func (p *Player) SetActive(active bool) {
	if active == p.active {
		return
	}
	p.active = active
	if p.notifier == nil {
		return
	}
	if active {
		p.sub = p.notifier.Subscribe(p.onStateChanged)
	} else {
		p.notifier.Unsubscribe(p.sub)
		p.sub = 0
	}
}

// Active reports whether the player is active.
func (p *Player) Active() bool {
	return p.active
}

func (p *Player) onStateChanged(s GameState) {
	p.controlEnabled = s == StateInGame
}

// SetPlaying enables or disables position updates.
func (p *Player) SetPlaying(playing bool) {
	p.playing = playing
}

// Playing reports whether position updates are enabled.
func (p *Player) Playing() bool {
	return p.playing
}

// ControlEnabled reports whether the last observed state allows control.
func (p *Player) ControlEnabled() bool {
	return p.controlEnabled
}

// ToggleTrace flips whether the player follows input at all.
func (p *Player) ToggleTrace() {
	p.shouldTrace = !p.shouldTrace
}

// ShouldTrace reports whether the player follows input.
func (p *Player) ShouldTrace() bool {
	return p.shouldTrace
}

// ResetPosition moves the player back to its spawn position.
func (p *Player) ResetPosition() {
	p.pos = p.opts.Spawn
}

// Position returns the player position in world space.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.pos, p.opts.Size)
}

// Update moves the player across lanes following in. The keyboard axis wins
// over the pointer.
func (p *Player) Update(in core.InputFrame, dt float64) {
	if !p.active || !p.playing || !p.shouldTrace || !p.controlEnabled {
		return
	}
	switch {
	case in.Axis != 0:
		p.pos.Y += in.Movement(p.pos.Y, dt).Y * p.opts.AxisSpeed * dt
	case in.HasPointer:
		p.pos.Y = in.Pointer.Y
	}
	p.pos.Y = p.clampY(p.pos.Y)
}

func (p *Player) clampY(y float64) float64 {
	return core.ClampF(y, p.opts.BottomBound+p.opts.Offset, p.opts.TopBound-p.opts.Offset)
}
