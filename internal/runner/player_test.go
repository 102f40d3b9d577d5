package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/lanerunner/internal/core"
)

type stubNotifier struct {
	subs map[Subscription]func(GameState)
	next Subscription
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{subs: make(map[Subscription]func(GameState))}
}

func (n *stubNotifier) Subscribe(fn func(GameState)) Subscription {
	n.next++
	n.subs[n.next] = fn
	return n.next
}

func (n *stubNotifier) Unsubscribe(sub Subscription) {
	delete(n.subs, sub)
}

func (n *stubNotifier) publish(s GameState) {
	for _, fn := range n.subs {
		fn(s)
	}
}

func newControlledPlayer() (*Player, *stubNotifier) {
	p := NewPlayer(PlayerOptions{
		Spawn:       core.V2(3, 0),
		TopBound:    4,
		BottomBound: -4,
		Offset:      0.6,
		AxisSpeed:   8,
	})
	n := newStubNotifier()
	p.Attach(n)
	p.SetActive(true)
	p.SetPlaying(true)
	n.publish(StateInGame)
	return p, n
}

func TestPlayerSubscribesWhileActive(t *testing.T) {
	p, n := newControlledPlayer()
	assert.Len(t, n.subs, 1)
	assert.True(t, p.ControlEnabled())

	n.publish(StatePause)
	assert.False(t, p.ControlEnabled())

	p.SetActive(false)
	assert.Empty(t, n.subs)
	n.publish(StateInGame)
	assert.False(t, p.ControlEnabled())

	p.SetActive(true)
	p.SetActive(true)
	assert.Len(t, n.subs, 1)
}

func TestPlayerFollowsPointer(t *testing.T) {
	p, _ := newControlledPlayer()
	in := core.NewInputFrame()
	in.SetPointer(core.V2(0, 2))

	p.Update(in, 0.1)
	assert.Equal(t, core.V2(3, 2), p.Position())
}

func TestPlayerClampedToBounds(t *testing.T) {
	tests := []struct {
		name    string
		pointer float64
		want    float64
	}{
		{"inside", 1.5, 1.5},
		{"above top", 10, 3.4},
		{"below bottom", -10, -3.4},
		{"on limit", 3.4, 3.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newControlledPlayer()
			in := core.NewInputFrame()
			in.SetPointer(core.V2(0, tt.pointer))
			p.Update(in, 0.1)
			assert.InDelta(t, tt.want, p.Position().Y, 1e-9)
		})
	}
}

func TestPlayerAxisBeatsPointer(t *testing.T) {
	p, _ := newControlledPlayer()
	in := core.NewInputFrame()
	in.SetPointer(core.V2(0, -3))
	in.Axis = 1

	p.Update(in, 0.25)
	assert.InDelta(t, 2, p.Position().Y, 1e-9)
}

func TestPlayerIgnoresInputUnlessAllowed(t *testing.T) {
	in := core.NewInputFrame()
	in.SetPointer(core.V2(0, 2))

	tests := []struct {
		name  string
		setup func(p *Player, n *stubNotifier)
	}{
		{"not playing", func(p *Player, _ *stubNotifier) { p.SetPlaying(false) }},
		{"trace off", func(p *Player, _ *stubNotifier) { p.ToggleTrace() }},
		{"control off", func(_ *Player, n *stubNotifier) { n.publish(StateGameOver) }},
		{"inactive", func(p *Player, _ *stubNotifier) { p.SetActive(false) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, n := newControlledPlayer()
			tt.setup(p, n)
			p.Update(in, 0.1)
			assert.Equal(t, core.V2(3, 0), p.Position())
		})
	}
}

func TestPlayerResetPosition(t *testing.T) {
	p, _ := newControlledPlayer()
	in := core.NewInputFrame()
	in.SetPointer(core.V2(0, -2))
	p.Update(in, 0.1)

	p.ResetPosition()
	assert.Equal(t, core.V2(3, 0), p.Position())
}
