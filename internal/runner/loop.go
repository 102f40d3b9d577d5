package runner

import (
	"context"
	"time"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// ContactDetector finds new contacts after objects have moved.
type ContactDetector interface {
	Detect(q *ContactQueue)
}

// InputSource produces the input for the next tick.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll calls f.
func (f InputFunc) Poll() core.InputFrame { return f() }

// Loop runs one tick of every component in a fixed order:
// contacts, state machine, player, world, level generator, detection.
// Contacts found during a tick are resolved at the start of the next one.
type Loop struct {
	Machine  *StateMachine
	Level    *LevelGenerator
	Player   *Player
	World    *World
	Resolver *CollisionResolver
	Contacts *ContactQueue
	Gate     *TimeGate
	Detector ContactDetector

	ticks uint64
}

// Step advances the simulation by dt seconds of real time.
func (l *Loop) Step(dt float64, in core.InputFrame) {
	l.ticks++
	l.Resolver.ResolveAll(l.Contacts)
	l.Machine.Update(dt, in)

	// Read again: the machine may have frozen or unfrozen time.
	gdt := l.Gate.Apply(dt)
	l.Player.Update(in, gdt)
	l.World.Update(gdt)
	l.Level.Update()

	if l.Detector != nil && gdt > 0 {
		l.Detector.Detect(l.Contacts)
	}
}

// Ticks returns how many steps have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run steps the loop at the given interval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration, src InputSource) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			l.Step(dt, src.Poll())
		}
	}
}
