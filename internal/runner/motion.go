package runner

import "github.com/vovakirdan/lanerunner/internal/core"

// Motion moves a spawned segment at a constant velocity.
type Motion struct {
	dir   core.Vec2
	speed float64
}

// NewMotion creates a motion along dir at the given speed.
func NewMotion(dir core.Vec2, speed float64) *Motion {
	return &Motion{dir: dir.Normalized(), speed: speed}
}

// SetMovement replaces direction and speed.
func (m *Motion) SetMovement(dir core.Vec2, speed float64) {
	m.dir = dir.Normalized()
	m.speed = speed
}

// Speed returns the current speed.
func (m *Motion) Speed() float64 {
	return m.speed
}

// Velocity returns direction times speed.
func (m *Motion) Velocity() core.Vec2 {
	return m.dir.Scale(m.speed)
}

// Step returns the displacement over dt seconds.
func (m *Motion) Step(dt float64) core.Vec2 {
	return m.Velocity().Scale(dt)
}
