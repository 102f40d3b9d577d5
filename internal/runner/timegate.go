package runner

// TimeGate scales simulated time. Frozen means every gameplay delta is zero.
type TimeGate struct {
	frozen bool
}

// Freeze stops gameplay time.
func (g *TimeGate) Freeze() { g.frozen = true }

// Unfreeze resumes gameplay time.
func (g *TimeGate) Unfreeze() { g.frozen = false }

// Frozen reports whether gameplay time is stopped.
func (g *TimeGate) Frozen() bool { return g.frozen }

// Scale returns 0 while frozen and 1 otherwise.
func (g *TimeGate) Scale() float64 {
	if g.frozen {
		return 0
	}
	return 1
}

// Apply scales a real delta into a gameplay delta.
func (g *TimeGate) Apply(dt float64) float64 {
	return dt * g.Scale()
}
