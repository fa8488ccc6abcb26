package round

// expiryEpsilon absorbs rounding in accumulated dt so N ticks of Duration/N expire on tick N.
const expiryEpsilon = 1e-9

// Timer accumulates elapsed seconds against a fixed duration.
type Timer struct {
	Duration float64
	Elapsed  float64
}

// NewTimer returns a timer that expires after the given number of seconds.
func NewTimer(seconds float64) Timer {
	return Timer{Duration: seconds}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
}

// Expired reports whether the full duration has elapsed.
func (t Timer) Expired() bool {
	return t.Elapsed >= t.Duration-expiryEpsilon
}

// Remaining returns the seconds left, never negative.
func (t Timer) Remaining() float64 {
	if r := t.Duration - t.Elapsed; r > expiryEpsilon {
		return r
	}
	return 0
}
