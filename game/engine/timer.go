package engine

// Timer is a countdown advanced by elapsed-seconds ticks. The core never
// blocks on wall-clock timers; every duration in the game (lock delay,
// line-clear flash, level-up popup) is one of these, advanced once per tick
// and testable without any clock.
type Timer struct {
	remaining float64
	running   bool
}

// Start arms the timer with the given duration in seconds
func (t *Timer) Start(d float64) {
	t.remaining = d
	t.running = true
}

// Stop disarms the timer and zeroes the remainder
func (t *Timer) Stop() {
	t.remaining = 0
	t.running = false
}

// Active reports whether the timer is armed
func (t *Timer) Active() bool {
	return t.running
}

// Remaining returns the seconds left, 0 when stopped
func (t *Timer) Remaining() float64 {
	return t.remaining
}

// Tick advances an armed timer by dt seconds and reports expiry. An expired
// timer disarms itself; ticking a stopped timer is a no-op.
func (t *Timer) Tick(dt float64) bool {
	if !t.running {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		return true
	}
	return false
}
