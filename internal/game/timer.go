package game

// Timer is a single countdown used for timed choices and QTE-style
// prompts. It is frame-driven: the owner calls Tick with the frame delta
// and reads the expiry edge from the return value. Expiry fires exactly
// once per Start, on the tick that crosses zero.
type Timer struct {
	duration  float64
	remaining float64
	running   bool
}

// NewTimer creates a stopped timer with the given total duration in
// seconds.
func NewTimer(duration float64) *Timer {
	return &Timer{duration: duration, remaining: duration}
}

// Start resets the countdown to the full duration and begins running.
// Restarting an already-running timer starts over from full.
func (t *Timer) Start() {
	t.remaining = t.duration
	t.running = true
}

// timerEpsilon absorbs float accumulation residue so that tick deltas
// summing exactly to the duration still cross zero.
const timerEpsilon = 1e-9

// Tick decrements the countdown by dt and reports true on the tick that
// crosses zero. A stopped or already-expired timer never reports expiry.
func (t *Timer) Tick(dt float64) bool {
	if !t.running {
		return false
	}
	t.remaining -= dt
	if t.remaining <= timerEpsilon {
		t.remaining = 0
		t.running = false
		return true
	}
	return false
}

// Reset returns the timer to full duration without starting it and
// without firing expiry.
func (t *Timer) Reset() {
	t.remaining = t.duration
	t.running = false
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time left, clamped at zero.
func (t *Timer) Remaining() float64 {
	if t.remaining < 0 {
		return 0
	}
	return t.remaining
}
