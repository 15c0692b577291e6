package core

import "time"

// FixedStep helps run simulation updates at a steady cadence.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	clock       Clock
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStepInterval(time.Second / time.Duration(tps))
}

// NewFixedStepInterval constructs a FixedStep that fires once per interval.
// The first call to ShouldStep fires immediately.
func NewFixedStepInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{clock: SystemClock{}}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// WithClock swaps the time source, mainly for tests.
func (f *FixedStep) WithClock(c Clock) *FixedStep {
	if c != nil {
		f.clock = c
		f.last = time.Time{}
	}
	return f
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.SetInterval(time.Second / time.Duration(tps))
}

// SetInterval changes the step length; non-positive values fall back to 60 TPS.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// Interval reports the current step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// Long stalls release at most one tick per call; the backlog is capped at
// one step so a paused host does not burst-tick on resume.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator > 2*f.step {
		f.accumulator = 2 * f.step
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
