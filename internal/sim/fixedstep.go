package sim

import "time"

// FixedStep gates work to a steady wall-clock rate, e.g. progress publishing
// from a tight walk loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller firing tps times per
// second. The first call to ShouldStep fires immediately.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	step := time.Second / time.Duration(tps)
	return &FixedStep{step: step, accumulator: step}
}

// ShouldStep reports whether enough wall-clock time has passed since the
// last firing.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
