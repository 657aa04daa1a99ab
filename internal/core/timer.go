package core

import "time"

const (
	// DefaultStepInterval is the step interval a fresh Pacer starts with and
	// the one ResetInterval restores unless another base was configured.
	DefaultStepInterval = 50 * time.Millisecond
	// StepAdjust is the amount each speed change moves the interval by.
	StepAdjust = 5 * time.Millisecond
)

// Pacer throttles simulation steps to at most one per step interval. It holds
// no clock of its own: callers pass the current time, so the throttle can be
// driven by a fake clock.
type Pacer struct {
	base     time.Duration
	interval time.Duration
	last     time.Time
}

// NewPacer constructs a Pacer whose last step is now. A non-positive base
// falls back to DefaultStepInterval.
func NewPacer(base time.Duration, now time.Time) *Pacer {
	if base <= 0 {
		base = DefaultStepInterval
	}
	return &Pacer{base: base, interval: base, last: now}
}

// Interval returns the current step interval.
func (p *Pacer) Interval() time.Duration { return p.interval }

// ShouldStep reports whether at least one interval has elapsed since the last
// recorded step.
func (p *Pacer) ShouldStep(now time.Time) bool {
	return now.Sub(p.last) >= p.interval
}

// RecordStep marks now as the time of the latest step.
func (p *Pacer) RecordStep(now time.Time) { p.last = now }

// Slower lengthens the interval by StepAdjust.
func (p *Pacer) Slower() {
	p.interval += StepAdjust
}

// Faster shortens the interval by StepAdjust. The change is rejected, and
// false returned, when the interval would not stay above zero.
func (p *Pacer) Faster() bool {
	if StepAdjust >= p.interval {
		return false
	}
	p.interval -= StepAdjust
	return true
}

// ResetInterval restores the base interval.
func (p *Pacer) ResetInterval() { p.interval = p.base }
