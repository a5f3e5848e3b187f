package core

import "time"

// StepTimer is a poll-based rate limiter. It never sleeps; callers ask it on
// every frame whether enough time has passed since the last accepted step.
type StepTimer struct {
	interval time.Duration
	last     time.Time
}

// IntervalFor converts an updates-per-second rate into a step interval,
// truncated to whole milliseconds (24 ups -> 41ms). Rates above 1000 yield a
// zero interval, i.e. a step on every poll.
func IntervalFor(ups int) time.Duration {
	if ups <= 0 {
		return 0
	}
	return time.Duration(1000/ups) * time.Millisecond
}

// NewStepTimer constructs a StepTimer for the given rate, starting at now.
func NewStepTimer(ups int, now time.Time) *StepTimer {
	return &StepTimer{interval: IntervalFor(ups), last: now}
}

// Interval returns the minimum spacing between accepted steps.
func (t *StepTimer) Interval() time.Duration { return t.interval }

// Last returns the time of the last accepted step.
func (t *StepTimer) Last() time.Time { return t.last }

// Due reports whether a step is allowed at now without recording it.
func (t *StepTimer) Due(now time.Time) bool {
	return now.Sub(t.last) >= t.interval
}

// Mark records now as the time of the last step.
func (t *StepTimer) Mark(now time.Time) { t.last = now }
