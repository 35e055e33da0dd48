package engage

import "time"

// Sampler tracks the wall-clock baseline used to attribute dwell time. The
// baseline is the time of the previous successful tick; failed ticks,
// missed detections and pauses move it forward so idle gaps never count as
// dwell for any category.
type Sampler struct {
	last time.Time
}

// Success returns the elapsed time since the previous successful tick,
// clamped to zero, and advances the baseline to now. The very first success
// reports zero elapsed.
func (s *Sampler) Success(now time.Time) time.Duration {
	var elapsed time.Duration
	if !s.last.IsZero() {
		elapsed = now.Sub(s.last)
		if elapsed < 0 {
			elapsed = 0
		}
	}

	s.last = now
	return elapsed
}

// Rebase moves the baseline to now without reporting elapsed time.
func (s *Sampler) Rebase(now time.Time) {
	s.last = now
}
