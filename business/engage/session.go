package engage

import (
	"fmt"
	"time"
)

// Session accumulates per-category tick counts and dwell time, keyed by the
// per-tick dominant category.
type Session struct {
	counts map[Category]int
	dwell  map[Category]time.Duration
}

func NewSession() *Session {
	return &Session{
		counts: make(map[Category]int, len(Categories)),
		dwell:  make(map[Category]time.Duration, len(Categories)),
	}
}

// Record adds one tick and its elapsed wall-clock time to the dominant
// category's totals. Negative elapsed time counts as zero.
func (s *Session) Record(dominant Category, elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	s.counts[dominant]++
	s.dwell[dominant] += elapsed
}

// Dominant returns the category with the largest tick count. Ties keep the
// earliest category in declaration order; ok is false before any tick.
func (s *Session) Dominant() (Category, bool) {
	var (
		dominant Category
		best     int
	)

	for _, c := range Categories {
		if s.counts[c] > best {
			dominant = c
			best = s.counts[c]
		}
	}

	if best == 0 {
		return "", false
	}
	return dominant, true
}

func (s *Session) Count(c Category) int {
	return s.counts[c]
}

func (s *Session) Dwell(c Category) time.Duration {
	return s.dwell[c]
}

func (s *Session) Reset() {
	s.counts = make(map[Category]int, len(Categories))
	s.dwell = make(map[Category]time.Duration, len(Categories))
}

// FormatDwell renders a dwell duration as m:ss for display.
func FormatDwell(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
