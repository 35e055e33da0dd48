package engage

import "time"

// HistoryPoint is one raw reading retained for the rolling chart. The
// neutral score is kept here even though classification ignores it.
type HistoryPoint struct {
	At     time.Time   `json:"at"`
	Scores ScoreVector `json:"scores"`
}

// History is an append-only, time-evicting buffer of raw readings ordered
// by timestamp.
type History struct {
	window time.Duration
	points []HistoryPoint
}

func NewHistory(window time.Duration) *History {
	return &History{window: window}
}

// Append records a reading, then drops every point older than now minus the
// window. Relative order of the surviving points is preserved.
func (h *History) Append(now time.Time, scores ScoreVector) {
	h.points = append(h.points, HistoryPoint{At: now, Scores: scores})

	cutoff := now.Add(-h.window)
	keep := 0
	for keep < len(h.points) && h.points[keep].At.Before(cutoff) {
		keep++
	}
	if keep > 0 {
		h.points = append(h.points[:0], h.points[keep:]...)
	}
}

// Snapshot returns a copy of the current points, oldest first. Later
// appends and evictions do not touch the returned slice.
func (h *History) Snapshot() []HistoryPoint {
	points := make([]HistoryPoint, len(h.points))
	copy(points, h.points)
	return points
}

func (h *History) Reset() {
	h.points = nil
}
