package engage

import (
	"sync"
	"time"
)

// OverallNone is reported as the overall dominant category before any tick.
const OverallNone = "none"

// Config carries the tunables for one pipeline instance.
type Config struct {
	Alpha    float64
	Window   time.Duration
	Profiles []Profile
}

// Totals is the per-category tally exposed in snapshots.
type Totals struct {
	Count   int     `json:"count"`
	DwellMs float64 `json:"dwell_ms"`
}

// Snapshot is a point-in-time copy of every derived view. Readers must not
// assume it still reflects the pipeline after return.
type Snapshot struct {
	At              time.Time            `json:"at"`
	Dominant        Category             `json:"dominant,omitempty"`
	DominantScore   float64              `json:"dominant_score"`
	OverallDominant string               `json:"overall_dominant"`
	OverallDwell    string               `json:"overall_dwell"`
	Totals          map[Category]Totals  `json:"totals"`
	Smoothed        map[Category]float64 `json:"smoothed"`
	State           string               `json:"state"`
	History         []HistoryPoint       `json:"history"`
}

// Pipeline owns every piece of derived state and advances all of it
// together, one ProcessTick per sample. The sampling sequence is the only
// writer; readers on other goroutines get point-in-time copies.
type Pipeline struct {
	mu sync.RWMutex

	smoother   *Smoother
	classifier *Classifier
	history    *History
	session    *Session

	latestAt       time.Time
	latestDominant Category
	latestScore    float64
	ticked         bool
}

func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{
		smoother:   NewSmoother(cfg.Alpha),
		classifier: NewClassifier(cfg.Profiles),
		history:    NewHistory(cfg.Window),
		session:    NewSession(),
	}
}

// ProcessTick folds one successful reading into every derived view and
// returns the resulting snapshot. A degenerate reading (all non-neutral
// scores zero) still counts toward session totals and history, but leaves
// the smoothed state and the engagement label untouched.
func (p *Pipeline) ProcessTick(now time.Time, scores ScoreVector, elapsed time.Duration) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if dominant, ok := Dominant(scores); ok {
		p.session.Record(dominant, elapsed)
		p.latestAt = now
		p.latestDominant = dominant
		p.latestScore = scores[dominant]
		p.ticked = true
	}

	p.smoother.Update(Normalize(scores))
	p.classifier.Classify(p.smoother.Values())
	p.history.Append(now, scores)

	return p.snapshot()
}

// Snapshot returns the current state of every derived view.
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.snapshot()
}

// State returns the current engagement label.
func (p *Pipeline) State() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.classifier.State()
}

// Latest returns the dominant category and raw score of the latest tick.
// ok is false before the first successful tick.
func (p *Pipeline) Latest() (Category, float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.latestDominant, p.latestScore, p.ticked
}

// OverallDominant returns the category with the most ticks this session.
func (p *Pipeline) OverallDominant() (Category, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.session.Dominant()
}

// Dwell returns the accumulated dwell time of one category.
func (p *Pipeline) Dwell(c Category) time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.session.Dwell(c)
}

// Reset clears every derived view and returns the engagement label to
// undetermined.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session.Reset()
	p.smoother.Reset()
	p.classifier.Reset()
	p.history.Reset()

	p.latestAt = time.Time{}
	p.latestDominant = ""
	p.latestScore = 0
	p.ticked = false
}

func (p *Pipeline) snapshot() Snapshot {
	totals := make(map[Category]Totals, len(Categories))
	for _, c := range Categories {
		totals[c] = Totals{
			Count:   p.session.Count(c),
			DwellMs: float64(p.session.Dwell(c)) / float64(time.Millisecond),
		}
	}

	overall := OverallNone
	dwell := FormatDwell(0)
	if c, ok := p.session.Dominant(); ok {
		overall = string(c)
		dwell = FormatDwell(p.session.Dwell(c))
	}

	return Snapshot{
		At:              p.latestAt,
		Dominant:        p.latestDominant,
		DominantScore:   p.latestScore,
		OverallDominant: overall,
		OverallDwell:    dwell,
		Totals:          totals,
		Smoothed:        p.smoother.Values(),
		State:           p.classifier.State(),
		History:         p.history.Snapshot(),
	}
}
