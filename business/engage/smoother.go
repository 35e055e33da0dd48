package engage

// Smoother keeps one exponentially smoothed percentage per non-neutral
// category. Raw per-tick classifier output is noisy frame to frame; a small
// alpha trades responsiveness for a state label that does not flicker.
type Smoother struct {
	alpha  float64
	values map[Category]float64
}

func NewSmoother(alpha float64) *Smoother {
	return &Smoother{
		alpha:  alpha,
		values: make(map[Category]float64, len(NonNeutral)),
	}
}

// Update moves every smoothed value toward the new reading by alpha.
// Categories absent from the reading keep their prior value; an empty
// reading leaves the whole state untouched.
func (s *Smoother) Update(reading map[Category]float64) {
	if len(reading) == 0 {
		return
	}

	for c, v := range reading {
		s.values[c] += s.alpha * (v - s.values[c])
	}
}

// Values returns a copy of the smoothed state. The copy is empty until the
// first non-empty reading arrives.
func (s *Smoother) Values() map[Category]float64 {
	values := make(map[Category]float64, len(s.values))
	for c, v := range s.values {
		values[c] = v
	}
	return values
}

func (s *Smoother) Reset() {
	s.values = make(map[Category]float64, len(NonNeutral))
}
