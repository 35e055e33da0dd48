package engage

import (
	"fmt"
	"math"
)

// StateUndetermined is the engagement label held before any reading has
// classified successfully.
const StateUndetermined = "undetermined"

// Profile is a named target percentage per non-neutral category. Targets
// are independent references, not a distribution; they need not sum to 100,
// and a profile may specify only some categories.
type Profile struct {
	Name    string
	Targets map[Category]float64
}

// NewProfile builds a profile from raw configuration, rejecting unknown
// category names and targets on the neutral category.
func NewProfile(name string, targets map[string]float64) (Profile, error) {
	if name == "" {
		return Profile{}, fmt.Errorf("profile without a name")
	}

	p := Profile{
		Name:    name,
		Targets: make(map[Category]float64, len(targets)),
	}

	for raw, v := range targets {
		c, ok := ParseCategory(raw)
		if !ok {
			return Profile{}, fmt.Errorf("profile[%s]: unknown category[%s]", name, raw)
		}
		if c == Neutral {
			return Profile{}, fmt.Errorf("profile[%s]: neutral is excluded from classification", name)
		}
		p.Targets[c] = v
	}

	return p, nil
}

// DefaultProfiles is the built-in reference table, used when the room
// configuration carries none.
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "Highly Engaged", Targets: map[Category]float64{Angry: 0, Disgusted: 0, Fearful: 0, Happy: 70, Sad: 0, Surprised: 20}},
		{Name: "Attentive", Targets: map[Category]float64{Angry: 5, Disgusted: 0, Fearful: 5, Happy: 30, Sad: 10, Surprised: 10}},
		{Name: "Disengaged", Targets: map[Category]float64{Angry: 5, Disgusted: 5, Fearful: 10, Happy: 5, Sad: 45, Surprised: 0}},
		{Name: "Actively Resistant", Targets: map[Category]float64{Angry: 40, Disgusted: 15, Fearful: 0, Happy: 5, Sad: 10, Surprised: 0}},
		{Name: "Distressed", Targets: map[Category]float64{Angry: 5, Disgusted: 0, Fearful: 45, Happy: 0, Sad: 25, Surprised: 15}},
	}
}

// Classifier matches a smoothed percentage vector against a fixed profile
// table. The held state only changes when a profile scores strictly better
// than the profile backing the current state, so equally scoring profiles
// never make the label flicker.
type Classifier struct {
	profiles []Profile
	state    string
}

func NewClassifier(profiles []Profile) *Classifier {
	return &Classifier{
		profiles: profiles,
		state:    StateUndetermined,
	}
}

// Classify updates the held state from the smoothed vector and returns it.
// An empty vector or an empty profile table leaves the state unchanged.
func (c *Classifier) Classify(smoothed map[Category]float64) string {
	if len(smoothed) == 0 || len(c.profiles) == 0 {
		return c.state
	}

	best := math.Inf(1)
	for _, p := range c.profiles {
		if p.Name != c.state {
			continue
		}
		if score, ok := Distance(p, smoothed); ok {
			best = score
		}
	}

	for _, p := range c.profiles {
		score, ok := Distance(p, smoothed)
		if !ok {
			continue
		}
		if score < best {
			best = score
			c.state = p.Name
		}
	}

	return c.state
}

// State returns the current engagement label.
func (c *Classifier) State() string {
	return c.state
}

func (c *Classifier) Reset() {
	c.state = StateUndetermined
}

// Distance is the mean absolute difference between the profile's targets
// and the smoothed values, over the categories the profile specifies.
// ok is false for a profile with no targets; such profiles are never chosen.
func Distance(p Profile, smoothed map[Category]float64) (float64, bool) {
	if len(p.Targets) == 0 {
		return 0, false
	}

	var sum float64
	for c, target := range p.Targets {
		sum += math.Abs(target - smoothed[c])
	}

	return sum / float64(len(p.Targets)), true
}
