package engage

// ScoreVector maps categories to the classifier's confidence for one frame.
// Values are in [0,1] and sum to roughly 1 across all seven categories.
// A vector is never mutated after creation.
type ScoreVector map[Category]float64

// Dominant returns the category with the highest raw score. Ties keep the
// earliest category in declaration order. ok is false for an empty vector.
func Dominant(scores ScoreVector) (Category, bool) {
	var (
		dominant Category
		best     float64
		found    bool
	)

	for _, c := range Categories {
		v, ok := scores[c]
		if !ok {
			continue
		}
		if !found || v > best {
			dominant = c
			best = v
			found = true
		}
	}

	return dominant, found
}

// Normalize converts a raw score vector into percentage shares over the
// non-neutral categories only. It returns nil when every non-neutral score
// is zero; callers must treat nil as "no usable proportions" rather than a
// valid reading.
func Normalize(scores ScoreVector) map[Category]float64 {
	var total float64
	for _, c := range NonNeutral {
		total += scores[c]
	}

	if total == 0 {
		return nil
	}

	shares := make(map[Category]float64, len(NonNeutral))
	for _, c := range NonNeutral {
		shares[c] = 100 * scores[c] / total
	}

	return shares
}
