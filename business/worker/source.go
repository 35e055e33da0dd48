package worker

import (
	"context"
	"fmt"

	"github.com/superfeelapi/goEngageMeter/business/engage"
)

type expressClassifier interface {
	Classify(ctx context.Context) (map[string]float64, bool, error)
}

// ExpressSource adapts the expressai client to the ScoreSource contract,
// mapping the wire category names onto the fixed category set.
type ExpressSource struct {
	Client expressClassifier
}

func NewExpressSource(client expressClassifier) ExpressSource {
	return ExpressSource{Client: client}
}

func (s ExpressSource) Classify(ctx context.Context) (engage.ScoreVector, bool, error) {
	raw, detected, err := s.Client.Classify(ctx)
	if err != nil || !detected {
		return nil, false, err
	}

	scores := make(engage.ScoreVector, len(raw))
	for name, v := range raw {
		c, ok := engage.ParseCategory(name)
		if !ok {
			return nil, false, fmt.Errorf("unknown category[%s] in classifier reply", name)
		}
		scores[c] = v
	}

	return scores, true, nil
}
