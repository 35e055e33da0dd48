package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/superfeelapi/goEngageMeter/business/engage"
	"github.com/superfeelapi/goEngageMeter/business/worker"
)

type stubClassifier struct {
	scores   map[string]float64
	detected bool
	err      error
}

func (s stubClassifier) Classify(ctx context.Context) (map[string]float64, bool, error) {
	return s.scores, s.detected, s.err
}

func TestExpressSource(t *testing.T) {
	t.Run("maps wire names onto categories", func(t *testing.T) {
		t.Parallel()
		source := worker.NewExpressSource(stubClassifier{
			scores:   map[string]float64{"angry": 0.7, "happy": 0.1, "neutral": 0.1, "surprised": 0.1},
			detected: true,
		})

		scores, detected, err := source.Classify(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if !detected {
			t.Fatal("expected detection")
		}
		if scores[engage.Angry] != 0.7 || scores[engage.Surprised] != 0.1 {
			t.Fatalf("got %v", scores)
		}
	})

	t.Run("no detection passes through", func(t *testing.T) {
		t.Parallel()
		source := worker.NewExpressSource(stubClassifier{detected: false})

		_, detected, err := source.Classify(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if detected {
			t.Fatal("unexpected detection")
		}
	})

	t.Run("unknown category is an error", func(t *testing.T) {
		t.Parallel()
		source := worker.NewExpressSource(stubClassifier{
			scores:   map[string]float64{"bored": 1},
			detected: true,
		})

		if _, _, err := source.Classify(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("transient error passes through", func(t *testing.T) {
		t.Parallel()
		source := worker.NewExpressSource(stubClassifier{err: errors.New("boom")})

		if _, _, err := source.Classify(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}
