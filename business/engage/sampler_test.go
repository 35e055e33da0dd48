package engage_test

import (
	"testing"
	"time"

	"github.com/superfeelapi/goEngageMeter/business/engage"
)

func TestSampler(t *testing.T) {
	base := time.Date(2023, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("first success reports zero", func(t *testing.T) {
		t.Parallel()
		var s engage.Sampler
		if got := s.Success(base); got != 0 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("elapsed measured from previous success", func(t *testing.T) {
		t.Parallel()
		var s engage.Sampler
		s.Success(base)
		if got := s.Success(base.Add(300 * time.Millisecond)); got != 300*time.Millisecond {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("rebase swallows the gap", func(t *testing.T) {
		t.Parallel()
		var s engage.Sampler
		s.Success(base)
		s.Rebase(base.Add(10 * time.Second))
		if got := s.Success(base.Add(10*time.Second + 300*time.Millisecond)); got != 300*time.Millisecond {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("clock going backwards clamps to zero", func(t *testing.T) {
		t.Parallel()
		var s engage.Sampler
		s.Success(base)
		if got := s.Success(base.Add(-time.Second)); got != 0 {
			t.Fatalf("got %v", got)
		}
	})
}
