package engage_test

import (
	"math"
	"testing"

	"github.com/superfeelapi/goEngageMeter/business/engage"
)

func TestSmoother(t *testing.T) {
	t.Run("empty reading is a no-op", func(t *testing.T) {
		t.Parallel()
		s := engage.NewSmoother(0.1)
		s.Update(map[engage.Category]float64{engage.Happy: 50})
		before := s.Values()

		s.Update(nil)
		s.Update(map[engage.Category]float64{})

		after := s.Values()
		for c, v := range before {
			if after[c] != v {
				t.Fatalf("category %v changed from %v to %v", c, v, after[c])
			}
		}
	})

	t.Run("absent categories persist", func(t *testing.T) {
		t.Parallel()
		s := engage.NewSmoother(0.5)
		s.Update(map[engage.Category]float64{engage.Happy: 80, engage.Sad: 20})
		s.Update(map[engage.Category]float64{engage.Happy: 80})

		if got := s.Values()[engage.Sad]; !almostEqual(got, 10) {
			t.Fatalf("sad: got %v, want 10", got)
		}
	})

	t.Run("converges geometrically", func(t *testing.T) {
		t.Parallel()
		const alpha = 0.1
		target := map[engage.Category]float64{
			engage.Angry: 100 * 0.7 / 0.9,
			engage.Happy: 100 * 0.1 / 0.9,
		}

		s := engage.NewSmoother(alpha)

		prevGap := target[engage.Angry]
		for n := 1; n <= 20; n++ {
			s.Update(target)

			want := target[engage.Angry] * math.Pow(1-alpha, float64(n))
			gap := target[engage.Angry] - s.Values()[engage.Angry]
			if math.Abs(gap-want) > 1e-9 {
				t.Fatalf("step %d: gap %v, want %v", n, gap, want)
			}
			if gap >= prevGap {
				t.Fatalf("step %d: gap %v did not shrink from %v", n, gap, prevGap)
			}
			prevGap = gap
		}
	})

	t.Run("first step from zero", func(t *testing.T) {
		t.Parallel()
		s := engage.NewSmoother(0.1)
		s.Update(map[engage.Category]float64{
			engage.Angry:     100 * 0.7 / 0.9,
			engage.Happy:     100 * 0.1 / 0.9,
			engage.Surprised: 100 * 0.1 / 0.9,
		})

		values := s.Values()
		if !almostEqual(values[engage.Angry], 10*0.7/0.9) {
			t.Fatalf("angry: got %v, want %v", values[engage.Angry], 10*0.7/0.9)
		}
		if !almostEqual(values[engage.Happy], 10*0.1/0.9) {
			t.Fatalf("happy: got %v, want %v", values[engage.Happy], 10*0.1/0.9)
		}
	})

	t.Run("reset clears state", func(t *testing.T) {
		t.Parallel()
		s := engage.NewSmoother(0.1)
		s.Update(map[engage.Category]float64{engage.Happy: 50})
		s.Reset()
		if len(s.Values()) != 0 {
			t.Fatalf("expected empty state after reset, got %v", s.Values())
		}
	})
}
