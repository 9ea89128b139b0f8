package scoring

import (
	"math"
	"testing"
)

func TestScoreTiers(t *testing.T) {
	cases := []struct {
		distance float64
		want     int
	}{
		{0, 100},
		{20, 100},
		{20.0001, 50},
		{40, 50},
		{59.9, 25},
		{60, 25},
		{80, 10},
		{80.5, 0},
		{150, 0},
		{-3, 100},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		if got := Score(tc.distance); got != tc.want {
			t.Fatalf("Score(%v) = %d, want %d", tc.distance, got, tc.want)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	allowed := map[int]bool{100: true, 50: true, 25: true, 10: true, 0: true}
	prev := Score(0)
	for d := 0.0; d <= 200; d += 0.25 {
		got := Score(d)
		if !allowed[got] {
			t.Fatalf("Score(%v) = %d, not a tier value", d, got)
		}
		if got > prev {
			t.Fatalf("Score increased at %v: %d > %d", d, got, prev)
		}
		prev = got
	}
}

func TestKindValue(t *testing.T) {
	if got := KindValue(Standard); got != 20 {
		t.Fatalf("expected standard value 20, got %d", got)
	}
	if got := KindValue(Bonus); got != 50 {
		t.Fatalf("expected bonus value 50, got %d", got)
	}
}

func TestRating(t *testing.T) {
	cases := map[int]string{
		0:   "Keep Practicing!",
		49:  "Keep Practicing!",
		50:  "Not Bad!",
		100: "Good Aim!",
		250: "Dart Expert!",
		700: "Dart Master!",
	}
	for score, want := range cases {
		if got := Rating(score); got != want {
			t.Fatalf("Rating(%d) = %q, want %q", score, got, want)
		}
	}
}
