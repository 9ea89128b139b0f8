// Package stats contains round summaries and reporting.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/tuiarcade/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a list of rounds.
type Summary struct {
	Rounds    int           `yaml:"rounds"`
	Best      int           `yaml:"best"`
	AvgScore  float64       `yaml:"avg_score"`
	PeakCombo int           `yaml:"peak_combo"`
	Played    time.Duration `yaml:"played"`
}

// Summarize computes totals over rounds.
func Summarize(rounds []model.RoundResult) Summary {
	var s Summary
	if len(rounds) == 0 {
		return s
	}
	total := 0
	for _, r := range rounds {
		total += r.Score
		if r.Score > s.Best {
			s.Best = r.Score
		}
		if r.PeakCombo > s.PeakCombo {
			s.PeakCombo = r.PeakCombo
		}
		s.Played += time.Duration(r.PlayedMs) * time.Millisecond
	}
	s.Rounds = len(rounds)
	s.AvgScore = float64(total) / float64(len(rounds))
	return s
}

// Scores returns the round scores in play order.
func Scores(rounds []model.RoundResult) []float64 {
	out := make([]float64, len(rounds))
	for i, r := range rounds {
		out[i] = float64(r.Score)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
