// Package scoring maps hits to points.
package scoring

import "math"

// Tier is a scoring ring: hits at or inside Radius earn Points.
type Tier struct {
	Radius float64
	Points int
}

// Tiers lists the dartboard rings from the bullseye outward.
var Tiers = []Tier{
	{Radius: 20, Points: 100},
	{Radius: 40, Points: 50},
	{Radius: 60, Points: 25},
	{Radius: 80, Points: 10},
}

// Kind identifies a Collector falling item.
type Kind int

const (
	// Standard items are the common drop.
	Standard Kind = iota
	// Bonus items are rarer and worth more.
	Bonus
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Bonus:
		return "bonus"
	default:
		return "unknown"
	}
}

const (
	standardValue = 20
	bonusValue    = 50
)

// Score returns the points for a hit at the given distance from the board
// center. The first tier whose radius contains the hit wins; anything outside
// the outer ring is a miss.
func Score(distance float64) int {
	if math.IsNaN(distance) {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	for _, tier := range Tiers {
		if distance <= tier.Radius {
			return tier.Points
		}
	}
	return 0
}

// KindValue returns the fixed points awarded for catching an item.
func KindValue(kind Kind) int {
	switch kind {
	case Bonus:
		return bonusValue
	case Standard:
		return standardValue
	default:
		return 0
	}
}

// Rating returns the end-of-round message for a final score.
func Rating(score int) string {
	switch {
	case score >= 300:
		return "Dart Master!"
	case score >= 200:
		return "Dart Expert!"
	case score >= 100:
		return "Good Aim!"
	case score >= 50:
		return "Not Bad!"
	default:
		return "Keep Practicing!"
	}
}
