// Package generator provides the seedable random source for spawns and
// word draws.
package generator

import (
	"math/rand"
	"time"
)

// Generator wraps a math/rand source. It is not safe for concurrent use.
type Generator struct {
	rnd  *rand.Rand
	seed int64
}

// New returns a Generator for seed; a zero seed is replaced by the current
// time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a uniform int in [0, n).
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (g *Generator) Float64() float64 {
	return g.rnd.Float64()
}
