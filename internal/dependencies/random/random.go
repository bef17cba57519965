// Package random provides the piece randomizer source used by game sessions.
package random

import (
	"math/rand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Seeded implements Random with a deterministic math/rand source.
// Two values created with the same seed produce identical sequences.
type Seeded struct {
	rng *rand.Rand
}

// New creates a Seeded source.
func New(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n); 0 when n <= 0.
func (r *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
// Used to derive the seed for the next game on restart.
func (r *Seeded) Int63() int64 {
	return r.rng.Int63()
}
