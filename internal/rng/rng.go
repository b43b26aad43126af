package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible Generator backed by math/rand
type Seeded struct {
	rng  *rand.Rand
	seed int64
}

// NewSeeded returns a reproducible Generator
// If seed is 0, the current time is used
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
		seed: seed,
	}
}

// Seed returns the seed used to create the generator
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
