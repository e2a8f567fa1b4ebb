package core

import (
	"fmt"
	"math/rand/v2"
)

// Source decides the state of each cell seeded by PatternRandom.
type Source interface {
	Alive() bool
}

// RandomSource is a deterministic Source backed by math/rand/v2 PCG.
type RandomSource struct {
	r      *rand.Rand
	chance float64
}

// DefaultLiveChance gives an even split between Alive and Dead.
const DefaultLiveChance = 0.5

// NewRandomSource returns a Source seeded with seed that yields Alive with
// probability chance.
func NewRandomSource(seed int64, chance float64) (*RandomSource, error) {
	if chance < 0 || chance > 1 {
		return nil, fmt.Errorf("%w: live chance %v outside [0,1]", ErrInvalidConfig, chance)
	}
	return &RandomSource{r: rand.New(rand.NewPCG(uint64(seed), 0)), chance: chance}, nil
}

// Alive draws the next cell state.
func (s *RandomSource) Alive() bool {
	return s.r.Float64() < s.chance
}

// Chance returns the configured live probability.
func (s *RandomSource) Chance() float64 { return s.chance }

// SetChance changes the live probability for subsequent draws.
func (s *RandomSource) SetChance(chance float64) error {
	if chance < 0 || chance > 1 {
		return fmt.Errorf("%w: live chance %v outside [0,1]", ErrInvalidConfig, chance)
	}
	s.chance = chance
	return nil
}

// Seed restarts the sequence so a given seed always yields the same pattern.
func (s *RandomSource) Seed(seed int64) {
	s.r = rand.New(rand.NewPCG(uint64(seed), 0))
}
