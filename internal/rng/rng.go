// Package rng provides the random sources used for real tile placement.
package rng

import (
	"math/rand"

	"lukechampine.com/frand"

	"github.com/vovakirdan/bot2048/internal/board"
)

// DefaultWeight is the probability of the first value in WeightedChoice (a 2 rather than a 4).
const DefaultWeight = 0.9

// generator is the part of *rand.Rand and *frand.RNG the sources need.
type generator interface {
	Intn(n int) int
	Float64() float64
}

// Source draws uniform integers and weighted binary choices.
type Source struct {
	gen    generator
	weight float64
}

// NewSeeded returns a deterministic source; the same seed yields the same sequence.
func NewSeeded(seed int64, weight float64) *Source {
	return &Source{
		gen:    rand.New(rand.NewSource(seed)),
		weight: clampWeight(weight),
	}
}

// NewEntropy returns a source seeded from the operating system's entropy.
// Not safe for concurrent use.
func NewEntropy(weight float64) *Source {
	return &Source{
		gen:    frand.New(),
		weight: clampWeight(weight),
	}
}

// New picks a seeded source for a non-zero seed and an entropy source otherwise.
func New(seed int64, weight float64) *Source {
	if seed == 0 {
		return NewEntropy(weight)
	}
	return NewSeeded(seed, weight)
}

// Uniform returns an integer in [min, max]. It returns min if max < min.
func (s *Source) Uniform(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.gen.Intn(max-min+1)
}

// WeightedChoice returns a with probability Weight, otherwise b.
func (s *Source) WeightedChoice(a, b int) int {
	if s.gen.Float64() < s.weight {
		return a
	}
	return b
}

// Weight returns the probability of the first value in WeightedChoice.
func (s *Source) Weight() float64 {
	return s.weight
}

// clampWeight restricts a weight to [0, 1].
func clampWeight(w float64) float64 {
	switch {
	case w < 0:
		return 0
	case w > 1:
		return 1
	default:
		return w
	}
}

var _ board.RandomSource = (*Source)(nil)
