// Package evo implements a generational evolutionary engine over an abstract
// individual representation: a fitness-sorted population with tournament
// selection, and a step loop with elitism. Representations plug in through
// the Individual interface; the engine never inspects their values.
package evo

import (
	"errors"
	"math/rand"
)

// ErrInvalidInput is returned for parameter violations detected at
// construction time. Callers must not proceed after receiving it.
var ErrInvalidInput = errors.New("evo: invalid input")

// ErrStructuralViolation signals that an operator produced a value that
// breaks its representation invariant. It indicates a programming error in
// the operator, not a recoverable runtime condition.
var ErrStructuralViolation = errors.New("evo: structural violation")

// PairParams carries crossover parameters. Alpha is accepted for
// compatibility with stored configurations; ordered crossover ignores it.
type PairParams struct {
	Alpha float64
}

// MutateParams carries mutation parameters. Rate is the per-individual
// probability that a mutation fires, in [0, 1].
type MutateParams struct {
	Rate float64
}

// Individual is one candidate solution. Implementations own their value;
// Pair must not modify either parent, Mutate may modify the receiver in
// place and reports whether it did. Both must preserve the representation's
// structural invariant.
type Individual interface {
	Pair(other Individual, params PairParams, rng *rand.Rand) (Individual, error)
	Mutate(params MutateParams, rng *rand.Rand) bool
}

// Initializer produces a new randomly initialized individual. It must draw
// randomness only from the supplied source.
type Initializer func(rng *rand.Rand) Individual

// Fitness scores an individual without mutating it. Higher is better.
type Fitness func(Individual) float64
