package evo

import (
	"fmt"
	"math/rand"
	"sort"
)

// Population is a fixed-size collection of individuals kept sorted ascending
// by fitness. It is exclusively owned by the Evolution engine that holds it;
// nothing here is safe for concurrent use.
type Population struct {
	size        int
	fitness     Fitness
	individuals []Individual
}

// NewPopulation creates size individuals via init and sorts them ascending
// by fitness.
func NewPopulation(size int, fitness Fitness, init Initializer, rng *rand.Rand) (*Population, error) {
	if size < 1 {
		return nil, fmt.Errorf("population size must be >= 1, got %d: %w", size, ErrInvalidInput)
	}
	if fitness == nil {
		return nil, fmt.Errorf("fitness function is required: %w", ErrInvalidInput)
	}
	if init == nil {
		return nil, fmt.Errorf("initializer is required: %w", ErrInvalidInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required: %w", ErrInvalidInput)
	}

	individuals := make([]Individual, size)
	for i := range individuals {
		individuals[i] = init(rng)
	}
	p := &Population{size: size, fitness: fitness, individuals: individuals}
	p.sortAscending()
	return p, nil
}

func (p *Population) sortAscending() {
	sort.SliceStable(p.individuals, func(i, j int) bool {
		return p.fitness(p.individuals[i]) < p.fitness(p.individuals[j])
	})
}

// Size returns the fixed population size.
func (p *Population) Size() int {
	return p.size
}

// Score evaluates the population's fitness function on ind.
func (p *Population) Score(ind Individual) float64 {
	return p.fitness(ind)
}

// Best returns the individual with maximal fitness: the last element of the
// ascending sort. Under fitness ties the winner is whichever equal-fitness
// individual the stable sort placed last, i.e. the one appended latest.
func (p *Population) Best() Individual {
	return p.individuals[len(p.individuals)-1]
}

// TournamentSelection draws k distinct individuals uniformly at random
// without replacement and returns the one with strictly greatest fitness.
// Ties are broken in favor of the first-drawn contestant holding the
// maximal value.
func (p *Population) TournamentSelection(k int, rng *rand.Rand) (Individual, error) {
	if k < 1 || k > len(p.individuals) {
		return nil, fmt.Errorf("tournament size must be in [1, %d], got %d: %w", len(p.individuals), k, ErrInvalidInput)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required: %w", ErrInvalidInput)
	}

	contestants := rng.Perm(len(p.individuals))[:k]
	best := contestants[0]
	bestScore := p.fitness(p.individuals[best])
	for _, idx := range contestants[1:] {
		if score := p.fitness(p.individuals[idx]); score > bestScore {
			best = idx
			bestScore = score
		}
	}
	return p.individuals[best], nil
}

// Replace appends the candidates, re-sorts ascending by fitness, and keeps
// only the top size individuals. An old individual survives if it outranks
// a candidate; this is a survival-of-the-fittest merge, not a wholesale
// swap.
func (p *Population) Replace(candidates []Individual) {
	p.individuals = append(p.individuals, candidates...)
	p.sortAscending()
	kept := make([]Individual, p.size)
	copy(kept, p.individuals[len(p.individuals)-p.size:])
	p.individuals = kept
}

// SetIndividuals replaces the member list wholesale and re-sorts. The new
// list must have exactly the population size. Used by the engine's step,
// which applies elitism itself.
func (p *Population) SetIndividuals(individuals []Individual) error {
	if len(individuals) != p.size {
		return fmt.Errorf("expected %d individuals, got %d: %w", p.size, len(individuals), ErrInvalidInput)
	}
	p.individuals = individuals
	p.sortAscending()
	return nil
}

// Individuals returns the members in ascending fitness order. The returned
// slice is a copy; the members themselves are shared.
func (p *Population) Individuals() []Individual {
	return append([]Individual(nil), p.individuals...)
}
