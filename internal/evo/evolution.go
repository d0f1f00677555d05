package evo

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed is used when callers pass Seed == 0, so that default runs are
// still reproducible. The value is arbitrary but stable.
const defaultSeed int64 = 1

// Config parameterizes an Evolution engine. All validation happens in New;
// Step has no error conditions of its own beyond operator failures.
type Config struct {
	PoolSize       int
	Fitness        Fitness
	Initializer    Initializer
	TournamentSize int
	PairParams     PairParams
	MutateParams   MutateParams

	// NOffsprings is accepted and recorded but does not bound the step:
	// every step regenerates the full pool. Kept to match the observed
	// behavior of the system this engine reimplements.
	NOffsprings int

	// Seed fixes the random stream. Zero selects a stable default seed.
	Seed int64
}

// Evolution drives one generational step at a time over an owned Population.
// Single-threaded; a step always runs to completion.
type Evolution struct {
	pool           *Population
	tournamentSize int
	pairParams     PairParams
	mutateParams   MutateParams
	nOffsprings    int
	rng            *rand.Rand
}

// New validates cfg, builds the initial population, and returns an engine
// ready to step. Violations are reported as ErrInvalidInput.
func New(cfg Config) (*Evolution, error) {
	if cfg.PoolSize < 1 {
		return nil, fmt.Errorf("pool size must be >= 1, got %d: %w", cfg.PoolSize, ErrInvalidInput)
	}
	if cfg.TournamentSize < 1 || cfg.TournamentSize > cfg.PoolSize {
		return nil, fmt.Errorf("tournament size must be in [1, %d], got %d: %w", cfg.PoolSize, cfg.TournamentSize, ErrInvalidInput)
	}
	if cfg.MutateParams.Rate < 0 || cfg.MutateParams.Rate > 1 || math.IsNaN(cfg.MutateParams.Rate) {
		return nil, fmt.Errorf("mutation rate must be in [0, 1], got %v: %w", cfg.MutateParams.Rate, ErrInvalidInput)
	}
	if cfg.NOffsprings < 1 {
		return nil, fmt.Errorf("offspring count must be >= 1, got %d: %w", cfg.NOffsprings, ErrInvalidInput)
	}
	if math.IsNaN(cfg.PairParams.Alpha) || math.IsInf(cfg.PairParams.Alpha, 0) {
		return nil, fmt.Errorf("crossover alpha must be finite: %w", ErrInvalidInput)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	pool, err := NewPopulation(cfg.PoolSize, cfg.Fitness, cfg.Initializer, rng)
	if err != nil {
		return nil, err
	}

	return &Evolution{
		pool:           pool,
		tournamentSize: cfg.TournamentSize,
		pairParams:     cfg.PairParams,
		mutateParams:   cfg.MutateParams,
		nOffsprings:    cfg.NOffsprings,
		rng:            rng,
	}, nil
}

// Step runs one generation: the current best is carried over unchanged,
// then tournament-selected parents produce offspring until the pool size is
// reached, mutating each offspring in place. The population is then replaced
// wholesale with the new generation. Returns the number of mutations that
// fired. Best fitness never regresses across a step.
func (e *Evolution) Step() (int, error) {
	next := make([]Individual, 0, e.pool.Size())
	next = append(next, e.pool.Best())

	mutations := 0
	for len(next) < e.pool.Size() {
		parent1, err := e.pool.TournamentSelection(e.tournamentSize, e.rng)
		if err != nil {
			return 0, err
		}
		// Parents are selected independently; one individual may pair
		// with itself.
		parent2, err := e.pool.TournamentSelection(e.tournamentSize, e.rng)
		if err != nil {
			return 0, err
		}

		offspring, err := parent1.Pair(parent2, e.pairParams, e.rng)
		if err != nil {
			return 0, err
		}
		if offspring.Mutate(e.mutateParams, e.rng) {
			mutations++
		}
		next = append(next, offspring)
	}

	if err := e.pool.SetIndividuals(next); err != nil {
		return 0, err
	}
	return mutations, nil
}

// Pool exposes the owned population for inspection between steps.
func (e *Evolution) Pool() *Population {
	return e.pool
}

// NOffsprings reports the configured offspring target. Informational only;
// see Config.
func (e *Evolution) NOffsprings() int {
	return e.nOffsprings
}
