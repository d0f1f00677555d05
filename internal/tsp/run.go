package tsp

import (
	"context"
	"fmt"
	"io"

	"planetes/internal/evo"
	"planetes/internal/model"
)

// RunConfig ties a city set and algorithm parameters into one bounded run.
type RunConfig struct {
	Locations []model.Location
	// Names is optional; when present its length must match Locations.
	Names  []string
	Params model.AlgorithmParams
	// Seed fixes the random stream; zero selects the engine's default.
	Seed int64
	// Verbose enables the per-epoch progress table on LogWriter.
	Verbose   bool
	LogWriter io.Writer
}

// Run executes the full optimization: it builds the distance matrix and
// fitness function, constructs the engine, records the initial best length,
// then steps exactly NEpochs times. Cancellation is honored between epochs
// only; an epoch always runs to completion.
func Run(ctx context.Context, cfg RunConfig) (model.RunResult, error) {
	if len(cfg.Names) > 0 && len(cfg.Names) != len(cfg.Locations) {
		return model.RunResult{}, fmt.Errorf("got %d names for %d cities: %w", len(cfg.Names), len(cfg.Locations), evo.ErrInvalidInput)
	}
	if cfg.Params.NEpochs < 0 {
		return model.RunResult{}, fmt.Errorf("epoch count must be >= 0, got %d: %w", cfg.Params.NEpochs, evo.ErrInvalidInput)
	}

	matrix, err := NewDistanceMatrix(cfg.Locations)
	if err != nil {
		return model.RunResult{}, err
	}
	fitness := NewFitness(matrix)

	engine, err := evo.New(evo.Config{
		PoolSize:       cfg.Params.PopulationSize,
		Fitness:        fitness,
		Initializer:    NewInitializer(matrix.Len()),
		TournamentSize: cfg.Params.TournamentSize,
		PairParams:     evo.PairParams{Alpha: cfg.Params.CrossoverAlpha},
		MutateParams:   evo.MutateParams{Rate: cfg.Params.MutationRate},
		NOffsprings:    cfg.Params.NOffsprings,
		Seed:           cfg.Seed,
	})
	if err != nil {
		return model.RunResult{}, err
	}

	out := cfg.LogWriter
	if out == nil || !cfg.Verbose {
		out = io.Discard
	}

	pool := engine.Pool()
	initialBest := pool.Best().(*Route)
	initialLength := -pool.Score(initialBest)

	bestRoute := initialBest.Cities()
	history := make([]float64, 0, cfg.Params.NEpochs+1)
	history = append(history, initialLength)

	fmt.Fprintf(out, "initial best route length: %.2f\n", initialLength)
	fmt.Fprintf(out, "%5s | %10s | %9s | %8s\n", "epoch", "length", "mutations", "improved")

	improvements := 0
	lastImprovement := 0
	totalMutations := 0

	for epoch := 0; epoch < cfg.Params.NEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return model.RunResult{}, err
		}

		mutations, err := engine.Step()
		if err != nil {
			return model.RunResult{}, err
		}
		totalMutations += mutations

		currentBest := pool.Best().(*Route)
		currentLength := -pool.Score(currentBest)
		history = append(history, currentLength)

		improved := currentLength < history[len(history)-2]
		if improved {
			improvements++
			lastImprovement = epoch
			bestRoute = currentBest.Cities()
		}
		if improved || epoch%10 == 0 {
			mark := ""
			if improved {
				mark = "*"
			}
			fmt.Fprintf(out, "%5d | %10.2f | %9d | %8s\n", epoch, currentLength, mutations, mark)
		}
	}

	finalLength := history[len(history)-1]
	improvementPct := 0.0
	if initialLength > 0 {
		improvementPct = (initialLength - finalLength) / initialLength * 100
	}

	return model.RunResult{
		BestRoute:       bestRoute,
		BestLength:      finalLength,
		InitialLength:   initialLength,
		ImprovementPct:  improvementPct,
		LengthHistory:   history,
		TotalMutations:  totalMutations,
		Improvements:    improvements,
		LastImprovement: lastImprovement,
	}, nil
}
