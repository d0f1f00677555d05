package tsp

import (
	"fmt"
	"math/rand"

	"planetes/internal/evo"
	"planetes/internal/model"
)

// GenerateCities draws count locations uniformly from the given rectangle.
func GenerateCities(count int, minX, maxX, minY, maxY float64, rng *rand.Rand) ([]model.Location, error) {
	if count < 2 {
		return nil, fmt.Errorf("need at least 2 cities, got %d: %w", count, evo.ErrInvalidInput)
	}
	if maxX < minX || maxY < minY {
		return nil, fmt.Errorf("empty coordinate range: %w", evo.ErrInvalidInput)
	}

	cities := make([]model.Location, count)
	for i := range cities {
		cities[i] = model.Location{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		}
	}
	return cities, nil
}
