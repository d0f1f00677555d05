package tsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"planetes/internal/evo"
)

func TestGenerateCitiesWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cities, err := GenerateCities(50, 0, 200, -10, 10, rng)
	require.NoError(t, err)
	require.Len(t, cities, 50)

	for _, city := range cities {
		require.GreaterOrEqual(t, city.X, 0.0)
		require.Less(t, city.X, 200.0)
		require.GreaterOrEqual(t, city.Y, -10.0)
		require.Less(t, city.Y, 10.0)
	}
}

func TestGenerateCitiesValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := GenerateCities(1, 0, 1, 0, 1, rng)
	require.ErrorIs(t, err, evo.ErrInvalidInput)

	_, err = GenerateCities(5, 10, 0, 0, 1, rng)
	require.ErrorIs(t, err, evo.ErrInvalidInput)
}
