package tsp

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"planetes/internal/evo"
)

func requirePermutation(t *testing.T, cities []int) {
	t.Helper()
	require.NoError(t, ValidateRoute(cities))
}

func TestNewRandomRouteIsPermutation(t *testing.T) {
	for _, n := range []int{2, 3, 5, 20, 100} {
		rng := rand.New(rand.NewSource(int64(n)))
		for trial := 0; trial < 10; trial++ {
			route := NewRandomRoute(n, rng)
			require.Equal(t, n, route.Len())
			requirePermutation(t, route.Cities())
		}
	}
}

func TestValidateRoute(t *testing.T) {
	require.NoError(t, ValidateRoute([]int{0}))
	require.NoError(t, ValidateRoute([]int{2, 0, 1}))

	for name, cities := range map[string][]int{
		"empty":        {},
		"duplicate":    {0, 1, 1},
		"out of range": {0, 1, 3},
		"negative":     {0, -1, 2},
	} {
		require.ErrorIs(t, ValidateRoute(cities), evo.ErrStructuralViolation, name)
	}
}

func TestOrderedCrossoverSegmentPlacementAndEdges(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5}
	b := []int{5, 4, 3, 2, 1, 0}

	cases := []struct {
		name       string
		start, end int
		want       []int
	}{
		// Segment 2,3 from a; remaining cities in b's order: 5,4,1,0.
		{name: "interior", start: 2, end: 4, want: []int{5, 4, 2, 3, 1, 0}},
		{name: "start zero", start: 0, end: 3, want: []int{0, 1, 2, 5, 4, 3}},
		{name: "end n", start: 3, end: 6, want: []int{2, 1, 0, 3, 4, 5}},
		{name: "full segment", start: 0, end: 6, want: []int{0, 1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			child := orderedCrossover(a, b, tc.start, tc.end)
			requirePermutation(t, child)
			require.Equal(t, a[tc.start:tc.end], child[tc.start:tc.end], "segment must occupy its original positions")
			require.Equal(t, tc.want, child)
		})
	}
}

func TestPairYieldsValidPermutationAcrossRandomCuts(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for _, n := range []int{2, 3, 8, 30} {
		parent1 := NewRandomRoute(n, rng)
		parent2 := NewRandomRoute(n, rng)
		before1 := parent1.Cities()
		before2 := parent2.Cities()

		for trial := 0; trial < 200; trial++ {
			child, err := parent1.Pair(parent2, evo.PairParams{Alpha: 0.5}, rng)
			require.NoError(t, err)
			requirePermutation(t, child.(*Route).Cities())
		}

		// Pair must not mutate either parent.
		require.Equal(t, before1, parent1.Cities())
		require.Equal(t, before2, parent2.Cities())
	}
}

func TestPairRejectsMismatchedPartners(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	route := NewRandomRoute(5, rng)
	short := NewRandomRoute(3, rng)

	_, err := route.Pair(short, evo.PairParams{}, rng)
	require.ErrorIs(t, err, evo.ErrInvalidInput)
}

func TestMutatePreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	route := NewRandomRoute(12, rng)

	for trial := 0; trial < 100; trial++ {
		before := route.Cities()
		fired := route.Mutate(evo.MutateParams{Rate: 0.5}, rng)
		after := route.Cities()

		sort.Ints(before)
		sorted := append([]int(nil), after...)
		sort.Ints(sorted)
		require.Equal(t, before, sorted)
		requirePermutation(t, after)
		_ = fired
	}
}

func TestMutateRateBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	route := NewRandomRoute(6, rng)

	for trial := 0; trial < 50; trial++ {
		before := route.Cities()
		require.False(t, route.Mutate(evo.MutateParams{Rate: 0}, rng))
		require.Equal(t, before, route.Cities())
	}

	for trial := 0; trial < 50; trial++ {
		before := route.Cities()
		require.True(t, route.Mutate(evo.MutateParams{Rate: 1}, rng))
		after := route.Cities()

		// Exactly one swap of two distinct positions.
		diff := 0
		for i := range before {
			if before[i] != after[i] {
				diff++
			}
		}
		require.Equal(t, 2, diff)
	}
}

func TestNewRouteCopiesInput(t *testing.T) {
	cities := []int{1, 0, 2}
	route, err := NewRoute(cities)
	require.NoError(t, err)

	cities[0] = 99
	require.Equal(t, []int{1, 0, 2}, route.Cities())

	_, err = NewRoute([]int{0, 0, 1})
	require.ErrorIs(t, err, evo.ErrStructuralViolation)
}
