// Package tsp implements the Travelling Salesman Problem on top of the evo
// engine: a Euclidean distance matrix, a permutation-based route individual
// with ordered crossover and swap mutation, and the bounded-epoch run loop.
package tsp

import (
	"fmt"
	"math"

	"planetes/internal/evo"
	"planetes/internal/model"
)

// DistanceMatrix holds precomputed pairwise Euclidean distances. Symmetric
// with a zero diagonal, computed once, read-only afterwards; safe to share
// across any number of fitness evaluations.
type DistanceMatrix struct {
	d [][]float64
}

// NewDistanceMatrix eagerly computes the full matrix. O(n^2) time and space.
// Fewer than 2 locations is rejected: a tour is undefined.
func NewDistanceMatrix(locations []model.Location) (DistanceMatrix, error) {
	if len(locations) < 2 {
		return DistanceMatrix{}, fmt.Errorf("need at least 2 locations, got %d: %w", len(locations), evo.ErrInvalidInput)
	}

	n := len(locations)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := math.Hypot(locations[i].X-locations[j].X, locations[i].Y-locations[j].Y)
			d[i][j] = dist
			d[j][i] = dist
		}
	}
	return DistanceMatrix{d: d}, nil
}

// Len returns the number of locations.
func (m DistanceMatrix) Len() int {
	return len(m.d)
}

// At returns the distance between locations i and j.
func (m DistanceMatrix) At(i, j int) float64 {
	return m.d[i][j]
}

// TourLength sums the distances between consecutive cities on the route,
// including the closing edge from the last city back to the first.
func TourLength(route []int, m DistanceMatrix) float64 {
	total := 0.0
	for i, from := range route {
		to := route[(i+1)%len(route)]
		total += m.d[from][to]
	}
	return total
}

// NewFitness derives the run's fitness function from the matrix: the negated
// tour length, so that shorter tours score higher.
func NewFitness(m DistanceMatrix) evo.Fitness {
	return func(ind evo.Individual) float64 {
		route := ind.(*Route)
		return -TourLength(route.cities, m)
	}
}
