package tsp

import (
	"fmt"
	"math/rand"

	"planetes/internal/evo"
)

// Route is a permutation of city indices 0..n-1, each city exactly once.
// It implements evo.Individual.
type Route struct {
	cities []int
}

// NewRoute copies and validates an explicit permutation.
func NewRoute(cities []int) (*Route, error) {
	if err := ValidateRoute(cities); err != nil {
		return nil, err
	}
	return &Route{cities: append([]int(nil), cities...)}, nil
}

// NewRandomRoute returns a uniformly random permutation of n cities.
func NewRandomRoute(n int, rng *rand.Rand) *Route {
	return &Route{cities: rng.Perm(n)}
}

// NewInitializer adapts NewRandomRoute to the engine's initializer type.
func NewInitializer(n int) evo.Initializer {
	return func(rng *rand.Rand) evo.Individual {
		return NewRandomRoute(n, rng)
	}
}

// Len returns the number of cities on the route.
func (r *Route) Len() int {
	return len(r.cities)
}

// Cities returns a copy of the permutation.
func (r *Route) Cities() []int {
	return append([]int(nil), r.cities...)
}

// Pair produces one offspring via ordered crossover: a contiguous segment of
// the receiver is kept verbatim, and the remaining cities fill the rest in
// the order they appear in other. Neither parent is modified. The two cut
// points are distinct positions drawn uniformly from [0, n).
func (r *Route) Pair(other evo.Individual, _ evo.PairParams, rng *rand.Rand) (evo.Individual, error) {
	o, ok := other.(*Route)
	if !ok {
		return nil, fmt.Errorf("pair requires a route partner, got %T: %w", other, evo.ErrInvalidInput)
	}
	if len(o.cities) != len(r.cities) {
		return nil, fmt.Errorf("pair requires routes over the same city set: %w", evo.ErrInvalidInput)
	}

	start, end := cutPoints(len(r.cities), rng)
	child := orderedCrossover(r.cities, o.cities, start, end)
	if err := ValidateRoute(child); err != nil {
		// Unreachable for valid parents; kept as a guard on the operator.
		return nil, err
	}
	return &Route{cities: child}, nil
}

// cutPoints draws two distinct positions in [0, n) and returns them ordered.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	start := rng.Intn(n)
	end := rng.Intn(n - 1)
	if end >= start {
		end++
	} else {
		start, end = end, start
	}
	return start, end
}

// orderedCrossover builds the child permutation for segment a[start:end].
// Cities absent from the segment keep their relative order from b: the first
// start of them precede the segment, the rest follow it.
func orderedCrossover(a, b []int, start, end int) []int {
	inSegment := make([]bool, len(a))
	for _, city := range a[start:end] {
		inSegment[city] = true
	}

	rest := make([]int, 0, len(a)-(end-start))
	for _, city := range b {
		if !inSegment[city] {
			rest = append(rest, city)
		}
	}

	child := make([]int, 0, len(a))
	child = append(child, rest[:start]...)
	child = append(child, a[start:end]...)
	child = append(child, rest[start:]...)
	return child
}

// Mutate swaps two distinct positions with probability params.Rate and
// reports whether the swap happened. The multiset of cities is unchanged.
func (r *Route) Mutate(params evo.MutateParams, rng *rand.Rand) bool {
	if len(r.cities) < 2 {
		return false
	}
	if rng.Float64() >= params.Rate {
		return false
	}
	i := rng.Intn(len(r.cities))
	j := rng.Intn(len(r.cities) - 1)
	if j >= i {
		j++
	}
	r.cities[i], r.cities[j] = r.cities[j], r.cities[i]
	return true
}

// ValidateRoute checks the permutation invariant: every value in 0..n-1
// appears exactly once. Violations are reported as ErrStructuralViolation.
func ValidateRoute(cities []int) error {
	if len(cities) == 0 {
		return fmt.Errorf("empty route: %w", evo.ErrStructuralViolation)
	}
	seen := make([]bool, len(cities))
	for _, city := range cities {
		if city < 0 || city >= len(cities) {
			return fmt.Errorf("city %d out of range [0, %d): %w", city, len(cities), evo.ErrStructuralViolation)
		}
		if seen[city] {
			return fmt.Errorf("city %d repeated: %w", city, evo.ErrStructuralViolation)
		}
		seen[city] = true
	}
	return nil
}
