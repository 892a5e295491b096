package cnf

import (
	"fmt"

	"github.com/samber/lo"
)

// MaxGroupSize bounds the points of a single group so that its clause count, roughly n³, fits in an int32
const MaxGroupSize = 1024

// EncodeExactOne builds the CNF forcing the points and the labels 1..len(points) into a bijection.
//
// Clauses are emitted in three families:
//   - permissive: every point carries at least one label
//   - point-restrictive: no point carries two labels
//   - label-restrictive: no label is carried by two points
//
// Pairs are always enumerated by index with i < j, the outer loop running over i,
// so the clause sequence is fully determined by the order of points.
func EncodeExactOne[P comparable](points []P) (CNF[P], error) {
	if len(points) == 0 {
		return nil, ErrEmptyGroup
	}
	clauses, err := Count(len(points))
	if err != nil {
		return nil, err
	}
	if duplicates := lo.FindDuplicates(points); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicatePoint, duplicates[0])
	}

	n := len(points)
	labels := lo.RangeFrom(1, n)
	formula := make(CNF[P], 0, clauses)

	//** Permissive clauses
	for _, point := range points {
		formula = append(formula, lo.Map(labels, func(label int, _ int) Literal[P] {
			return Literal[P]{Value: label, Point: point}
		}))
	}

	//** Point-restrictive clauses
	for _, point := range points {
		for i := range n - 1 {
			for j := i + 1; j < n; j++ {
				formula = append(formula, Clause[P]{
					{Value: -labels[i], Point: point},
					{Value: -labels[j], Point: point},
				})
			}
		}
	}

	//** Label-restrictive clauses
	for _, label := range labels {
		for i := range n - 1 {
			for j := i + 1; j < n; j++ {
				formula = append(formula, Clause[P]{
					{Value: -label, Point: points[i]},
					{Value: -label, Point: points[j]},
				})
			}
		}
	}

	return formula, nil
}

// Count returns the number of clauses EncodeExactOne emits for n points: n + 2·n·C(n,2).
// Groups beyond MaxGroupSize fail with ErrGroupTooLarge.
func Count(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	} else if n > MaxGroupSize {
		return 0, fmt.Errorf("%w: %d points, at most %d allowed", ErrGroupTooLarge, n, MaxGroupSize)
	}
	return n + 2*n*(n*(n-1)/2), nil
}
