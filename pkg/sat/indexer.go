package sat

import (
	"fmt"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
)

// Indexer gives a unique DIMACS variable (starting at 1) to every (label, point) pair and vice versa
type Indexer[P comparable] interface {
	// Returns the DIMACS variable of the pair
	Index(variable cnf.Variable[P]) (uint64, error)
	// Returns the pair behind a DIMACS variable
	Attributes(index uint64) (cnf.Variable[P], error)
	// Returns the number of DIMACS variables in use
	Variables() uint64
}

type gridIndexer struct {
	labels uint64
	points uint64
}

// NewGridIndexer numbers the pairs of labels 1..labels and points 0..points-1 as point*labels + label
func NewGridIndexer(labels, points uint64) Indexer[int] {
	return &gridIndexer{labels: labels, points: points}
}

func (indexer *gridIndexer) Index(variable cnf.Variable[int]) (uint64, error) {
	if variable.Label < 1 || uint64(variable.Label) > indexer.labels || variable.Point < 0 || uint64(variable.Point) >= indexer.points {
		return 0, fmt.Errorf("%w: %v outside %d labels by %d points", cnf.ErrUnknownVariable, variable, indexer.labels, indexer.points)
	}
	return uint64(variable.Label-1) + indexer.labels*uint64(variable.Point) + 1, nil
}

func (indexer *gridIndexer) Attributes(index uint64) (cnf.Variable[int], error) {
	if index < 1 || index > indexer.Variables() {
		return cnf.Variable[int]{}, fmt.Errorf("%w: DIMACS variable %d", cnf.ErrUnknownVariable, index)
	}
	index = index - 1
	label := index % indexer.labels
	point := index / indexer.labels
	return cnf.Variable[int]{Label: int(label) + 1, Point: int(point)}, nil
}

func (indexer *gridIndexer) Variables() uint64 {
	return indexer.labels * indexer.points
}

type sequentialIndexer[P comparable] struct {
	indices   map[cnf.Variable[P]]uint64
	variables []cnf.Variable[P]
}

// NewSequentialIndexer numbers pairs by order of first appearance, for arbitrary point types
func NewSequentialIndexer[P comparable]() Indexer[P] {
	return &sequentialIndexer[P]{
		indices: make(map[cnf.Variable[P]]uint64),
	}
}

func (indexer *sequentialIndexer[P]) Index(variable cnf.Variable[P]) (uint64, error) {
	if variable.Label < 1 {
		return 0, fmt.Errorf("%w: %v has a non-positive label", cnf.ErrUnknownVariable, variable)
	}
	if index, ok := indexer.indices[variable]; ok {
		return index, nil
	}
	indexer.variables = append(indexer.variables, variable)
	index := uint64(len(indexer.variables))
	indexer.indices[variable] = index
	return index, nil
}

func (indexer *sequentialIndexer[P]) Attributes(index uint64) (cnf.Variable[P], error) {
	if index < 1 || index > uint64(len(indexer.variables)) {
		return cnf.Variable[P]{}, fmt.Errorf("%w: DIMACS variable %d", cnf.ErrUnknownVariable, index)
	}
	return indexer.variables[index-1], nil
}

func (indexer *sequentialIndexer[P]) Variables() uint64 {
	return uint64(len(indexer.variables))
}
