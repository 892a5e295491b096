package board

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"golang.org/x/sync/errgroup"
)

// Composer assembles the exact-one encodings of every box, row and column of a board
type Composer struct {
	// strict rejects board sizes that are not perfect squares. When false, boxes are laid
	// on a floor(sqrt(size)) stride and those that do not fit inside the board are dropped
	strict bool
}

func NewComposer(strict bool) *Composer {
	return &Composer{strict: strict}
}

// EncodeBoard encodes a boardSize×boardSize board requiring its boxes to tile it exactly
func EncodeBoard(boardSize int) (cnf.CNF[int], error) {
	return NewComposer(true).Encode(boardSize)
}

// Groups lists the groups of the board: boxes (row-major), then rows, then columns.
// Every row holds boardSize points, so boards wider than cnf.MaxGroupSize are rejected up front.
func (composer *Composer) Groups(boardSize int) ([]Group, error) {
	if boardSize < 1 {
		return nil, fmt.Errorf("%w: board size %d", cnf.ErrOutOfBounds, boardSize)
	} else if boardSize > cnf.MaxGroupSize {
		return nil, fmt.Errorf("%w: board size %d, at most %d allowed", cnf.ErrGroupTooLarge, boardSize, cnf.MaxGroupSize)
	}
	side := BoxSide(boardSize)
	if composer.strict && side*side != boardSize {
		return nil, fmt.Errorf("%w: %d", cnf.ErrNonSquareBoard, boardSize)
	}

	groups := make([]Group, 0, 3*boardSize)

	//** Boxes
	for row := 0; row+side <= boardSize; row += side {
		for column := 0; column+side <= boardSize; column += side {
			points, err := BoxPoints(boardSize, row, column)
			if err != nil {
				return nil, err
			}
			groups = append(groups, Group{Kind: Box, Row: row, Column: column, Points: points})
		}
	}

	//** Rows
	for row := range boardSize {
		points, err := RowPoints(boardSize, row, 0)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Kind: Row, Row: row, Column: 0, Points: points})
	}

	//** Columns
	for column := range boardSize {
		points, err := ColPoints(boardSize, 0, column)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Kind: Column, Row: 0, Column: column, Points: points})
	}

	return groups, nil
}

// Encode concatenates the encodings of every group in the order returned by Groups.
// Clauses shared by overlapping groups are kept.
func (composer *Composer) Encode(boardSize int) (cnf.CNF[int], error) {
	groups, err := composer.Groups(boardSize)
	if err != nil {
		return nil, err
	}

	// Groups are encoded on different goroutines; each result lands in its own slot so order is preserved
	encodings := make([]cnf.CNF[int], len(groups))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, group := range groups {
		eg.Go(func() error {
			formula, err := cnf.EncodeExactOne(group.Points)
			if err != nil {
				return fmt.Errorf("cannot encode %v anchored at (%d, %d): %w", group.Kind, group.Row, group.Column, err)
			}
			encodings[i] = formula
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(encodings...), nil
}
