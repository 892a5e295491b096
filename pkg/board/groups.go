package board

import (
	"fmt"
	"math"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
)

type GroupKind int

const (
	Box GroupKind = iota
	Row
	Column
)

func (kind GroupKind) String() string {
	switch kind {
	case Box:
		return "box"
	case Row:
		return "row"
	case Column:
		return "column"
	}
	return fmt.Sprintf("GroupKind(%d)", int(kind))
}

// Group is a set of points that must form a bijection with the labels 1..len(Points)
type Group struct {
	Kind   GroupKind
	Row    int // Anchor row
	Column int // Anchor column
	Points []int
}

// BoxSide returns floor(sqrt(boardSize))
func BoxSide(boardSize int) int {
	if boardSize < 1 {
		return 0
	}
	side := int(math.Sqrt(float64(boardSize)))
	// Correct floating point drift on large sizes
	for side*side > boardSize {
		side--
	}
	for (side+1)*(side+1) <= boardSize {
		side++
	}
	return side
}

// BoxPoints lists, row-major, the cells of the box whose top-left cell is (row, column)
func BoxPoints(boardSize, row, column int) ([]int, error) {
	side := BoxSide(boardSize)
	if !inBounds(boardSize, row, column) || row%side != 0 || column%side != 0 || row+side > boardSize || column+side > boardSize {
		return nil, fmt.Errorf("%w: (%d, %d) is not the top-left cell of a %dx%d box on a board of size %d", cnf.ErrInvalidAnchor, row, column, side, side, boardSize)
	}

	points := make([]int, 0, side*side)
	for r := row; r < row+side; r++ {
		for c := column; c < column+side; c++ {
			point, err := Identity(boardSize, r, c)
			if err != nil {
				return nil, err
			}
			points = append(points, point)
		}
	}
	return points, nil
}

// RowPoints lists, left to right, the cells of the row anchored at (row, 0)
func RowPoints(boardSize, row, column int) ([]int, error) {
	if !inBounds(boardSize, row, column) || column != 0 {
		return nil, fmt.Errorf("%w: row anchor (%d, %d) on a board of size %d", cnf.ErrInvalidAnchor, row, column, boardSize)
	}

	points := make([]int, 0, boardSize)
	for c := range boardSize {
		point, err := Identity(boardSize, row, c)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// ColPoints lists, top to bottom, the cells of the column anchored at (0, column)
func ColPoints(boardSize, row, column int) ([]int, error) {
	if !inBounds(boardSize, row, column) || row != 0 {
		return nil, fmt.Errorf("%w: column anchor (%d, %d) on a board of size %d", cnf.ErrInvalidAnchor, row, column, boardSize)
	}

	points := make([]int, 0, boardSize)
	for r := range boardSize {
		point, err := Identity(boardSize, r, column)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func inBounds(boardSize, row, column int) bool {
	return boardSize >= 1 && row >= 0 && row < boardSize && column >= 0 && column < boardSize
}
