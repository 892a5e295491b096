package board

import (
	"fmt"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
)

// Identity returns the point naming cell (row, column) of a boardSize×boardSize board
func Identity(boardSize, row, column int) (int, error) {
	if boardSize < 1 {
		return 0, fmt.Errorf("%w: board size %d", cnf.ErrOutOfBounds, boardSize)
	}
	if row < 0 || row >= boardSize || column < 0 || column >= boardSize {
		return 0, fmt.Errorf("%w: cell (%d, %d) on a board of size %d", cnf.ErrOutOfBounds, row, column, boardSize)
	}
	return boardSize*row + column, nil
}

// Coordinates is the inverse of Identity
func Coordinates(boardSize, point int) (row, column int, err error) {
	if boardSize < 1 || point < 0 || point >= boardSize*boardSize {
		return 0, 0, fmt.Errorf("%w: point %d on a board of size %d", cnf.ErrOutOfBounds, point, boardSize)
	}
	return point / boardSize, point % boardSize, nil
}
