package cnf

import "errors"

var (
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrInvalidAnchor     = errors.New("invalid group anchor")
	ErrEmptyGroup        = errors.New("group has no points")
	ErrDuplicatePoint    = errors.New("group contains a duplicate point")
	ErrGroupTooLarge     = errors.New("group has too many points")
	ErrNonSquareBoard    = errors.New("board size is not a perfect square")
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrDuplicateVariable = errors.New("variable declared more than once")
	ErrTooManyVariables  = errors.New("too many variables for exhaustive enumeration")
	ErrNotBijection      = errors.New("assignment is not a bijection")
)
