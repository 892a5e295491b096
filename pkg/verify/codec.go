package verify

import (
	"fmt"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"github.com/samber/lo"
)

// Decode expands a bitmask into one literal per variable: bit b set gives the positive literal
// of bitToVariable[b], bit b clear the negative one. Literals come out in the reverse order of
// bitToVariable, and bits at or above len(bitToVariable) are ignored.
func Decode[P comparable](bitmask uint64, bitToVariable []cnf.Variable[P]) []cnf.Literal[P] {
	assignment := make([]cnf.Literal[P], len(bitToVariable))
	for bit, variable := range bitToVariable {
		literal := variable.Neg()
		if bit < 64 && bitmask&(1<<uint(bit)) != 0 {
			literal = variable.Pos()
		}
		assignment[len(bitToVariable)-1-bit] = literal
	}
	return assignment
}

// Encode packs an assignment back into a bitmask, the inverse of Decode
func Encode[P comparable](assignment []cnf.Literal[P], bitToVariable []cnf.Variable[P]) (uint64, error) {
	bits := bitPositions(bitToVariable)

	var bitmask uint64
	for _, literal := range assignment {
		bit, ok := bits[literal.Variable()]
		if !ok {
			return 0, fmt.Errorf("%w: %v", cnf.ErrUnknownVariable, literal.Variable())
		}
		if literal.Positive() && bit < 64 {
			bitmask |= 1 << uint(bit)
		}
	}
	return bitmask, nil
}

// HistoricalBitOrder lists the variables of points so that the most significant bit stands for
// (1, points[0]) and bit 0 for (n, points[n-1]).
func HistoricalBitOrder[P comparable](points []P) []cnf.Variable[P] {
	variables := make([]cnf.Variable[P], 0, len(points)*len(points))
	for _, label := range lo.RangeFrom(1, len(points)) {
		for _, point := range points {
			variables = append(variables, cnf.Variable[P]{Label: label, Point: point})
		}
	}
	return lo.Reverse(variables)
}

func bitPositions[P comparable](bitToVariable []cnf.Variable[P]) map[cnf.Variable[P]]int {
	bits := make(map[cnf.Variable[P]]int, len(bitToVariable))
	for bit, variable := range bitToVariable {
		bits[variable] = bit
	}
	return bits
}
