package verify

import (
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"golang.org/x/sync/errgroup"
)

// MaxVariables bounds exhaustive enumeration to 2^20 assignments
const MaxVariables = 20

// SatisfiableAssignments enumerates every bitmask over bitToVariable and returns, in ascending order,
// those whose decoded assignment satisfies the formula.
func SatisfiableAssignments[P comparable](formula cnf.CNF[P], bitToVariable []cnf.Variable[P]) ([]uint64, error) {
	if len(bitToVariable) > MaxVariables {
		return nil, fmt.Errorf("%w: %d variables, at most %d allowed", cnf.ErrTooManyVariables, len(bitToVariable), MaxVariables)
	}

	bits := bitPositions(bitToVariable)
	if len(bits) != len(bitToVariable) {
		return nil, fmt.Errorf("%w: bit order holds %d entries for %d variables", cnf.ErrDuplicateVariable, len(bitToVariable), len(bits))
	}
	if err := declared(formula, bits); err != nil {
		return nil, err
	}

	total := uint64(1) << uint(len(bitToVariable))
	workers := uint64(runtime.GOMAXPROCS(0))
	chunk := (total + workers - 1) / workers

	var (
		mutex     sync.Mutex
		satisfied []uint64
		eg        errgroup.Group
	)
	for start := uint64(0); start < total; start += chunk {
		end := min(start+chunk, total)
		eg.Go(func() error {
			local := make([]uint64, 0)
			for bitmask := start; bitmask < end; bitmask++ {
				ok, err := Satisfies(formula, Decode(bitmask, bitToVariable))
				if err != nil {
					return err
				}
				if ok {
					local = append(local, bitmask)
				}
			}

			mutex.Lock()
			defer mutex.Unlock()
			satisfied = append(satisfied, local...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(satisfied)
	return satisfied, nil
}

// Satisfies reports whether every clause has a literal agreeing with the assignment
func Satisfies[P comparable](formula cnf.CNF[P], assignment []cnf.Literal[P]) (bool, error) {
	values := make(map[cnf.Variable[P]]bool, len(assignment))
	for _, literal := range assignment {
		values[literal.Variable()] = literal.Positive()
	}

	for _, clause := range formula {
		clauseSatisfied := false
		for _, literal := range clause {
			value, ok := values[literal.Variable()]
			if !ok {
				return false, fmt.Errorf("%w: %v", cnf.ErrUnknownVariable, literal.Variable())
			}
			if value == literal.Positive() {
				clauseSatisfied = true
				break
			}
		}
		if !clauseSatisfied {
			return false, nil
		}
	}
	return true, nil
}

func declared[P comparable](formula cnf.CNF[P], bits map[cnf.Variable[P]]int) error {
	for i, clause := range formula {
		for _, literal := range clause {
			if _, ok := bits[literal.Variable()]; !ok {
				return fmt.Errorf("%w: %v in clause %d", cnf.ErrUnknownVariable, literal.Variable(), i)
			}
		}
	}
	return nil
}
