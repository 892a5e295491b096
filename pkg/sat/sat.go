package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"github.com/samber/lo"
)

// SATSolution holds the signed DIMACS literals of a model
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// FromCNF numbers every variable of the formula through the indexer
func FromCNF[P comparable](formula cnf.CNF[P], indexer Indexer[P]) (SAT, error) {
	clauses := make([][]int64, 0, len(formula))
	for i, clause := range formula {
		dimacsClause := make([]int64, 0, len(clause))
		for _, literal := range clause {
			index, err := indexer.Index(literal.Variable())
			if err != nil {
				return SAT{}, fmt.Errorf("clause %d: %w", i, err)
			}
			if literal.Positive() {
				dimacsClause = append(dimacsClause, int64(index))
			} else {
				dimacsClause = append(dimacsClause, -int64(index))
			}
		}
		clauses = append(clauses, dimacsClause)
	}

	return SAT{
		Variables: indexer.Variables(),
		Clauses:   clauses,
	}, nil
}

// WriteTo streams the instance in DIMACS-CNF: the problem line, then one zero-terminated clause per line
func (s SAT) WriteTo(w io.Writer) (int64, error) {
	writer := &countingWriter{w: bufio.NewWriter(w)}

	line := fmt.Appendf(nil, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	writer.write(line)
	for _, clause := range s.Clauses {
		line = line[:0]
		for _, literal := range clause {
			line = strconv.AppendInt(line, literal, 10)
			line = append(line, ' ')
		}
		line = append(line, '0', '\n')
		writer.write(line)
	}
	if writer.err != nil {
		return writer.n, writer.err
	}
	return writer.n, writer.w.Flush()
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteTo(&builder)
	return builder.String()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (writer *countingWriter) write(p []byte) {
	if writer.err != nil {
		return
	}
	n, err := writer.w.Write(p)
	writer.n += int64(n)
	writer.err = err
}

// Positives translates the positive literals of a solution back into variables. Literals the indexer does not know are skipped
func Positives[P comparable](solution SATSolution, indexer Indexer[P]) []cnf.Variable[P] {
	positives := make([]cnf.Variable[P], 0)
	for _, literal := range solution {
		if literal <= 0 {
			continue
		}
		variable, err := indexer.Attributes(uint64(literal))
		if err != nil {
			continue
		}
		positives = append(positives, variable)
	}
	return positives
}

// Satisfies reports whether the solution is a consistent model of every clause.
// A solution assigning some variable twice is rejected even when both literals agree.
func (s SAT) Satisfies(solution SATSolution) bool {
	model := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		variable := max(literal, -literal)
		if _, assigned := model[variable]; assigned {
			return false
		}
		model[variable] = literal > 0
	}

	return lo.EveryBy(s.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, func(literal int64) bool {
			value, assigned := model[max(literal, -literal)]
			return assigned && value == (literal > 0)
		})
	})
}
