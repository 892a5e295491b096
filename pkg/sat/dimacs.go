package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS-CNF document such as the one produced by ToDIMACS
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var sat SAT
	seenProblem := false
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var clause []int64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and blank lines
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		// Problem line
		if strings.HasPrefix(line, "p") {
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return SAT{}, fmt.Errorf("invalid problem line: %s", line)
			}
			vars, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count: %w", err)
			}
			if _, err := strconv.ParseUint(parts[3], 10, 64); err != nil {
				return SAT{}, fmt.Errorf("invalid clause count: %w", err)
			}
			sat.Variables = vars
			seenProblem = true
			continue
		}
		if !seenProblem {
			return SAT{}, fmt.Errorf("clause found before the problem line: %s", line)
		}

		// Clause line; a clause ends at 0 and may span several lines
		for _, field := range strings.Fields(line) {
			literal, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal '%s': %w", field, err)
			}
			if literal == 0 {
				if len(clause) > 0 {
					sat.Clauses = append(sat.Clauses, clause)
				}
				clause = nil
				continue
			}
			if variable := max(literal, -literal); uint64(variable) > sat.Variables {
				return SAT{}, fmt.Errorf("literal %d exceeds the declared %d variables", literal, sat.Variables)
			}
			clause = append(clause, literal)
		}
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("error reading DIMACS: %w", err)
	}
	if !seenProblem {
		return SAT{}, fmt.Errorf("missing problem line")
	}
	if len(clause) > 0 {
		sat.Clauses = append(sat.Clauses, clause)
	}

	return sat, nil
}
