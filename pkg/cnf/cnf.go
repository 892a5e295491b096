// Package cnf encodes exact-one placement constraints in conjunctive normal form.
package cnf

import (
	"encoding/json"
	"fmt"
)

// Variable is the boolean "point carries label" for one (label, point) pair
type Variable[P comparable] struct {
	Label int
	Point P
}

func (v Variable[P]) Pos() Literal[P] {
	return Literal[P]{Value: v.Label, Point: v.Point}
}

func (v Variable[P]) Neg() Literal[P] {
	return Literal[P]{Value: -v.Label, Point: v.Point}
}

func (v Variable[P]) String() string {
	return fmt.Sprintf("%d%v", v.Label, v.Point)
}

// Literal is a signed label paired with a point: a positive value states that the point carries the label, a negative one that it does not
type Literal[P comparable] struct {
	Value int
	Point P
}

func (l Literal[P]) Label() int {
	if l.Value < 0 {
		return -l.Value
	}
	return l.Value
}

func (l Literal[P]) Positive() bool {
	return l.Value > 0
}

func (l Literal[P]) Variable() Variable[P] {
	return Variable[P]{Label: l.Label(), Point: l.Point}
}

func (l Literal[P]) Negate() Literal[P] {
	return Literal[P]{Value: -l.Value, Point: l.Point}
}

// MarshalJSON writes the literal as the pair [value, point]
func (l Literal[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{l.Value, l.Point})
}

func (l *Literal[P]) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("literal must be a [value, point] pair: %s", data)
	}

	var value int
	if err := json.Unmarshal(pair[0], &value); err != nil {
		return fmt.Errorf("invalid literal value: %w", err)
	} else if value == 0 {
		return fmt.Errorf("literal value cannot be zero: %s", data)
	}

	var point P
	if err := json.Unmarshal(pair[1], &point); err != nil {
		return fmt.Errorf("invalid literal point: %w", err)
	}

	l.Value, l.Point = value, point
	return nil
}

// Clause is the disjunction of its literals
type Clause[P comparable] []Literal[P]

// CNF is the conjunction of its clauses
type CNF[P comparable] []Clause[P]

// Variables returns every variable referenced by the formula in order of first appearance
func (formula CNF[P]) Variables() []Variable[P] {
	seen := make(map[Variable[P]]bool)
	variables := make([]Variable[P], 0)
	for _, clause := range formula {
		for _, literal := range clause {
			variable := literal.Variable()
			if !seen[variable] {
				seen[variable] = true
				variables = append(variables, variable)
			}
		}
	}
	return variables
}
