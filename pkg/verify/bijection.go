package verify

import (
	"fmt"

	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Bijection reads the point-to-label mapping an assignment encodes. It fails unless the positive
// literals form a perfect matching between the points and the labels mentioned by the assignment.
func Bijection[P comparable](assignment []cnf.Literal[P]) (map[P]int, error) {
	if len(assignment) == 0 {
		return nil, fmt.Errorf("%w: empty assignment", cnf.ErrNotBijection)
	}

	points := lo.Uniq(lo.Map(assignment, func(literal cnf.Literal[P], _ int) P { return literal.Point }))
	labels := lo.Uniq(lo.Map(assignment, func(literal cnf.Literal[P], _ int) int { return literal.Label() }))
	positives := lo.Uniq(lo.FilterMap(assignment, func(literal cnf.Literal[P], _ int) (cnf.Variable[P], bool) {
		return literal.Variable(), literal.Positive()
	}))

	if len(points) != len(labels) {
		return nil, fmt.Errorf("%w: %d points against %d labels", cnf.ErrNotBijection, len(points), len(labels))
	} else if len(positives) != len(points) {
		return nil, fmt.Errorf("%w: %d positive literals for %d points", cnf.ErrNotBijection, len(positives), len(points))
	}

	edges := make(map[cnf.Variable[P]]bool, len(positives))
	for _, variable := range positives {
		edges[variable] = true
	}

	// Build neighbors predicate based on positive literals
	neighbors := func(pointAny any, labelAny any) (bool, error) {
		point := pointAny.(P)
		label := labelAny.(int)
		return edges[cnf.Variable[P]{Label: label, Point: point}], nil
	}

	pointsAny, labelsAny := lo.Map(points, func(point P, _ int) any { return point }), lo.Map(labels, func(label int, _ int) any { return label })

	graph, err := bipartitegraph.NewBipartiteGraph(pointsAny, labelsAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := graph.LargestMatching()
	if len(matching) < len(points) {
		return nil, fmt.Errorf("%w: only %d of %d points can be matched", cnf.ErrNotBijection, len(matching), len(points))
	}

	bijection := make(map[P]int, len(points))
	for _, edge := range matching {
		pointIndex, labelIndex := edge.Node1, edge.Node2-len(points)
		bijection[points[pointIndex]] = labels[labelIndex]
	}
	return bijection, nil
}
