package astar

import (
	"math"

	"github.com/SurajMandal14/pathfinder/gridgraph"
)

// AStarGrid computes a minimum-weight path from start to end over the grid,
// using "row,col" cell keys as identifiers and Manhattan distance as the
// heuristic.
//
// Traversable steps come from gridgraph.Neighbors: in-bounds non-obstacle
// cells, empty cells at weight 1. Out-of-bounds endpoints produce the
// "no path" Result rather than an error; a nil grid produces ErrNilGrid.
// Complexity: O(N² log N) for an N×N grid.
func AStarGrid(g *gridgraph.Grid, start, end gridgraph.Cell) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.Row, start.Col) || !g.InBounds(end.Row, end.Col) {
		return noPath(), nil
	}
	startKey, endKey := start.Key(), end.Key()
	if startKey == endKey {
		return trivial(startKey), nil
	}

	// cells resolves every discovered key back to its coordinates, so the
	// hot loop never parses key strings.
	cells := map[string]gridgraph.Cell{startKey: start, endKey: end}
	h := func(fromKey, _ string) float64 {
		from := cells[fromKey]

		return manhattan(from, end)
	}

	s := newSearch(startKey, endKey, h)
	s.run(func(u string) []step {
		cell := cells[u]
		neighbors := g.Neighbors(cell.Row, cell.Col)
		steps := make([]step, 0, len(neighbors))
		for _, n := range neighbors {
			key := n.Cell.Key()
			cells[key] = n.Cell
			steps = append(steps, step{to: key, cost: n.Weight})
		}

		return steps
	})

	return s.result(startKey, endKey), nil
}

// manhattan is |Δrow| + |Δcol|, the minimum number of 4-directional steps
// between two cells.
func manhattan(a, b gridgraph.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}
