package dijkstra

import (
	"container/heap"

	"github.com/SurajMandal14/pathfinder/gridgraph"
)

// DijkstraGrid computes the minimum-weight path from start to end over the
// grid, using "row,col" cell keys as identifiers.
//
// The search universe is every road cell (code ≥ 1) plus the start and end
// cells regardless of their codes, so a non-road endpoint is still
// permitted. Step weights come from gridgraph.Neighbors (neighbor cell
// code, empty promoted to 1); obstacles are never entered.
//
// Out-of-bounds endpoints produce the "no path" Result rather than an
// error; a nil grid produces ErrNilGrid.
// Complexity: O(N² log N) for an N×N grid.
func DijkstraGrid(g *gridgraph.Grid, start, end gridgraph.Cell) (*Result, error) {
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

	// Track only reachable-relevant cells: roads plus the two endpoints.
	universe := map[string]gridgraph.Cell{
		startKey: start,
		endKey:   end,
	}
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if g.IsRoad(row, col) {
				c := gridgraph.Cell{Row: row, Col: col}
				universe[c.Key()] = c
			}
		}
	}

	r := &runner{
		dist:    map[string]float64{startKey: 0},
		prev:    make(map[string]string),
		settled: make(map[string]bool, len(universe)),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{id: startKey, dist: 0})

	r.run(endKey, func(u string) []arc {
		cell := universe[u]
		neighbors := g.Neighbors(cell.Row, cell.Col)
		arcs := make([]arc, 0, len(neighbors))
		for _, n := range neighbors {
			key := n.Cell.Key()
			if _, tracked := universe[key]; !tracked {
				continue
			}
			arcs = append(arcs, arc{to: key, weight: n.Weight})
		}

		return arcs
	})

	return r.result(startKey, endKey), nil
}
