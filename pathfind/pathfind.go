package pathfind

import (
	"fmt"

	"github.com/SurajMandal14/pathfinder/astar"
	"github.com/SurajMandal14/pathfinder/dijkstra"
	"github.com/SurajMandal14/pathfinder/gridgraph"
)

// Find runs the selected algorithm between two endpoint identifiers on the
// model's active representation and returns the path, distance, and
// visitation trace.
//
// In free-form mode the endpoints are node identifiers; in grid mode they
// are canonical "row,col" cell keys. Endpoints absent from the model yield
// the normal "no path" Result. Find never mutates the model, and repeated
// calls on an unmodified model return identical results.
func Find(m *Model, algo Algorithm, start, end string) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	switch algo {
	case Dijkstra, AStar:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}

	if m.mode == ModeGrid {
		return findGrid(m.grid, algo, start, end)
	}

	return findGraph(m, algo, start, end)
}

func findGraph(m *Model, algo Algorithm, start, end string) (*Result, error) {
	if algo == AStar {
		r, err := astar.AStar(m.graph, start, end)
		if err != nil {
			return nil, err
		}

		return &Result{Path: r.Path, Distance: r.Distance, Visited: r.Visited}, nil
	}

	r, err := dijkstra.Dijkstra(m.graph, start, end)
	if err != nil {
		return nil, err
	}

	return &Result{Path: r.Path, Distance: r.Distance, Visited: r.Visited}, nil
}

func findGrid(g *gridgraph.Grid, algo Algorithm, start, end string) (*Result, error) {
	from, err := gridgraph.ParseKey(start)
	if err != nil {
		return nil, fmt.Errorf("pathfind: start: %w", err)
	}
	to, err := gridgraph.ParseKey(end)
	if err != nil {
		return nil, fmt.Errorf("pathfind: end: %w", err)
	}

	if algo == AStar {
		r, err := astar.AStarGrid(g, from, to)
		if err != nil {
			return nil, err
		}

		return &Result{Path: r.Path, Distance: r.Distance, Visited: r.Visited}, nil
	}

	r, err := dijkstra.DijkstraGrid(g, from, to)
	if err != nil {
		return nil, err
	}

	return &Result{Path: r.Path, Distance: r.Distance, Visited: r.Visited}, nil
}
