package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra variants.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilGrid indicates a nil *gridgraph.Grid was passed to DijkstraGrid.
	ErrNilGrid = errors.New("dijkstra: grid is nil")
)

// Result is the outcome of one search.
//
// Path is the ordered identifier sequence from start to end; nil means no
// path exists. Distance is the summed weight of the traversed edges or
// cells (+Inf when unreached). Visited lists every identifier settled by
// the algorithm, in settle order, for progressive animation.
type Result struct {
	Path     []string
	Distance float64
	Visited  []string
}

// Found reports whether a path was produced.
func (r *Result) Found() bool { return len(r.Path) > 0 }
