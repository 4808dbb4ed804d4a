package astar

import "errors"

// Sentinel errors returned by the A* variants.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to AStar.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilGrid indicates a nil *gridgraph.Grid was passed to AStarGrid.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// Result is the outcome of one search.
//
// Path is the ordered identifier sequence from start to end; nil means no
// path exists. Distance is the summed weight of the traversed edges or
// cells (+Inf when unreached). Visited lists every identifier moved into
// the closed set, in insertion order, for progressive animation.
type Result struct {
	Path     []string
	Distance float64
	Visited  []string
}

// Found reports whether a path was produced.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Heuristic estimates the remaining cost from one identifier to another.
// It guides which open-set member is expanded next; an estimate that never
// overestimates the true remaining cost keeps the search optimal.
type Heuristic func(from, to string) float64

// Options configures the free-form A* variant.
type Options struct {
	// Heuristic overrides the default Euclidean estimate when non-nil.
	Heuristic Heuristic
}

// Option is a functional option for configuring AStar.
type Option func(*Options)

// WithHeuristic substitutes a custom remaining-cost estimate for the
// default Euclidean one. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
