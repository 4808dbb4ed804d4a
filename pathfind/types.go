package pathfind

import (
	"errors"
	"fmt"

	"github.com/SurajMandal14/pathfinder/core"
	"github.com/SurajMandal14/pathfinder/gridgraph"
)

// Sentinel errors for the dispatch façade.
var (
	// ErrUnknownAlgorithm indicates an algorithm name that is neither
	// "dijkstra" nor "astar".
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrNilModel indicates a nil *Model was passed to Find.
	ErrNilModel = errors.New("pathfind: model is nil")
)

// Mode tags which representation a Model currently holds.
type Mode int

const (
	// ModeGraph selects the free-form graph representation.
	ModeGraph Mode = iota
	// ModeGrid selects the cell-grid representation.
	ModeGrid
)

// String returns the mode's display name.
func (m Mode) String() string {
	if m == ModeGrid {
		return "grid"
	}

	return "graph"
}

// Algorithm selects which search Find runs.
type Algorithm int

const (
	// Dijkstra selects the label-setting search.
	Dijkstra Algorithm = iota
	// AStar selects the heuristic best-first search.
	AStar
)

// Wire names accepted by ParseAlgorithm.
const (
	algorithmNameDijkstra = "dijkstra"
	algorithmNameAStar    = "astar"
)

// ParseAlgorithm maps the wire name "dijkstra" or "astar" to its Algorithm.
// Anything else yields ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case algorithmNameDijkstra:
		return Dijkstra, nil
	case algorithmNameAStar:
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// String returns the algorithm's wire name.
func (a Algorithm) String() string {
	if a == AStar {
		return algorithmNameAStar
	}

	return algorithmNameDijkstra
}

// Result is the outcome Find hands to the UI: the ordered identifier path
// (nil when no path exists), the total distance (+Inf when unreached), and
// the visitation trace in reveal order.
type Result struct {
	Path     []string
	Distance float64
	Visited  []string
}

// Found reports whether a path was produced.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Model is the tagged union over the two representations. Exactly one of
// graph and grid is populated at any time; the mode tag selects it.
type Model struct {
	mode  Mode
	graph *core.Graph
	grid  *gridgraph.Grid
}

// NewGraphModel returns a Model in free-form mode with an empty graph.
func NewGraphModel() *Model {
	return &Model{mode: ModeGraph, graph: core.NewGraph()}
}

// NewGridModel returns a Model in grid mode with an all-empty size×size
// grid. Size and scale validation is gridgraph.NewGrid's.
func NewGridModel(size int, cellScale float64) (*Model, error) {
	g, err := gridgraph.NewGrid(size, cellScale)
	if err != nil {
		return nil, err
	}

	return &Model{mode: ModeGrid, grid: g}, nil
}

// Mode returns the representation tag.
func (m *Model) Mode() Mode { return m.mode }

// Graph returns the free-form graph, or false in grid mode.
func (m *Model) Graph() (*core.Graph, bool) {
	if m.mode != ModeGraph {
		return nil, false
	}

	return m.graph, true
}

// Grid returns the cell grid, or false in free-form mode.
func (m *Model) Grid() (*gridgraph.Grid, bool) {
	if m.mode != ModeGrid {
		return nil, false
	}

	return m.grid, true
}

// InitGraph switches the model to free-form mode with a fresh empty graph,
// discarding any grid state and any prior graph state.
func (m *Model) InitGraph() {
	m.mode = ModeGraph
	m.graph = core.NewGraph()
	m.grid = nil
}

// InitGrid switches the model to grid mode with a fresh all-empty
// size×size grid, discarding any free-form state and any prior grid state.
func (m *Model) InitGrid(size int, cellScale float64) error {
	g, err := gridgraph.NewGrid(size, cellScale)
	if err != nil {
		return err
	}
	m.mode = ModeGrid
	m.grid = g
	m.graph = nil

	return nil
}
