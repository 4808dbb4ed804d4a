package builder

import (
	"math"
	"math/rand"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/SurajMandal14/pathfinder/core"
)

// defaultDegree is how many nearest neighbors each scattered node is
// joined to.
const defaultDegree = 3

// GraphOptions tunes randomized free-form board generation.
type GraphOptions struct {
	// Seed fixes node placement; equal seeds produce equal boards.
	Seed int64
	// Degree is how many nearest neighbors each node is joined to.
	Degree int
}

// GraphOption is a functional option for RandomGraph.
type GraphOption func(*GraphOptions)

// WithGraphSeed fixes the generator seed.
func WithGraphSeed(seed int64) GraphOption {
	return func(o *GraphOptions) { o.Seed = seed }
}

// WithDegree sets how many nearest neighbors each node is joined to.
func WithDegree(degree int) GraphOption {
	return func(o *GraphOptions) { o.Degree = degree }
}

// RandomGraph scatters n nodes uniformly over a width×height board and
// joins each to its nearest neighbors. Edge weight is the Euclidean
// distance rounded up to at least 1, so generated boards keep the
// straight-line heuristic admissible.
// Complexity: O(n² log n) (pairwise distances; demo scale).
func RandomGraph(n int, width, height float64, opts ...GraphOption) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	cfg := GraphOptions{Seed: defaultSeed, Degree: defaultDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Degree < 1 {
		return nil, ErrBadDegree
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := core.NewGraph()

	ids := make([]string, n)
	positions := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		x := rng.Float64() * width
		y := rng.Float64() * height
		ids[i] = g.AddNode(x, y)
		positions[i] = orb.Point{x, y}
	}

	for i := range ids {
		for _, j := range nearest(positions, i, cfg.Degree) {
			w := math.Ceil(planar.Distance(positions[i], positions[j]))
			if w < 1 {
				w = 1
			}
			// A neighbor pair is usually seen from both ends; the second
			// attempt is rejected as a duplicate and skipped.
			if _, err := g.AddEdge(ids[i], ids[j], w); err != nil && err != core.ErrDuplicateEdge {
				return nil, err
			}
		}
	}

	return g, nil
}

// nearest returns the indices of the k points closest to points[i].
func nearest(points []orb.Point, i, k int) []int {
	order := make([]int, 0, len(points)-1)
	for j := range points {
		if j != i {
			order = append(order, j)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return planar.DistanceSquared(points[i], points[order[a]]) <
			planar.DistanceSquared(points[i], points[order[b]])
	})
	if len(order) > k {
		order = order[:k]
	}

	return order
}
