package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SurajMandal14/pathfinder/core"
	"github.com/SurajMandal14/pathfinder/dijkstra"
)

// triangle builds the A(0,0)—B(10,0)—C(10,10) board with edges A-B 1,
// B-C 1, A-C 5 and returns the graph plus the three identifiers.
func triangle(t *testing.T) (*core.Graph, string, string, string) {
	t.Helper()
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(10, 0)
	c := g.AddNode(10, 10)
	for _, e := range []struct {
		from, to string
		w        float64
	}{{a, b, 1}, {b, c, 1}, {a, c, 5}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g, a, b, c
}

//----------------------------------------------------------------------------//
// Validation and graceful failure
//----------------------------------------------------------------------------//

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, "a", "b")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnknownEndpointsAreNoPath(t *testing.T) {
	g, a, _, _ := triangle(t)

	for _, pair := range [][2]string{{"ghost", a}, {a, "ghost"}, {"x", "y"}} {
		res, err := dijkstra.Dijkstra(g, pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, res.Found())
		assert.Nil(t, res.Path)
		assert.True(t, math.IsInf(res.Distance, 1))
		assert.Empty(t, res.Visited)
	}
}

//----------------------------------------------------------------------------//
// Shortest paths
//----------------------------------------------------------------------------//

func TestDijkstra_TriangleTakesDetour(t *testing.T) {
	g, a, b, c := triangle(t)

	res, err := dijkstra.Dijkstra(g, a, c)
	require.NoError(t, err)

	assert.Equal(t, []string{a, b, c}, res.Path)
	assert.Equal(t, 2.0, res.Distance)
	assert.Equal(t, a, res.Visited[0], "start settles first")
	assert.Contains(t, res.Visited, c, "end settles last")
}

func TestDijkstra_MatchesBruteForceOnDiamond(t *testing.T) {
	// Diamond with a shortcut:
	//   a—b 2, a—c 4, b—c 1, b—d 7, c—d 3.
	// Enumerating every simple a→d route: a-b-d=9, a-c-d=7,
	// a-b-c-d=6, a-c-b-d=12. Minimum is 6.
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(1, 0)
	c := g.AddNode(0, 1)
	d := g.AddNode(1, 1)
	for _, e := range []struct {
		from, to string
		w        float64
	}{{a, b, 2}, {a, c, 4}, {b, c, 1}, {b, d, 7}, {c, d, 3}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	res, err := dijkstra.Dijkstra(g, a, d)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Distance)
	assert.Equal(t, []string{a, b, c, d}, res.Path)
}

func TestDijkstra_StartEqualsEnd(t *testing.T) {
	g, a, _, _ := triangle(t)

	res, err := dijkstra.Dijkstra(g, a, a)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, res.Path)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []string{a}, res.Visited)
}

func TestDijkstra_DisconnectedVisitsOnlyStartComponent(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(1, 0)
	far := g.AddNode(50, 50)
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, a, far)
	require.NoError(t, err)

	assert.False(t, res.Found())
	assert.True(t, math.IsInf(res.Distance, 1))
	assert.ElementsMatch(t, []string{a, b}, res.Visited,
		"visited is everything reachable from start")
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

func TestDijkstra_Idempotent(t *testing.T) {
	g, a, _, c := triangle(t)

	first, err := dijkstra.Dijkstra(g, a, c)
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(g, a, c)
	require.NoError(t, err)

	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Distance, second.Distance)
	assert.Equal(t, first.Visited, second.Visited)
}
