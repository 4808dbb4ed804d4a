package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SurajMandal14/pathfinder/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction and cell mutation
//----------------------------------------------------------------------------//

func TestNewGrid_Validation(t *testing.T) {
	_, err := gridgraph.NewGrid(0, 10)
	assert.ErrorIs(t, err, gridgraph.ErrBadSize)

	_, err = gridgraph.NewGrid(3, 0)
	assert.ErrorIs(t, err, gridgraph.ErrBadScale)

	_, err = gridgraph.NewGrid(3, -1)
	assert.ErrorIs(t, err, gridgraph.ErrBadScale)
}

func TestNewGrid_StartsEmpty(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 10.0, g.CellScale())
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			code, ok := g.CellType(row, col)
			require.True(t, ok)
			assert.Equal(t, gridgraph.CellEmpty, code)
		}
	}
}

func TestSetCellType_BoundsChecked(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 10)
	require.NoError(t, err)

	assert.True(t, g.SetCellType(1, 1, gridgraph.CellObstacle))
	code, ok := g.CellType(1, 1)
	require.True(t, ok)
	assert.Equal(t, gridgraph.CellObstacle, code)

	assert.False(t, g.SetCellType(2, 0, gridgraph.CellRoad))
	assert.False(t, g.SetCellType(-1, 0, gridgraph.CellRoad))
	_, ok = g.CellType(0, 2)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func TestNeighbors_OrthogonalOnly(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 10)
	require.NoError(t, err)

	got := g.Neighbors(1, 1)
	require.Len(t, got, 4)
	for _, n := range got {
		// 4-connectivity: each neighbor differs by exactly one step in
		// exactly one axis.
		dr := n.Cell.Row - 1
		dc := n.Cell.Col - 1
		assert.Equal(t, 1, dr*dr+dc*dc)
	}
}

func TestNeighbors_ExcludesObstaclesAndMapsWeights(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 10)
	require.NoError(t, err)
	g.SetCellType(0, 1, gridgraph.CellObstacle)
	g.SetCellType(1, 0, gridgraph.CellRoad)
	g.SetCellType(1, 2, 4) // weighted road (traffic)

	got := g.Neighbors(1, 1)
	require.Len(t, got, 3)

	weights := make(map[string]float64, len(got))
	for _, n := range got {
		weights[n.Cell.Key()] = n.Weight
	}
	assert.NotContains(t, weights, "0,1", "obstacle must never be a neighbor")
	assert.Equal(t, 1.0, weights["1,0"], "plain road weight")
	assert.Equal(t, 4.0, weights["1,2"], "traffic code is the weight")
	assert.Equal(t, 1.0, weights["2,1"], "empty cell traverses at weight 1")
}

func TestNeighbors_CornerAndOutOfBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 10)
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(0, 0), 2)
	assert.Nil(t, g.Neighbors(3, 3))
}

//----------------------------------------------------------------------------//
// Coordinate mapping and keys
//----------------------------------------------------------------------------//

func TestCoordMapping_CellCenterRoundTrip(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 25)
	require.NoError(t, err)

	x, y := g.ToCoord(2, 3)
	assert.Equal(t, 87.5, x)
	assert.Equal(t, 62.5, y)

	cell, ok := g.FromCoord(x, y)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 3}, cell)

	_, ok = g.FromCoord(101, 5)
	assert.False(t, ok)
	_, ok = g.FromCoord(-1, 5)
	assert.False(t, ok)
}

func TestCellKey_RoundTrip(t *testing.T) {
	c := gridgraph.Cell{Row: 7, Col: 12}
	assert.Equal(t, "7,12", c.Key())

	parsed, err := gridgraph.ParseKey("7,12")
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestParseKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "7", "7;12", "a,b", "7,", ",12"} {
		_, err := gridgraph.ParseKey(key)
		assert.ErrorIs(t, err, gridgraph.ErrBadCellKey, "key %q", key)
	}
}

//----------------------------------------------------------------------------//
// Clone
//----------------------------------------------------------------------------//

func TestClone_Independent(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 10)
	require.NoError(t, err)
	g.SetCellType(0, 0, gridgraph.CellRoad)

	c := g.Clone()
	c.SetCellType(0, 0, gridgraph.CellObstacle)

	orig, _ := g.CellType(0, 0)
	assert.Equal(t, gridgraph.CellRoad, orig, "clone mutation must not leak back")
	assert.Equal(t, g.Size(), c.Size())
	assert.Equal(t, g.CellScale(), c.CellScale())
}
