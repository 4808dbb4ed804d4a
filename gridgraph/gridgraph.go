package gridgraph

import "math"

// neighborOffsets lists the 4-orthogonal offsets (up, right, down, left).
// No diagonals: grid movement is 4-directional by contract.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// NewGrid constructs an all-empty size×size grid with the given
// cell-to-pixel scale.
// Returns ErrBadSize if size < 1, ErrBadScale if cellScale ≤ 0.
// Complexity: O(size²).
func NewGrid(size int, cellScale float64) (*Grid, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if cellScale <= 0 {
		return nil, ErrBadScale
	}
	cells := make([][]int, size)
	for r := range cells {
		cells[r] = make([]int, size)
	}

	return &Grid{size: size, cellScale: cellScale, cells: cells}, nil
}

// Size returns the grid dimension N (the grid is N×N).
func (g *Grid) Size() int { return g.size }

// CellScale returns the fixed cell-to-pixel scale factor.
func (g *Grid) CellScale() float64 { return g.cellScale }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// SetCellType writes the cell code at (row, col) and reports success.
// Out-of-bounds coordinates fail without side effect.
// Complexity: O(1).
func (g *Grid) SetCellType(row, col, code int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[row][col] = code

	return true
}

// CellType returns the cell code at (row, col), or false when out of bounds.
// Complexity: O(1).
func (g *Grid) CellType(row, col int) (int, bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}

	return g.cells[row][col], true
}

// IsRoad reports whether the in-bounds cell carries a road code (≥ CellRoad).
// Complexity: O(1).
func (g *Grid) IsRoad(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col] >= CellRoad
}

// Neighbors returns the traversable 4-orthogonal neighbors of (row, col):
// in bounds and not an obstacle. Each neighbor carries its traversal weight,
// the neighbor's own cell code with CellEmpty promoted to weight 1.
// Order is fixed (up, right, down, left) for deterministic exploration.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) []Neighbor {
	if !g.InBounds(row, col) {
		return nil
	}
	out := make([]Neighbor, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		code := g.cells[nr][nc]
		if code == CellObstacle {
			continue
		}
		w := float64(code)
		if code == CellEmpty {
			w = 1
		}
		out = append(out, Neighbor{Cell: Cell{Row: nr, Col: nc}, Weight: w})
	}

	return out
}

// ToCoord maps a cell to pixel coordinates using the cell-center convention.
// Complexity: O(1).
func (g *Grid) ToCoord(row, col int) (x, y float64) {
	x = (float64(col) + 0.5) * g.cellScale
	y = (float64(row) + 0.5) * g.cellScale

	return x, y
}

// FromCoord maps pixel coordinates back to the containing cell, or false
// when the point lies outside the grid.
// Complexity: O(1).
func (g *Grid) FromCoord(x, y float64) (Cell, bool) {
	c := Cell{
		Row: int(math.Floor(y / g.cellScale)),
		Col: int(math.Floor(x / g.cellScale)),
	}
	if !g.InBounds(c.Row, c.Col) {
		return Cell{}, false
	}

	return c, true
}

// Clone returns a deep copy of the grid, for snapshotting at the UI
// boundary.
// Complexity: O(size²).
func (g *Grid) Clone() *Grid {
	cells := make([][]int, g.size)
	for r := range cells {
		cells[r] = make([]int, g.size)
		copy(cells[r], g.cells[r])
	}

	return &Grid{size: g.size, cellScale: g.cellScale, cells: cells}
}
