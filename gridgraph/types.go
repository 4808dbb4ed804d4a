package gridgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadSize indicates a grid size below the minimum of 1.
	ErrBadSize = errors.New("gridgraph: grid size must be at least 1")

	// ErrBadScale indicates a zero or negative cell-to-pixel scale.
	ErrBadScale = errors.New("gridgraph: cell scale must be positive")

	// ErrBadCellKey indicates a cell key not of the form "row,col".
	ErrBadCellKey = errors.New("gridgraph: malformed cell key")
)

// Cell codes. Any code above CellRoad is a weighted road whose value is its
// traversal weight.
const (
	// CellObstacle marks an impassable cell.
	CellObstacle = -1
	// CellEmpty marks an unused cell; passable at weight 1 when traversed.
	CellEmpty = 0
	// CellRoad marks a plain road of weight 1.
	CellRoad = 1
)

// cellKeyFmt is the canonical "row,col" key scheme shared with the search
// algorithms.
const cellKeyFmt = "%d,%d"

// Cell addresses one grid cell by (row, col).
type Cell struct {
	Row int
	Col int
}

// Key renders the canonical "row,col" identifier for the cell.
func (c Cell) Key() string {
	return fmt.Sprintf(cellKeyFmt, c.Row, c.Col)
}

// ParseKey parses a canonical "row,col" identifier back into a Cell.
// Returns ErrBadCellKey for anything else.
func ParseKey(key string) (Cell, error) {
	sep := strings.IndexByte(key, ',')
	if sep < 0 {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellKey, key)
	}
	row, err := strconv.Atoi(key[:sep])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellKey, key)
	}
	col, err := strconv.Atoi(key[sep+1:])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellKey, key)
	}

	return Cell{Row: row, Col: col}, nil
}

// Neighbor is one traversable cell adjacent to a query cell, carrying its
// traversal weight (cell code, with CellEmpty promoted to weight 1).
type Neighbor struct {
	Cell   Cell
	Weight float64
}

// Grid is the grid-mode model: a size×size matrix of cell codes plus the
// fixed cell-to-pixel scale. The zero value is not usable; construct with
// NewGrid.
type Grid struct {
	size      int
	cellScale float64
	cells     [][]int
}
