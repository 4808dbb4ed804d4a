// Package gridgraph implements the grid-mode model of the pathfinding
// engine: a square matrix of integer cell codes with a fixed cell-to-pixel
// scale.
//
// Cell code semantics:
//
//   - CellObstacle (-1): impassable.
//   - CellEmpty     (0): unused; passable at weight 1 when traversed.
//   - CellRoad      (1): plain road, weight 1.
//   - values > 1:        weighted road; the code is the traversal weight
//     (e.g. traffic).
//
// Cells are addressed by (row, col) and by the canonical string key
// "row,col" (Cell.Key / ParseKey), which serves as the node-identifier
// analogue inside the search algorithms. Neighbors uses 4-orthogonal
// connectivity only; obstacles never appear in a neighbor list.
//
// Errors:
//
//	ErrBadSize    - grid size below 1.
//	ErrBadScale   - cell scale is zero or negative.
//	ErrBadCellKey - a key is not of the form "row,col".
package gridgraph
