// Package builder generates demo boards for the pathfinding engine:
// procedural terrain grids and randomized free-form graphs, both
// deterministic for a fixed seed so a demo scene can be reproduced.
//
// Terrain rasterizes a smooth noise field into cell codes: troughs become
// obstacles, the midband plain roads, and peaks weighted roads whose code
// models traffic. RandomGraph scatters nodes over a board and joins each to
// its nearest neighbors with weights derived from geometric distance,
// rounded up so the straight-line heuristic never overestimates on
// generated boards.
//
// Errors:
//
//	ErrTooFewNodes   - requested node count below 1.
//	ErrBadDimensions - non-positive board width or height.
//	ErrBadLevels     - obstacle level not below traffic level.
//	ErrBadDegree     - requested neighbor degree below 1.
package builder
