// Package pathfinder is the engine behind an interactive shortest-path
// visualizer: build a weighted board — free-form graph or cell grid — then
// watch Dijkstra and A* explore it and report a route.
//
// Everything is organized under per-concern subpackages:
//
//	core/       — free-form graph model: positioned nodes, undirected weighted edges
//	gridgraph/  — grid model: cell codes, obstacles, traffic weights, pixel mapping
//	dijkstra/   — label-setting search, free-form + grid variants
//	astar/      — heuristic best-first search, free-form + grid variants
//	pathfind/   — mode/algorithm dispatch façade consumed by the UI layer
//	builder/    — seeded demo boards: noise terrain grids, random graphs
//
// Each search returns the path, its total distance, and the visitation
// trace in reveal order, which the UI replays as the search animation.
// Rendering, editing interactions, and presentation state live outside
// this module.
package pathfinder
