// Package astar implements best-first A* search between two endpoints, in a
// free-form-graph variant and a grid variant.
//
// The open set is an indexed min-heap ordered by fScore = gScore +
// heuristic; improving a member fixes it in place rather than pushing a
// duplicate. The goal test happens when a candidate is popped, so the
// search exits as soon as the end reaches the front of the open set. The
// Result carries the closed-set insertion order as the visitation trace
// the UI replays as the search animation.
//
// Heuristics:
//
//   - Free-form: straight-line (Euclidean) distance between node positions.
//     Edge weights are user-chosen and may undercut geometric distance, so
//     admissibility is an approximation, not a guarantee; WithHeuristic
//     substitutes any other estimate.
//   - Grid: Manhattan distance |Δrow| + |Δcol|, the minimum step count for
//     4-directional movement. Weighted roads can cost more than one per
//     step, the same known approximation.
//
// Result semantics match package dijkstra: nil Path and +Inf Distance when
// unreached, the trivial single-element path when start == end, and the
// "no path" Result (not an error) for unknown endpoints. Only a nil model
// is an error (ErrNilGraph, ErrNilGrid).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package astar
