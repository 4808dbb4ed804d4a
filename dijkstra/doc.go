// Package dijkstra implements Dijkstra's label-setting shortest-path search
// between two endpoints, in a free-form-graph variant and a grid variant.
//
// Both variants process candidates in order of increasing distance using a
// min-heap with the lazy-decrease-key strategy (duplicates pushed, stale
// entries skipped), relax neighbor distances, and stop as soon as the end
// point is settled or the heap empties. Alongside the path and its total
// distance, the Result carries the settle-order visitation trace that the
// UI replays as the search animation.
//
// Complexity (per search):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Result semantics:
//
//   - Path is nil when the end is unreachable; Distance is +Inf then.
//   - Start == end yields the trivial Path=[start], Distance=0.
//   - Unknown endpoints yield the "no path" Result, not an error; only a
//     nil model is an error (ErrNilGraph, ErrNilGrid).
//
// Weights are assumed non-negative; the models enforce this at mutation
// time, so no pre-scan is needed here.
package dijkstra
