// Package core implements the free-form graph model of the pathfinding
// engine: nodes with 2D positions and display labels, joined by undirected
// weighted edges.
//
// What:
//
//   - Graph stores nodes keyed by generated unique IDs and edges keyed by a
//     structural (from, to) pair. Every undirected edge is held as two
//     directed entries sharing one weight, so a lookup by either ordered
//     pair succeeds.
//   - Mutations (AddNode, RemoveNode, AddEdge, UpdateEdgeWeight, RemoveEdge)
//     act in place; the caller owns any snapshotting at the UI boundary.
//   - NearestNode answers position hit-testing via an R-tree index kept in
//     sync with node mutations.
//
// Invariants:
//
//   - At most one edge pair may exist between two nodes; AddEdge rejects a
//     duplicate in either direction with ErrDuplicateEdge.
//   - Edge weights are strictly positive (ErrBadWeight otherwise).
//   - Removing a node removes every edge touching it, both directions.
//
// Concurrency: all operations take the graph's RWMutex, so a Graph may be
// shared across goroutines. The engine itself never requires it (searches
// run synchronously over a snapshot), but the guarantee is kept uniform.
//
// Errors:
//
//	ErrNodeNotFound  - an endpoint does not exist.
//	ErrEdgeNotFound  - the requested edge pair does not exist.
//	ErrDuplicateEdge - an edge already joins the two nodes.
//	ErrBadWeight     - weight is zero or negative.
package core
