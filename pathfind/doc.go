// Package pathfind is the call contract between the engine and its UI: a
// tagged-union Model holding exactly one representation (free-form graph or
// cell grid), an Algorithm selector parsed from its wire name, and a single
// Find dispatch returning the path, distance, and visitation trace.
//
// The Model owns mode switching: InitGrid discards any free-form state,
// InitGraph discards any grid state, so the two representations are never
// populated simultaneously. Mutations go straight to the active
// representation via Graph() or Grid().
//
// Errors:
//
//	ErrUnknownAlgorithm - algorithm name is neither "dijkstra" nor "astar".
//	ErrNilModel         - a nil *Model was passed to Find.
//
// In grid mode Find parses its endpoints as canonical "row,col" cell keys;
// a malformed key surfaces as gridgraph.ErrBadCellKey with context.
//
// "No path" is never an error: Find returns a Result with a nil Path and
// +Inf Distance, including for endpoints that do not exist in the model.
package pathfind
