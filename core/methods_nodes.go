package core

import (
	"sort"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// AddNode creates a node at (x, y), assigns it a fresh unique identifier and
// the next sequential display label, and returns the identifier.
// AddNode always succeeds.
// Complexity: O(log V) (spatial index insertion).
func (g *Graph) AddNode(x, y float64) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := &Node{
		ID:    uuid.NewString(),
		Pos:   orb.Point{x, y},
		Label: string(labelAlphabet[g.nextLabel%len(labelAlphabet)]),
	}
	g.nextLabel++

	g.nodes[n.ID] = n
	g.adjacency[n.ID] = make(map[string]struct{})
	g.indexInsert(n)

	return n.ID
}

// RemoveNode deletes the node and every edge referencing it, in both
// directions. Removing an absent node is a no-op.
// Complexity: O(deg(v) + log V).
func (g *Graph) RemoveNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return
	}

	// Cascade: drop both directed entries for every incident edge.
	for to := range g.adjacency[id] {
		delete(g.edges, edgeKey{from: id, to: to})
		delete(g.edges, edgeKey{from: to, to: id})
		delete(g.adjacency[to], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)
	g.indexRemove(n)
}

// HasNode reports whether the node exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given identifier, or false if absent.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n, ok
}

// Nodes returns all node identifiers in sorted order for deterministic
// iteration.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
