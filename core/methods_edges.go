package core

import "sort"

// AddEdge joins two existing nodes with an undirected edge of the given
// weight, storing both directed entries.
//
// Returns ErrNodeNotFound if either endpoint is absent, ErrDuplicateEdge if
// an edge already joins the two nodes in either direction, and ErrBadWeight
// if weight ≤ 0. The returned Edge is the from→to entry.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return nil, ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, ErrNodeNotFound
	}
	if weight <= 0 {
		return nil, ErrBadWeight
	}
	if _, dup := g.edges[edgeKey{from: from, to: to}]; dup {
		return nil, ErrDuplicateEdge
	}
	if _, dup := g.edges[edgeKey{from: to, to: from}]; dup {
		return nil, ErrDuplicateEdge
	}

	fwd := &Edge{From: from, To: to, Weight: weight}
	rev := &Edge{From: to, To: from, Weight: weight}
	g.edges[edgeKey{from: from, to: to}] = fwd
	g.edges[edgeKey{from: to, to: from}] = rev
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}

	return fwd, nil
}

// UpdateEdgeWeight sets a new weight on both directed entries of the edge.
// Returns ErrEdgeNotFound if no edge joins the nodes, ErrBadWeight if
// weight ≤ 0.
// Complexity: O(1).
func (g *Graph) UpdateEdgeWeight(from, to string, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if weight <= 0 {
		return ErrBadWeight
	}
	fwd, ok := g.edges[edgeKey{from: from, to: to}]
	if !ok {
		return ErrEdgeNotFound
	}
	fwd.Weight = weight
	g.edges[edgeKey{from: to, to: from}].Weight = weight

	return nil
}

// RemoveEdge deletes both directed entries of the edge joining the nodes.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[edgeKey{from: from, to: to}]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, edgeKey{from: from, to: to})
	delete(g.edges, edgeKey{from: to, to: from})
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)

	return nil
}

// EdgeBetween returns the directed entry from→to, or false if the nodes are
// not joined in that orientation. Both orientations exist for every stored
// edge, so either ordered pair succeeds.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeKey{from: from, to: to}]

	return e, ok
}

// Neighbors returns the identifiers of all nodes one hop from id, sorted
// for deterministic iteration. An absent node yields an empty slice.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(adj))
	for to := range adj {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every directed entry. The length is twice the number of
// undirected edges.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	es := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		es = append(es, e)
	}

	return es
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges) / 2
}
