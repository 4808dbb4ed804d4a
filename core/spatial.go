package core

import "github.com/dhconnelly/rtreego"

// R-tree branching factors and the point-rect tolerance used when storing
// node positions as degenerate rectangles.
const (
	minBranch = 2
	maxBranch = 16
	pointTol  = 1e-6
)

// nodeEntry wraps a node position for R-tree storage.
type nodeEntry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.rect }

// indexInsert adds the node to the spatial index. Caller holds g.mu.
func (g *Graph) indexInsert(n *Node) {
	entry := &nodeEntry{
		id:   n.ID,
		rect: rtreego.Point{n.X(), n.Y()}.ToRect(pointTol),
	}
	g.entries[n.ID] = entry
	g.index.Insert(entry)
}

// indexRemove drops the node's entry from the spatial index. Caller holds g.mu.
func (g *Graph) indexRemove(n *Node) {
	if entry, ok := g.entries[n.ID]; ok {
		g.index.Delete(entry)
		delete(g.entries, n.ID)
	}
}

// NearestNode returns the identifier of the node closest to (x, y), or false
// when the graph has no nodes. Intended for position hit-testing at the UI
// boundary (click-to-select).
// Complexity: O(log V) expected.
func (g *Graph) NearestNode(x, y float64) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return "", false
	}
	nearest := g.index.NearestNeighbor(rtreego.Point{x, y})
	entry, ok := nearest.(*nodeEntry)
	if !ok {
		return "", false
	}

	return entry.id, true
}
