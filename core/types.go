package core

import (
	"errors"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an edge already joins the two nodes
	// (in either direction).
	ErrDuplicateEdge = errors.New("core: edge already exists between nodes")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")
)

// labelAlphabet provides the sequential display labels 'A'..'Z'.
// Labels cycle past 26 nodes and are therefore not unique beyond that;
// the identifier, not the label, is the canonical handle.
const labelAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Node is a point in the free-form graph.
//
// ID uniquely identifies the node within its Graph and never changes.
// Pos is the node's 2D position in board coordinates.
// Label is the display name derived from creation order ('A', 'B', …).
type Node struct {
	ID    string
	Pos   orb.Point
	Label string
}

// X returns the horizontal coordinate of the node's position.
func (n *Node) X() float64 { return n.Pos.X() }

// Y returns the vertical coordinate of the node's position.
func (n *Node) Y() float64 { return n.Pos.Y() }

// Edge is one directed entry of an undirected weighted connection.
// Both entries of a pair (From→To and To→From) share the same Weight.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// edgeKey addresses one directed entry structurally; no string
// concatenation or parsing is involved in edge storage.
type edgeKey struct {
	from string
	to   string
}

// Graph is the in-memory free-form graph model.
//
// mu guards all maps and the spatial index. nextLabel counts created nodes
// for label derivation and never decreases, so labels reflect creation
// order even after removals.
type Graph struct {
	mu sync.RWMutex

	nextLabel int
	nodes     map[string]*Node
	edges     map[edgeKey]*Edge

	// adjacency[from][to] exists iff a directed entry from→to is stored.
	adjacency map[string]map[string]struct{}

	// index answers nearest-node queries; entries mirror nodes exactly.
	index   *rtreego.Rtree
	entries map[string]*nodeEntry
}

// NewGraph creates an empty free-form graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[edgeKey]*Edge),
		adjacency: make(map[string]map[string]struct{}),
		index:     rtreego.NewTree(2, minBranch, maxBranch),
		entries:   make(map[string]*nodeEntry),
	}
}
