package dijkstra

import (
	"container/heap"
	"math"

	"github.com/SurajMandal14/pathfinder/core"
)

// Dijkstra computes the minimum-weight path from start to end in the
// free-form graph g.
//
// Unknown endpoints produce the "no path" Result (nil Path, +Inf Distance)
// rather than an error; a nil graph produces ErrNilGraph.
// Complexity: O((V + E) log V).
func Dijkstra(g *core.Graph, start, end string) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return noPath(), nil
	}
	if start == end {
		return trivial(start), nil
	}

	r := &runner{
		dist: map[string]float64{start: 0},
		prev: make(map[string]string),
	}
	r.settled = make(map[string]bool)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{id: start, dist: 0})

	r.run(end, func(u string) []arc {
		neighbors := g.Neighbors(u)
		arcs := make([]arc, 0, len(neighbors))
		for _, v := range neighbors {
			e, ok := g.EdgeBetween(u, v)
			if !ok {
				continue
			}
			arcs = append(arcs, arc{to: v, weight: e.Weight})
		}

		return arcs
	})

	return r.result(start, end), nil
}

// arc is one outgoing relaxation candidate: a neighbor and the weight of
// the step to it.
type arc struct {
	to     string
	weight float64
}

// runner holds the mutable state of one search; both variants share it and
// differ only in the neighbor expansion they supply to run.
type runner struct {
	dist    map[string]float64
	prev    map[string]string
	settled map[string]bool
	visited []string
	pq      pqHeap
}

// run is the label-setting loop: settle the closest unsettled candidate,
// stop when end is settled, relax its outgoing arcs.
func (r *runner) run(end string, expand func(u string) []arc) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)
		u := item.id
		if r.settled[u] {
			// Stale lazy-decrease-key entry.
			continue
		}
		r.settled[u] = true
		r.visited = append(r.visited, u)
		if u == end {
			return
		}
		for _, a := range expand(u) {
			if r.settled[a.to] {
				continue
			}
			nd := r.dist[u] + a.weight
			cur, seen := r.dist[a.to]
			if seen && nd >= cur {
				continue
			}
			r.dist[a.to] = nd
			r.prev[a.to] = u
			heap.Push(&r.pq, &pqItem{id: a.to, dist: nd})
		}
	}
}

// result reconstructs the path by walking predecessor links back from end.
// An end that was never reached has no predecessor chain and yields the
// "no path" Result with the accumulated visitation trace.
func (r *runner) result(start, end string) *Result {
	d, reached := r.dist[end]
	if !reached || !r.settled[end] {
		return &Result{Distance: math.Inf(1), Visited: r.visited}
	}

	path := []string{end}
	for cur := end; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			return &Result{Distance: math.Inf(1), Visited: r.visited}
		}
		path = append(path, p)
		cur = p
	}
	reverse(path)

	return &Result{Path: path, Distance: d, Visited: r.visited}
}

// noPath is the graceful failure Result for unknown or unreachable
// endpoints.
func noPath() *Result {
	return &Result{Distance: math.Inf(1)}
}

// trivial is the start==end Result: a single-element path at distance
// zero.
func trivial(start string) *Result {
	return &Result{Path: []string{start}, Distance: 0, Visited: []string{start}}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// pqItem is one (identifier, tentative distance) heap entry.
type pqItem struct {
	id   string
	dist float64
}

// pqHeap is a min-heap of *pqItem under the lazy-decrease-key strategy:
// improvements push duplicates, stale entries are skipped on pop.
type pqHeap []*pqItem

func (pq pqHeap) Len() int            { return len(pq) }
func (pq pqHeap) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq pqHeap) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pqHeap) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *pqHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
