package astar

import (
	"container/heap"
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/SurajMandal14/pathfinder/core"
)

// AStar computes a minimum-weight path from start to end in the free-form
// graph g, guided by straight-line distance between node positions (or the
// heuristic supplied via WithHeuristic).
//
// Unknown endpoints produce the "no path" Result (nil Path, +Inf Distance)
// rather than an error; a nil graph produces ErrNilGraph.
// Complexity: O((V + E) log V).
func AStar(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = euclidean(g)
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return noPath(), nil
	}
	if start == end {
		return trivial(start), nil
	}

	s := newSearch(start, end, cfg.Heuristic)
	s.run(func(u string) []step {
		neighbors := g.Neighbors(u)
		steps := make([]step, 0, len(neighbors))
		for _, v := range neighbors {
			e, ok := g.EdgeBetween(u, v)
			if !ok {
				continue
			}
			steps = append(steps, step{to: v, cost: e.Weight})
		}

		return steps
	})

	return s.result(start, end), nil
}

// euclidean is the default free-form heuristic: planar distance between the
// two nodes' positions. Unknown identifiers estimate zero, which merely
// degrades A* toward Dijkstra.
func euclidean(g *core.Graph) Heuristic {
	return func(from, to string) float64 {
		a, okA := g.Node(from)
		b, okB := g.Node(to)
		if !okA || !okB {
			return 0
		}

		return planar.Distance(a.Pos, b.Pos)
	}
}

// step is one outgoing expansion candidate: a neighbor and the cost of the
// step to it.
type step struct {
	to   string
	cost float64
}

// search holds the mutable state of one A* execution; both variants share
// it and differ only in the expansion and heuristic they supply.
type search struct {
	end    string
	h      Heuristic
	gScore map[string]float64
	prev   map[string]string
	closed map[string]bool
	// visited records closed-set insertions in order.
	visited []string
	open    openHeap
	// byID locates the live open-set entry for fix-in-place updates.
	byID map[string]*openItem

	goalReached bool
	goalCost    float64
}

func newSearch(start, end string, h Heuristic) *search {
	s := &search{
		end:    end,
		h:      h,
		gScore: map[string]float64{start: 0},
		prev:   make(map[string]string),
		closed: make(map[string]bool),
		byID:   make(map[string]*openItem),
	}
	heap.Init(&s.open)
	first := &openItem{id: start, g: 0, f: h(start, end)}
	heap.Push(&s.open, first)
	s.byID[start] = first

	return s
}

// run expands open-set members in ascending fScore order until the end is
// popped (early exit) or the open set empties.
func (s *search) run(expand func(u string) []step) {
	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(*openItem)
		u := item.id
		delete(s.byID, u)
		if u == s.end {
			s.goalReached = true
			s.goalCost = item.g
			return
		}
		s.closed[u] = true
		s.visited = append(s.visited, u)

		for _, st := range expand(u) {
			if s.closed[st.to] {
				continue
			}
			tentative := item.g + st.cost
			cur, seen := s.gScore[st.to]
			if seen && tentative >= cur {
				continue
			}
			s.gScore[st.to] = tentative
			s.prev[st.to] = u
			f := tentative + s.h(st.to, s.end)
			if live, inOpen := s.byID[st.to]; inOpen {
				live.g = tentative
				live.f = f
				heap.Fix(&s.open, live.index)
			} else {
				next := &openItem{id: st.to, g: tentative, f: f}
				heap.Push(&s.open, next)
				s.byID[st.to] = next
			}
		}
	}
}

// result reconstructs the path when the goal was reached, or reports the
// "no path" outcome with the accumulated visitation trace.
func (s *search) result(start, end string) *Result {
	if !s.goalReached {
		return &Result{Distance: math.Inf(1), Visited: s.visited}
	}

	path := []string{end}
	for cur := end; cur != start; {
		p, ok := s.prev[cur]
		if !ok {
			return &Result{Distance: math.Inf(1), Visited: s.visited}
		}
		path = append(path, p)
		cur = p
	}
	reverse(path)

	return &Result{Path: path, Distance: s.goalCost, Visited: s.visited}
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

// openItem is one open-set member with its cost-so-far g, priority f, and
// heap index for fix-in-place updates.
type openItem struct {
	id    string
	g     float64
	f     float64
	index int
}

// openHeap is an indexed min-heap of *openItem ordered by f ascending.
type openHeap []*openItem

func (h openHeap) Len() int           { return len(h) }
func (h openHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}
