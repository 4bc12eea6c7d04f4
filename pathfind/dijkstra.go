package pathfind

import (
	"container/heap"
	"math"
	"time"

	"github.com/avikorn/skygraph/core"
)

// Dijkstra finds the minimum-weight path from origin to destination,
// honoring any constraint options. Edge weights are assumed non-negative;
// the engine does not validate this.
//
// An absent origin or destination yields Found=false with zero statistics
// and no queue work. origin == destination yields a zero-hop, zero-weight
// path: the origin settles immediately and the loop breaks before any
// relaxation.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g core.Graph, origin, destination string, opts ...Option) PathResult {
	return run(g, origin, destination, nil, opts)
}

// run executes the shared Dijkstra/A* state machine. A nil heuristic means
// pure Dijkstra ordering (priority key = g alone).
func run(g core.Graph, origin, destination string, h Heuristic, opts []Option) PathResult {
	start := time.Now()

	// 1) Apply per-query options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Absent endpoints: a valid negative result, no search work.
	if g == nil || !g.HasNode(origin) || !g.HasNode(destination) {
		return PathResult{Elapsed: time.Since(start)}
	}

	// 3) Run the state machine.
	r := &runner{
		g:           g,
		destination: destination,
		heuristic:   h,
		constraints: cfg.constraints,
		dist:        make(map[string]float64),
		prevNode:    make(map[string]string),
		prevAirline: make(map[string]string),
		settled:     make(map[string]bool),
	}
	r.search(origin)

	// 4) Package the outcome.
	return r.result(origin, start)
}

// runner holds the mutable state of a single search execution.
type runner struct {
	g           core.Graph
	destination string
	heuristic   Heuristic // nil for Dijkstra
	constraints Constraints

	dist        map[string]float64 // best known distance; absent key = +Inf
	prevNode    map[string]string  // predecessor on the best known path
	prevAirline map[string]string  // carrier of the leg into the node
	settled     map[string]bool    // finalized nodes

	pq pathPQ

	nodesVisited int
	edgesRelaxed int
}

// distance returns the best known distance to v, +Inf when undiscovered.
func (r *runner) distance(v string) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// priority computes the heap key for v at accumulated weight g.
func (r *runner) priority(v string, g float64) float64 {
	if r.heuristic == nil {
		return g
	}

	return g + r.heuristic(v, r.destination)
}

// search runs the main loop: pop the minimum, settle it, stop at the
// destination, otherwise relax its outgoing edges.
func (r *runner) search(origin string) {
	// Seed the frontier with the origin at distance zero.
	r.dist[origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pathItem{node: origin, priority: r.priority(origin, 0), stops: 0})

	for r.pq.Len() > 0 {
		// 1) Pop the smallest-priority frontier entry.
		item := heap.Pop(&r.pq).(*pathItem)

		// 2) Skip stale lazy-decrease-key duplicates.
		if r.settled[item.node] {
			continue
		}

		// 3) Settle: the node's distance is now final.
		r.settled[item.node] = true
		r.nodesVisited++

		// 4) Stop as soon as the destination settles; do not drain the heap.
		if item.node == r.destination {
			return
		}

		// 5) Relax outgoing edges.
		r.relax(item)
	}
}

// relax examines every outgoing edge of item's node. Each examined edge
// counts toward EdgesRelaxed whether or not it shortens anything; a
// constraint rejection skips the edge without further work.
func (r *runner) relax(item *pathItem) {
	du := r.distance(item.node)
	for _, e := range r.g.Neighbors(item.node) {
		r.edgesRelaxed++

		if !r.constraints.Allows(e, item.stops) {
			continue
		}

		// Strict improvement only: equal-distance rediscoveries are not
		// re-pushed, keeping tie-breaking deterministic.
		candidate := du + e.Weight
		if candidate >= r.distance(e.Destination) {
			continue
		}

		r.dist[e.Destination] = candidate
		r.prevNode[e.Destination] = item.node
		r.prevAirline[e.Destination] = e.Airline
		heap.Push(&r.pq, &pathItem{
			node:     e.Destination,
			priority: r.priority(e.Destination, candidate),
			stops:    item.stops + 1,
		})
	}
}

// result reconstructs the path by walking predecessor links backwards from
// the destination, or reports the negative outcome.
func (r *runner) result(origin string, start time.Time) PathResult {
	res := PathResult{
		NodesVisited: r.nodesVisited,
		EdgesRelaxed: r.edgesRelaxed,
	}

	total := r.distance(r.destination)
	if math.IsInf(total, 1) {
		res.Elapsed = time.Since(start)

		return res
	}

	// Walk back from the destination, then reverse in place.
	var path, airlines []string
	for cur := r.destination; ; {
		path = append(path, cur)
		prev, ok := r.prevNode[cur]
		if !ok {
			break
		}
		airlines = append(airlines, r.prevAirline[cur])
		cur = prev
	}
	reverse(path)
	reverse(airlines)

	res.Path = path
	res.Airlines = airlines
	res.TotalWeight = total
	res.Found = true
	res.Elapsed = time.Since(start)

	return res
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// pathItem is one frontier entry: a node with the priority it was pushed
// at and the stop count along the path that discovered it.
type pathItem struct {
	node     string
	priority float64
	stops    int
}

// pathPQ is a min-heap of *pathItem under the lazy-decrease-key scheme:
// improvements push duplicates, stale entries are skipped on pop.
type pathPQ []*pathItem

func (pq pathPQ) Len() int            { return len(pq) }
func (pq pathPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq pathPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }
func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
