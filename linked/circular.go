package linked

import (
	"sort"

	"github.com/avikorn/skygraph/core"
)

// circRec is one singly linked record in the circular arena.
type circRec struct {
	edge core.Edge
	next int32
}

// CircularGraph keeps one circular singly linked list per node, addressed
// by its tail record: when non-empty, tail.next is the head, and a walk
// stops once it returns to the head.
//
// Appends are O(1) by rewiring the tail; Neighbors walks the full circle
// in O(d).
type CircularGraph struct {
	tails map[string]int32 // node id → arena index of tail, none when empty
	arena []circRec
}

// NewCircularGraph creates an empty circular-linked-list graph.
func NewCircularGraph() *CircularGraph {
	return &CircularGraph{tails: make(map[string]int32)}
}

// AddNode registers id with an empty circle if absent. Idempotent.
func (g *CircularGraph) AddNode(id string) {
	if _, ok := g.tails[id]; !ok {
		g.tails[id] = none
	}
}

// AddEdge allocates a record and splices it after the current tail, making
// it the new tail. A single-element circle points at itself.
// Complexity: O(1)
func (g *CircularGraph) AddEdge(from string, e core.Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	idx := int32(len(g.arena))
	g.arena = append(g.arena, circRec{edge: e})

	tail := g.tails[from]
	if tail == none {
		g.arena[idx].next = idx // self-circle
	} else {
		g.arena[idx].next = g.arena[tail].next // new tail points at head
		g.arena[tail].next = idx
	}
	g.tails[from] = idx
}

// Neighbors walks the circle starting at the head (tail.next) until it
// comes back around, returning edges in insertion order.
// Complexity: O(d)
func (g *CircularGraph) Neighbors(node string) []core.Edge {
	tail, ok := g.tails[node]
	if !ok || tail == none {
		return nil
	}
	head := g.arena[tail].next
	var out []core.Edge
	cur := head
	for {
		out = append(out, g.arena[cur].edge)
		cur = g.arena[cur].next
		if cur == head {
			break
		}
	}

	return out
}

// HasNode reports whether node is registered.
func (g *CircularGraph) HasNode(node string) bool {
	_, ok := g.tails[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *CircularGraph) NodeCount() int { return len(g.tails) }

// EdgeCount returns the total number of edges added.
func (g *CircularGraph) EdgeCount() int { return len(g.arena) }

// Nodes returns all node ids sorted lexicographically.
func (g *CircularGraph) Nodes() []string {
	ids := make([]string, 0, len(g.tails))
	for id := range g.tails {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
