package linked

import (
	"sort"

	"github.com/avikorn/skygraph/core"
)

// halfEdge is a directed half-edge record: the wrapped Edge plus the origin
// node it leaves from, doubly linked within that origin's adjacency
// sequence. Twins across an undirected embedding are not constructed; the
// route graph is directed.
type halfEdge struct {
	origin string
	edge   core.Edge
	next   int32
	prev   int32
}

// HalfEdgeGraph keeps one doubly linked sequence of half-edge records per
// node, backed by a shared arena addressed by index.
type HalfEdgeGraph struct {
	adjacency map[string]listRef
	arena     []halfEdge
}

// NewHalfEdgeGraph creates an empty half-edge graph.
func NewHalfEdgeGraph() *HalfEdgeGraph {
	return &HalfEdgeGraph{adjacency: make(map[string]listRef)}
}

// AddNode registers id with an empty sequence if absent. Idempotent.
func (g *HalfEdgeGraph) AddNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = listRef{head: none, tail: none}
	}
}

// AddEdge allocates a half-edge for (from, e) and appends it to from's
// sequence via the tail link.
// Complexity: O(1)
func (g *HalfEdgeGraph) AddEdge(from string, e core.Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	idx := int32(len(g.arena))
	g.arena = append(g.arena, halfEdge{origin: from, edge: e, next: none, prev: none})

	ref := g.adjacency[from]
	if ref.head == none {
		ref.head = idx
		ref.tail = idx
	} else {
		g.arena[ref.tail].next = idx
		g.arena[idx].prev = ref.tail
		ref.tail = idx
	}
	g.adjacency[from] = ref
}

// Neighbors walks from's half-edge sequence and returns the wrapped edges
// in insertion order.
// Complexity: O(d)
func (g *HalfEdgeGraph) Neighbors(node string) []core.Edge {
	ref, ok := g.adjacency[node]
	if !ok || ref.head == none {
		return nil
	}
	var out []core.Edge
	for cur := ref.head; cur != none; cur = g.arena[cur].next {
		out = append(out, g.arena[cur].edge)
	}

	return out
}

// HasNode reports whether node is registered.
func (g *HalfEdgeGraph) HasNode(node string) bool {
	_, ok := g.adjacency[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *HalfEdgeGraph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges added.
func (g *HalfEdgeGraph) EdgeCount() int { return len(g.arena) }

// Nodes returns all node ids sorted lexicographically.
func (g *HalfEdgeGraph) Nodes() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
