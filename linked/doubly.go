package linked

import (
	"sort"

	"github.com/avikorn/skygraph/core"
)

// none marks an absent arena link.
const none = int32(-1)

// edgeRec is one doubly linked edge record in the arena.
type edgeRec struct {
	edge core.Edge
	next int32
	prev int32
}

// listRef addresses a node's list by the arena indices of its ends.
type listRef struct {
	head int32
	tail int32
}

// DoublyGraph keeps one doubly linked list of edge records per node,
// backed by a shared arena addressed by index.
//
// Appends are O(1) via the tail link; Neighbors walks the chain in O(d).
type DoublyGraph struct {
	adjacency map[string]listRef
	arena     []edgeRec
}

// NewDoublyGraph creates an empty doubly-linked-list graph.
func NewDoublyGraph() *DoublyGraph {
	return &DoublyGraph{adjacency: make(map[string]listRef)}
}

// AddNode registers id with an empty list if absent. Idempotent.
func (g *DoublyGraph) AddNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = listRef{head: none, tail: none}
	}
}

// AddEdge allocates a record in the arena and splices it after from's tail.
// Complexity: O(1)
func (g *DoublyGraph) AddEdge(from string, e core.Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	idx := int32(len(g.arena))
	g.arena = append(g.arena, edgeRec{edge: e, next: none, prev: none})

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

// Neighbors walks from's chain head-to-tail and returns the edges in
// insertion order.
// Complexity: O(d)
func (g *DoublyGraph) Neighbors(node string) []core.Edge {
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
func (g *DoublyGraph) HasNode(node string) bool {
	_, ok := g.adjacency[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *DoublyGraph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges added. Every AddEdge
// allocates exactly one arena record, so the arena length is the count.
func (g *DoublyGraph) EdgeCount() int { return len(g.arena) }

// Nodes returns all node ids sorted lexicographically.
func (g *DoublyGraph) Nodes() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
