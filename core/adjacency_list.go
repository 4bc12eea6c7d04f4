package core

import "sort"

// AdjacencyGraph is the baseline backend: a map from node id to a growable
// slice of outgoing edges.
//
// Build cost is O(1) amortized per edge; Neighbors costs O(d) for the
// copy-out of a degree-d node. Insertion order of edges is preserved.
type AdjacencyGraph struct {
	adjacency map[string][]Edge
	edgeCount int
}

// NewAdjacencyGraph creates an empty adjacency-list graph.
// Complexity: O(1)
func NewAdjacencyGraph() *AdjacencyGraph {
	return &AdjacencyGraph{adjacency: make(map[string][]Edge)}
}

// AddNode registers id if absent. Idempotent.
// Complexity: O(1)
func (g *AdjacencyGraph) AddNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// AddEdge appends e to from's outgoing list, auto-registering both
// endpoints. Parallel edges are kept as-is.
// Complexity: O(1) amortized
func (g *AdjacencyGraph) AddEdge(from string, e Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	g.adjacency[from] = append(g.adjacency[from], e)
	g.edgeCount++
}

// Neighbors returns a copy of from's outgoing edges in insertion order.
// Complexity: O(d)
func (g *AdjacencyGraph) Neighbors(node string) []Edge {
	list, ok := g.adjacency[node]
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out
}

// HasNode reports whether node is registered.
// Complexity: O(1)
func (g *AdjacencyGraph) HasNode(node string) bool {
	_, ok := g.adjacency[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *AdjacencyGraph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges added.
func (g *AdjacencyGraph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node ids sorted lexicographically for deterministic
// iteration.
// Complexity: O(V log V)
func (g *AdjacencyGraph) Nodes() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
