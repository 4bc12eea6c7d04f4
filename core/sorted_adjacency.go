package core

import "sort"

// SortedAdjacencyGraph keeps each node's outgoing edges in ascending weight
// order, ties broken by destination id. The order is a standing invariant
// re-established on every insert, so Neighbors hands out an already-sorted
// snapshot and weight-bounded lookups can binary-search.
//
// Build cost is O(log d) search + O(d) shift per edge; Neighbors is an
// O(d) copy.
type SortedAdjacencyGraph struct {
	adjacency map[string][]Edge
	edgeCount int
}

// NewSortedAdjacencyGraph creates an empty weight-sorted adjacency graph.
func NewSortedAdjacencyGraph() *SortedAdjacencyGraph {
	return &SortedAdjacencyGraph{adjacency: make(map[string][]Edge)}
}

// edgeLess orders edges by weight ascending, then destination id.
func edgeLess(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Destination < b.Destination
}

// AddNode registers id if absent. Idempotent.
func (g *SortedAdjacencyGraph) AddNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// AddEdge inserts e into from's list at its sorted position.
// Complexity: O(log d) to locate + O(d) to shift.
func (g *SortedAdjacencyGraph) AddEdge(from string, e Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	list := g.adjacency[from]
	// Binary search for the first element ordered after e.
	i := sort.Search(len(list), func(k int) bool { return edgeLess(e, list[k]) })
	list = append(list, Edge{})
	copy(list[i+1:], list[i:])
	list[i] = e
	g.adjacency[from] = list
	g.edgeCount++
}

// Neighbors returns a copy of from's outgoing edges, ascending by weight.
// Complexity: O(d)
func (g *SortedAdjacencyGraph) Neighbors(node string) []Edge {
	list, ok := g.adjacency[node]
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out
}

// NeighborsWithWeightAtMost returns the prefix of node's sorted list whose
// weights do not exceed maxWeight, located by binary search.
// Complexity: O(log d + m) where m is the number of matching edges.
func (g *SortedAdjacencyGraph) NeighborsWithWeightAtMost(node string, maxWeight float64) []Edge {
	list := g.adjacency[node]
	if len(list) == 0 {
		return nil
	}
	// First index with weight strictly above the bound.
	i := sort.Search(len(list), func(k int) bool { return list[k].Weight > maxWeight })
	if i == 0 {
		return nil
	}
	out := make([]Edge, i)
	copy(out, list[:i])

	return out
}

// HasNode reports whether node is registered.
func (g *SortedAdjacencyGraph) HasNode(node string) bool {
	_, ok := g.adjacency[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *SortedAdjacencyGraph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges added.
func (g *SortedAdjacencyGraph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node ids sorted lexicographically.
func (g *SortedAdjacencyGraph) Nodes() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
