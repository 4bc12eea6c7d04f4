package csr

import (
	"math"

	"github.com/avikorn/skygraph/core"
)

// OffsetGraph is the CSR/offset-array backend. Staged per-node lists are
// the source of truth for mutation; the flat edgeArray/offsets/counts
// triple is derived from them on finalize.
type OffsetGraph struct {
	index  map[string]int
	ids    []string
	staged [][]core.Edge

	// Finalized layout, valid only while finalized is true.
	edgeArray []core.Edge
	offsets   []int
	counts    []int

	edgeCount int
	finalized bool
}

// NewOffsetGraph creates an empty CSR graph in the staging state.
func NewOffsetGraph() *OffsetGraph {
	return &OffsetGraph{index: make(map[string]int)}
}

// NewOffsetGraphFrom bulk-loads an existing graph and finalizes the
// result, the usual way to obtain a CSR view of an already built backend.
// Complexity: O(V + E)
func NewOffsetGraphFrom(src core.Graph) *OffsetGraph {
	g := NewOffsetGraph()
	for _, node := range src.Nodes() {
		g.AddNode(node)
	}
	for _, node := range src.Nodes() {
		for _, e := range src.Neighbors(node) {
			g.AddEdge(node, e)
		}
	}
	g.Finalize()

	return g
}

// AddNode registers id if absent, growing the staging table.
// Complexity: O(1) amortized
func (g *OffsetGraph) AddNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.staged = append(g.staged, nil)
}

// AddEdge appends e to from's staging list. If the graph was finalized,
// the flat layout is invalidated and the next read rebuilds it.
// Complexity: O(1) amortized
func (g *OffsetGraph) AddEdge(from string, e core.Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	// Post-finalize mutation drops back to staging; lazy rebuild on read.
	g.finalized = false

	g.staged[g.index[from]] = append(g.staged[g.index[from]], e)
	g.edgeCount++
}

// Finalize compacts the staged lists into the flat CSR layout: per-node
// counts, cumulative offsets, and one contiguous edge array filled in
// node-index order. Idempotent while no mutation intervenes.
// Complexity: O(V + E)
func (g *OffsetGraph) Finalize() {
	if g.finalized {
		return
	}

	n := len(g.ids)
	g.offsets = make([]int, n)
	g.counts = make([]int, n)

	// 1) Derive counts and cumulative offsets.
	total := 0
	for i := 0; i < n; i++ {
		g.offsets[i] = total
		g.counts[i] = len(g.staged[i])
		total += g.counts[i]
	}

	// 2) Copy each node's staged edges into its contiguous slot.
	g.edgeArray = make([]core.Edge, total)
	pos := 0
	for i := 0; i < n; i++ {
		pos += copy(g.edgeArray[pos:], g.staged[i])
	}

	g.finalized = true
}

// Finalized reports whether the flat layout is current.
func (g *OffsetGraph) Finalized() bool { return g.finalized }

// Neighbors returns node's contiguous slice of the shared edge array,
// finalizing first if a mutation invalidated the layout. The returned
// slice is a zero-copy view and must be treated as read-only.
// Complexity: O(1) after finalize; O(V+E) when a rebuild is triggered.
func (g *OffsetGraph) Neighbors(node string) []core.Edge {
	i, ok := g.index[node]
	if !ok {
		return nil
	}
	if !g.finalized {
		g.Finalize()
	}
	start := g.offsets[i]

	return g.edgeArray[start : start+g.counts[i]]
}

// HasNode reports whether node is registered.
func (g *OffsetGraph) HasNode(node string) bool {
	_, ok := g.index[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *OffsetGraph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the total number of edges added.
func (g *OffsetGraph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node ids in registration order.
func (g *OffsetGraph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Weight scans from's slice for the first edge to `to` and returns its
// weight, or +Inf and false when absent.
// Complexity: O(d)
func (g *OffsetGraph) Weight(from, to string) (float64, bool) {
	for _, e := range g.Neighbors(from) {
		if e.Destination == to {
			return e.Weight, true
		}
	}

	return math.Inf(1), false
}

// Airline scans from's slice for the first edge to `to` and returns its
// airline label, or "" and false when absent.
// Complexity: O(d)
func (g *OffsetGraph) Airline(from, to string) (string, bool) {
	for _, e := range g.Neighbors(from) {
		if e.Destination == to {
			return e.Airline, true
		}
	}

	return "", false
}

// EdgeArraySize returns the length of the flat edge array, finalizing
// first when necessary. Exposed for memory/utilization reporting.
func (g *OffsetGraph) EdgeArraySize() int {
	if !g.finalized {
		g.Finalize()
	}

	return len(g.edgeArray)
}

// AverageDegree reports edges per node; zero for an empty graph.
func (g *OffsetGraph) AverageDegree() float64 {
	if len(g.ids) == 0 {
		return 0
	}

	return float64(g.edgeCount) / float64(len(g.ids))
}
