package analysis

import (
	"fmt"
	"sort"

	"github.com/avikorn/skygraph/core"
)

// StructureSummary captures the coarse shape of a route graph.
type StructureSummary struct {
	Nodes         int
	Edges         int
	AverageDegree float64 // mean out-degree
	Density       float64 // edges / n·(n−1), directed, loops excluded
	MaxOutDegree  int
	MaxOutNode    string
	Isolated      int // nodes with no outgoing edges
}

// String renders the summary on one line for display surfaces.
func (s StructureSummary) String() string {
	return fmt.Sprintf("nodes=%d edges=%d avg_degree=%.2f density=%.4f max_out=%d(%s) isolated=%d",
		s.Nodes, s.Edges, s.AverageDegree, s.Density, s.MaxOutDegree, s.MaxOutNode, s.Isolated)
}

// Structure walks every node's neighbor list once and summarizes degrees
// and density.
// Complexity: O(V + E)
func Structure(g core.Graph) StructureSummary {
	s := StructureSummary{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
	if s.Nodes == 0 {
		return s
	}

	for _, node := range g.Nodes() {
		d := len(g.Neighbors(node))
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxOutDegree {
			s.MaxOutDegree = d
			s.MaxOutNode = node
		}
	}
	s.AverageDegree = float64(s.Edges) / float64(s.Nodes)
	if s.Nodes > 1 {
		s.Density = float64(s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}

	return s
}

// Hub is one node ranked by out-degree.
type Hub struct {
	Node      string
	OutDegree int
}

// TopHubs returns the n nodes with the highest out-degree, descending,
// ties broken by node id for determinism.
// Complexity: O(V log V + E)
func TopHubs(g core.Graph, n int) []Hub {
	hubs := make([]Hub, 0, g.NodeCount())
	for _, node := range g.Nodes() {
		hubs = append(hubs, Hub{Node: node, OutDegree: len(g.Neighbors(node))})
	}
	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].OutDegree != hubs[j].OutDegree {
			return hubs[i].OutDegree > hubs[j].OutDegree
		}

		return hubs[i].Node < hubs[j].Node
	})
	if n < len(hubs) {
		hubs = hubs[:n]
	}

	return hubs
}

// AirlineStats aggregates one airline's presence in the graph.
type AirlineStats struct {
	Airline       string
	Routes        int
	AverageWeight float64
}

// Airlines tallies route counts and average weights per airline, sorted by
// route count descending (ties by airline label).
// Complexity: O(V + E)
func Airlines(g core.Graph) []AirlineStats {
	counts := make(map[string]int)
	weightSums := make(map[string]float64)
	for _, node := range g.Nodes() {
		for _, e := range g.Neighbors(node) {
			counts[e.Airline]++
			weightSums[e.Airline] += e.Weight
		}
	}

	out := make([]AirlineStats, 0, len(counts))
	for airline, c := range counts {
		out = append(out, AirlineStats{
			Airline:       airline,
			Routes:        c,
			AverageWeight: weightSums[airline] / float64(c),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Routes != out[j].Routes {
			return out[i].Routes > out[j].Routes
		}

		return out[i].Airline < out[j].Airline
	})

	return out
}

// Reachable counts the nodes reachable from origin, origin included, by
// breadth-first traversal. Useful for spotting fragmented datasets before
// benchmarking path queries.
// Complexity: O(V + E)
func Reachable(g core.Graph, origin string) int {
	if !g.HasNode(origin) {
		return 0
	}
	seen := map[string]bool{origin: true}
	queue := []string{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.Neighbors(cur) {
			if !seen[e.Destination] {
				seen[e.Destination] = true
				queue = append(queue, e.Destination)
			}
		}
	}

	return len(seen)
}
