package trie

import (
	"math"
	"sort"

	"github.com/avikorn/skygraph/core"
)

// trieNode indexes destination ids character by character. terminal holds
// the edges whose destination ends exactly at this node.
type trieNode struct {
	children map[byte]*trieNode
	terminal []core.Edge
}

// originTrie is one origin's partition: its trie root plus the flat
// aggregate of all outgoing edges in insertion order.
type originTrie struct {
	root     trieNode
	outgoing []core.Edge
}

// RouteTrieGraph is the trie-partitioned backend: one character trie per
// origin node, with a flat neighbor aggregate at each root.
type RouteTrieGraph struct {
	origins   map[string]*originTrie
	edgeCount int
}

// NewRouteTrieGraph creates an empty trie-partitioned graph.
func NewRouteTrieGraph() *RouteTrieGraph {
	return &RouteTrieGraph{origins: make(map[string]*originTrie)}
}

// AddNode registers id with an empty trie if absent. Idempotent.
func (g *RouteTrieGraph) AddNode(id string) {
	if _, ok := g.origins[id]; !ok {
		g.origins[id] = &originTrie{}
	}
}

// AddEdge appends e to from's flat aggregate and threads e.Destination
// into from's trie, attaching the edge at the terminal node.
// Complexity: O(k) in the destination length, plus O(1) for the aggregate.
func (g *RouteTrieGraph) AddEdge(from string, e core.Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	ot := g.origins[from]
	ot.outgoing = append(ot.outgoing, e)

	cur := &ot.root
	dest := e.Destination
	for i := 0; i < len(dest); i++ {
		c := dest[i]
		if cur.children == nil {
			cur.children = make(map[byte]*trieNode)
		}
		next, ok := cur.children[c]
		if !ok {
			next = &trieNode{}
			cur.children[c] = next
		}
		cur = next
	}
	cur.terminal = append(cur.terminal, e)

	g.edgeCount++
}

// Neighbors returns a copy of node's flat aggregate in insertion order,
// independent of trie depth.
// Complexity: O(d)
func (g *RouteTrieGraph) Neighbors(node string) []core.Edge {
	ot, ok := g.origins[node]
	if !ok || len(ot.outgoing) == 0 {
		return nil
	}
	out := make([]core.Edge, len(ot.outgoing))
	copy(out, ot.outgoing)

	return out
}

// HasNode reports whether node is registered.
func (g *RouteTrieGraph) HasNode(node string) bool {
	_, ok := g.origins[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *RouteTrieGraph) NodeCount() int { return len(g.origins) }

// EdgeCount returns the total number of edges added.
func (g *RouteTrieGraph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node ids sorted lexicographically.
func (g *RouteTrieGraph) Nodes() []string {
	ids := make([]string, 0, len(g.origins))
	for id := range g.origins {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// walk descends from's trie along key and returns the reached node, or nil
// when the key leaves the trie.
func (g *RouteTrieGraph) walk(from, key string) *trieNode {
	ot, ok := g.origins[from]
	if !ok {
		return nil
	}
	cur := &ot.root
	for i := 0; i < len(key); i++ {
		next, ok := cur.children[key[i]]
		if !ok {
			return nil
		}
		cur = next
	}

	return cur
}

// EdgesTo returns a copy of every edge from → to, one per airline serving
// the route, located through the trie.
// Complexity: O(k) in the destination length.
func (g *RouteTrieGraph) EdgesTo(from, to string) []core.Edge {
	n := g.walk(from, to)
	if n == nil || len(n.terminal) == 0 {
		return nil
	}
	out := make([]core.Edge, len(n.terminal))
	copy(out, n.terminal)

	return out
}

// Weight returns the weight of the first edge from → to, or +Inf and
// false when the route does not exist.
// Complexity: O(k)
func (g *RouteTrieGraph) Weight(from, to string) (float64, bool) {
	n := g.walk(from, to)
	if n == nil || len(n.terminal) == 0 {
		return math.Inf(1), false
	}

	return n.terminal[0].Weight, true
}

// Airline returns the airline of the first edge from → to, or "" and
// false when the route does not exist.
// Complexity: O(k)
func (g *RouteTrieGraph) Airline(from, to string) (string, bool) {
	n := g.walk(from, to)
	if n == nil || len(n.terminal) == 0 {
		return "", false
	}

	return n.terminal[0].Airline, true
}

// DestinationsWithPrefix returns, sorted, every destination reachable from
// origin whose id starts with prefix. An empty prefix lists all reachable
// destinations.
// Complexity: O(k + t) where t is the size of the matched subtree.
func (g *RouteTrieGraph) DestinationsWithPrefix(origin, prefix string) []string {
	start := g.walk(origin, prefix)
	if start == nil {
		return nil
	}
	var out []string
	collectDestinations(start, prefix, &out)
	sort.Strings(out)

	return out
}

// collectDestinations gathers every terminal under n, building ids from
// the accumulated prefix.
func collectDestinations(n *trieNode, prefix string, out *[]string) {
	if len(n.terminal) > 0 {
		*out = append(*out, prefix)
	}
	for c, child := range n.children {
		collectDestinations(child, prefix+string(c), out)
	}
}
