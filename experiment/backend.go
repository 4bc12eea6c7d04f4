package experiment

import (
	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/csr"
	"github.com/avikorn/skygraph/linked"
	"github.com/avikorn/skygraph/matrix"
	"github.com/avikorn/skygraph/trie"
)

// Backend names one graph implementation and knows how to construct an
// empty instance. nodeHint is the expected node count; only capacity-bound
// backends use it.
type Backend struct {
	Name string
	New  func(nodeHint int) core.Graph
}

// DefaultBackends returns every backend in the module, in a stable order.
// The matrix backend reserves twice the hint so synthetic runs that grow
// past the estimate do not hit its capacity panic.
func DefaultBackends() []Backend {
	return []Backend{
		{Name: "adjacency", New: func(int) core.Graph { return core.NewAdjacencyGraph() }},
		{Name: "sorted_adjacency", New: func(int) core.Graph { return core.NewSortedAdjacencyGraph() }},
		{Name: "dynamic_array", New: func(int) core.Graph { return core.NewDynamicArrayGraph() }},
		{Name: "doubly_linked", New: func(int) core.Graph { return linked.NewDoublyGraph() }},
		{Name: "circular_linked", New: func(int) core.Graph { return linked.NewCircularGraph() }},
		{Name: "half_edge", New: func(int) core.Graph { return linked.NewHalfEdgeGraph() }},
		{Name: "matrix", New: func(hint int) core.Graph { return matrix.NewMatrixGraph(hint * 2) }},
		{Name: "csr", New: func(int) core.Graph { return csr.NewOffsetGraph() }},
		{Name: "trie", New: func(int) core.Graph { return trie.NewRouteTrieGraph() }},
	}
}
