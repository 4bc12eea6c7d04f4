package core

// initialEdgeCapacity is the starting capacity of each node's edge array.
const initialEdgeCapacity = 4

// edgeArray is a manually managed growth array: a backing buffer whose
// length is the capacity, and an explicit size. When size reaches capacity
// the buffer is reallocated at twice the capacity and the prefix copied.
//
// The doubling is deliberately explicit rather than delegated to append so
// that capacity and utilization stay observable properties of the backend.
type edgeArray struct {
	buf  []Edge
	size int
}

// add appends e, doubling the backing buffer when full.
// Complexity: O(1) amortized.
func (a *edgeArray) add(e Edge) {
	if a.size == len(a.buf) {
		newCap := len(a.buf) * 2
		if newCap == 0 {
			newCap = initialEdgeCapacity
		}
		grown := make([]Edge, newCap)
		copy(grown, a.buf[:a.size])
		a.buf = grown
	}
	a.buf[a.size] = e
	a.size++
}

// snapshot returns a copy of the occupied prefix.
func (a *edgeArray) snapshot() []Edge {
	if a.size == 0 {
		return nil
	}
	out := make([]Edge, a.size)
	copy(out, a.buf[:a.size])

	return out
}

// DynamicArrayGraph stores one growth array of edges per node, addressed
// through a node-id → index map. Edges live in cache-friendly contiguous
// runs per node; capacity grows geometrically (factor 2) on overflow.
type DynamicArrayGraph struct {
	index     map[string]int
	ids       []string
	edges     []edgeArray
	edgeCount int
}

// NewDynamicArrayGraph creates an empty growth-array graph.
func NewDynamicArrayGraph() *DynamicArrayGraph {
	return &DynamicArrayGraph{index: make(map[string]int)}
}

// AddNode registers id if absent, assigning it the next dense index.
// Complexity: O(1) amortized.
func (g *DynamicArrayGraph) AddNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.edges = append(g.edges, edgeArray{})
}

// AddEdge appends e to from's growth array, auto-registering endpoints.
// Complexity: O(1) amortized, O(d) on a doubling step.
func (g *DynamicArrayGraph) AddEdge(from string, e Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	g.edges[g.index[from]].add(e)
	g.edgeCount++
}

// Neighbors returns a copy of node's occupied edge prefix in insertion order.
// Complexity: O(d)
func (g *DynamicArrayGraph) Neighbors(node string) []Edge {
	i, ok := g.index[node]
	if !ok {
		return nil
	}

	return g.edges[i].snapshot()
}

// HasNode reports whether node is registered.
func (g *DynamicArrayGraph) HasNode(node string) bool {
	_, ok := g.index[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *DynamicArrayGraph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the total number of edges added.
func (g *DynamicArrayGraph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node ids in registration order.
func (g *DynamicArrayGraph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// TotalCapacity reports the summed capacity of all per-node buffers,
// including unused slack from doubling.
func (g *DynamicArrayGraph) TotalCapacity() int {
	total := 0
	for i := range g.edges {
		total += len(g.edges[i].buf)
	}

	return total
}

// Utilization reports the fraction of allocated capacity actually occupied
// by edges, in [0,1]. Zero when nothing has been allocated.
func (g *DynamicArrayGraph) Utilization() float64 {
	capacity := g.TotalCapacity()
	if capacity == 0 {
		return 0
	}

	return float64(g.edgeCount) / float64(capacity)
}
