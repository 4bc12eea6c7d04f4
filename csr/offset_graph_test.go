// Package csr_test validates the two-phase offset-array backend: the
// staging/finalize lifecycle, lazy rebuild after post-finalize mutation,
// zero-copy neighbor views, and the bulk constructor.
package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/csr"
)

func edge(dest, airline string, weight float64) core.Edge {
	return core.Edge{Destination: dest, Airline: airline, Weight: weight}
}

// stage builds an unfinalized graph with a small fixed route set.
func stage() *csr.OffsetGraph {
	g := csr.NewOffsetGraph()
	g.AddEdge("A", edge("B", "X", 1.0))
	g.AddEdge("A", edge("C", "Y", 2.0))
	g.AddEdge("B", edge("C", "X", 1.5))

	return g
}

// ------------------------------------------------------------------------
// 1. Lifecycle: staging → finalize → mutate → lazy rebuild.
// ------------------------------------------------------------------------

func TestOffsetGraph_FinalizeIsIdempotent(t *testing.T) {
	g := stage()
	assert.False(t, g.Finalized())

	g.Finalize()
	require.True(t, g.Finalized())
	first := g.Neighbors("A")

	// A second finalize with no mutation must not rebuild or reorder.
	g.Finalize()
	assert.Equal(t, first, g.Neighbors("A"))
	assert.Equal(t, 3, g.EdgeArraySize())
}

func TestOffsetGraph_PostFinalizeMutationInvalidates(t *testing.T) {
	g := stage()
	g.Finalize()
	require.True(t, g.Finalized())

	g.AddEdge("C", edge("A", "Z", 3.0))
	assert.False(t, g.Finalized(), "mutation drops back to staging")

	// The next read rebuilds and must include the late edge.
	got := g.Neighbors("C")
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Destination)
	assert.True(t, g.Finalized(), "read triggered the rebuild")
	assert.Equal(t, 4, g.EdgeCount())
}

func TestOffsetGraph_RepeatedCycles(t *testing.T) {
	g := stage()
	for i := 0; i < 3; i++ {
		g.Neighbors("A") // finalize
		g.AddEdge("A", edge("D", "W", float64(10+i)))
	}

	assert.Len(t, g.Neighbors("A"), 5)
	assert.Equal(t, 6, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 2. Layout: contiguous per-node slices in node-index order.
// ------------------------------------------------------------------------

func TestOffsetGraph_NeighborsAreContiguousViews(t *testing.T) {
	g := stage()

	a := g.Neighbors("A")
	b := g.Neighbors("B")
	require.Len(t, a, 2)
	require.Len(t, b, 1)

	// A was registered before B, so its slot precedes B's in the flat
	// array; the view boundaries must not overlap.
	assert.Equal(t, "B", a[0].Destination)
	assert.Equal(t, "C", a[1].Destination)
	assert.Equal(t, "C", b[0].Destination)
	assert.Equal(t, 3, g.EdgeArraySize())
}

func TestOffsetGraph_EmptyAndAbsentNodes(t *testing.T) {
	g := csr.NewOffsetGraph()
	g.AddNode("Solo")

	assert.Empty(t, g.Neighbors("Solo"))
	assert.Nil(t, g.Neighbors("Missing"))
	assert.Zero(t, g.EdgeArraySize())
}

// ------------------------------------------------------------------------
// 3. Point lookups and degree accounting.
// ------------------------------------------------------------------------

func TestOffsetGraph_PointLookups(t *testing.T) {
	g := stage()

	w, ok := g.Weight("A", "C")
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	airline, ok := g.Airline("A", "B")
	require.True(t, ok)
	assert.Equal(t, "X", airline)

	_, ok = g.Weight("A", "Z")
	assert.False(t, ok)
	_, ok = g.Airline("Z", "A")
	assert.False(t, ok)
}

func TestOffsetGraph_AverageDegree(t *testing.T) {
	g := stage() // 3 edges over 3 nodes
	assert.InDelta(t, 1.0, g.AverageDegree(), 1e-9)
	assert.Zero(t, csr.NewOffsetGraph().AverageDegree())
}

// ------------------------------------------------------------------------
// 4. Bulk constructor.
// ------------------------------------------------------------------------

func TestNewOffsetGraphFrom_CopiesAndFinalizes(t *testing.T) {
	src := core.NewAdjacencyGraph()
	src.AddEdge("A", edge("B", "X", 1.0))
	src.AddEdge("B", edge("C", "Y", 2.0))
	src.AddNode("D")

	g := csr.NewOffsetGraphFrom(src)

	assert.True(t, g.Finalized())
	assert.Equal(t, src.NodeCount(), g.NodeCount())
	assert.Equal(t, src.EdgeCount(), g.EdgeCount())
	assert.Equal(t, src.Neighbors("A"), g.Neighbors("A"))
}
