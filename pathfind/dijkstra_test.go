// Package pathfind_test validates the shortest-path engine: optimality,
// constraint handling, search statistics, and the negative outcomes that
// are values rather than errors.
package pathfind_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/pathfind"
)

func edge(dest, airline string, weight float64) core.Edge {
	return core.Edge{Destination: dest, Airline: airline, Weight: weight}
}

// triangle builds the canonical three-node graph: the two-leg route via B
// is cheaper than the direct edge.
//
//	A → B (X, 2), B → C (X, 2), A → C (Y, 5)
func triangle() core.Graph {
	g := core.NewAdjacencyGraph()
	g.AddEdge("A", edge("B", "X", 2))
	g.AddEdge("B", edge("C", "X", 2))
	g.AddEdge("A", edge("C", "Y", 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Basic optimality.
// ------------------------------------------------------------------------

func TestDijkstra_PrefersCheaperTwoLegRoute(t *testing.T) {
	res := pathfind.Dijkstra(triangle(), "A", "C")

	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, []string{"X", "X"}, res.Airlines)
	assert.Equal(t, 4.0, res.TotalWeight)
	assert.Equal(t, 2, res.Hops())
}

func TestDijkstra_AirlinesAlignWithLegs(t *testing.T) {
	g := core.NewAdjacencyGraph()
	g.AddEdge("A", edge("B", "First", 1))
	g.AddEdge("B", edge("C", "Second", 1))
	g.AddEdge("C", edge("D", "Third", 1))

	res := pathfind.Dijkstra(g, "A", "D")

	require.True(t, res.Found)
	require.Len(t, res.Airlines, len(res.Path)-1)
	assert.Equal(t, []string{"First", "Second", "Third"}, res.Airlines)
}

func TestDijkstra_OriginEqualsDestination(t *testing.T) {
	res := pathfind.Dijkstra(triangle(), "A", "A")

	require.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Empty(t, res.Airlines)
	assert.Zero(t, res.TotalWeight)
	assert.Zero(t, res.Hops())
	// The origin settles, then the loop breaks before any relaxation.
	assert.Equal(t, 1, res.NodesVisited)
	assert.Zero(t, res.EdgesRelaxed)
}

// ------------------------------------------------------------------------
// 2. Negative outcomes: absent endpoints vs exhausted search.
// ------------------------------------------------------------------------

func TestDijkstra_AbsentEndpointSkipsSearch(t *testing.T) {
	g := triangle()

	for _, tc := range []struct{ origin, dest string }{
		{"Missing", "C"},
		{"A", "Missing"},
	} {
		res := pathfind.Dijkstra(g, tc.origin, tc.dest)

		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.Zero(t, res.NodesVisited, "no queue work for absent endpoints")
		assert.Zero(t, res.EdgesRelaxed)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	res := pathfind.Dijkstra(nil, "A", "B")

	assert.False(t, res.Found)
	assert.Zero(t, res.NodesVisited)
}

func TestDijkstra_UnreachableDestinationHasNonZeroStats(t *testing.T) {
	g := core.NewAdjacencyGraph()
	g.AddEdge("A", edge("B", "X", 1))
	g.AddNode("Island")

	res := pathfind.Dijkstra(g, "A", "Island")

	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	// The search ran and exhausted the reachable component.
	assert.Equal(t, 2, res.NodesVisited)
	assert.Equal(t, 1, res.EdgesRelaxed)
}

// ------------------------------------------------------------------------
// 3. Constraints.
// ------------------------------------------------------------------------

func TestDijkstra_MaxStopsForcesDirectRoute(t *testing.T) {
	res := pathfind.Dijkstra(triangle(), "A", "C", pathfind.WithMaxStops(1))

	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 5.0, res.TotalWeight)
}

func TestDijkstra_BlocklistForcesWorseRoute(t *testing.T) {
	res := pathfind.Dijkstra(triangle(), "A", "C", pathfind.WithBlockedAirlines("X"))

	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, []string{"Y"}, res.Airlines)
	assert.Equal(t, 5.0, res.TotalWeight)
}

func TestDijkstra_AllowlistExcludesOtherCarriers(t *testing.T) {
	res := pathfind.Dijkstra(triangle(), "A", "C", pathfind.WithAllowedAirlines("Y"))

	require.True(t, res.Found)
	assert.Equal(t, []string{"Y"}, res.Airlines)

	// Allowlisting only X still finds the two-leg route.
	res = pathfind.Dijkstra(triangle(), "A", "C", pathfind.WithAllowedAirlines("X"))
	require.True(t, res.Found)
	assert.Equal(t, 4.0, res.TotalWeight)
}

func TestDijkstra_ConstraintsCanEliminateAllRoutes(t *testing.T) {
	res := pathfind.Dijkstra(triangle(), "A", "C", pathfind.WithAllowedAirlines("Nonexistent"))

	assert.False(t, res.Found)
	assert.Positive(t, res.EdgesRelaxed, "edges were examined before rejection")
}

func TestConstraints_EvaluationOrder(t *testing.T) {
	c := pathfind.Constraints{
		MaxStops:  1,
		Allowlist: map[string]struct{}{"X": {}},
		Blocklist: map[string]struct{}{"X": {}},
	}
	e := edge("B", "X", 1)

	assert.False(t, c.Allows(e, 1), "stop budget rejects first")
	assert.False(t, c.Allows(e, 0), "blocklist overrides allowlist membership")

	c.Blocklist = nil
	assert.True(t, c.Allows(e, 0))
	assert.False(t, c.Allows(edge("B", "Other", 1), 0), "not on allowlist")
}

// ------------------------------------------------------------------------
// 4. Statistics contract.
// ------------------------------------------------------------------------

func TestDijkstra_EdgesRelaxedCountsRejectedEdges(t *testing.T) {
	free := pathfind.Dijkstra(triangle(), "A", "C")
	blocked := pathfind.Dijkstra(triangle(), "A", "C", pathfind.WithBlockedAirlines("Y"))

	// The blocked query examines the same A-row edges; rejection does not
	// reduce the relaxation count for those examinations.
	require.True(t, free.Found)
	require.True(t, blocked.Found)
	assert.Positive(t, blocked.EdgesRelaxed)
	assert.GreaterOrEqual(t, free.EdgesRelaxed, blocked.EdgesRelaxed)
}

func TestDijkstra_EarlyExitAtDestination(t *testing.T) {
	// A long tail behind the destination must never be visited.
	g := core.NewAdjacencyGraph()
	g.AddEdge("A", edge("B", "X", 1))
	g.AddEdge("B", edge("Tail1", "X", 100))
	g.AddEdge("Tail1", edge("Tail2", "X", 100))

	res := pathfind.Dijkstra(g, "A", "B")

	require.True(t, res.Found)
	assert.Equal(t, 2, res.NodesVisited, "A and B settle; the tail does not")
}

// ------------------------------------------------------------------------
// 5. Optimality against exhaustive search on random graphs.
// ------------------------------------------------------------------------

// bruteForce enumerates every simple path origin → destination and returns
// the minimum total weight, +Inf when none exists.
func bruteForce(g core.Graph, origin, destination string) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{origin: true}

	var walk func(node string, total float64)
	walk = func(node string, total float64) {
		if node == destination {
			if total < best {
				best = total
			}

			return
		}
		for _, e := range g.Neighbors(node) {
			if onPath[e.Destination] {
				continue
			}
			onPath[e.Destination] = true
			walk(e.Destination, total+e.Weight)
			delete(onPath, e.Destination)
		}
	}
	walk(origin, 0)

	return best
}

func TestDijkstra_MatchesBruteForceOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	nodes := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	for trial := 0; trial < 25; trial++ {
		g := core.NewAdjacencyGraph()
		for _, n := range nodes {
			g.AddNode(n)
		}
		for i := 0; i < 16; i++ {
			from := nodes[rng.Intn(len(nodes))]
			to := nodes[rng.Intn(len(nodes))]
			if from == to {
				continue
			}
			g.AddEdge(from, edge(to, "X", 1+rng.Float64()*9))
		}

		want := bruteForce(g, "A", "H")
		res := pathfind.Dijkstra(g, "A", "H")

		if math.IsInf(want, 1) {
			assert.False(t, res.Found, "trial %d", trial)
			continue
		}
		require.True(t, res.Found, "trial %d", trial)
		assert.InDelta(t, want, res.TotalWeight, 1e-9, "trial %d", trial)
	}
}
