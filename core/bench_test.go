package core_test

import (
	"fmt"
	"testing"

	"github.com/avikorn/skygraph/core"
)

// populate inserts n nodes with deg outgoing edges each.
func populate(g core.Graph, n, deg int) {
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("N%04d", i)
		for d := 0; d < deg; d++ {
			to := fmt.Sprintf("N%04d", (i+d+1)%n)
			g.AddEdge(from, core.Edge{Destination: to, Airline: "X", Weight: float64(d + 1)})
		}
	}
}

func BenchmarkAdjacencyGraph_AddEdge(b *testing.B) {
	g := core.NewAdjacencyGraph()
	e := core.Edge{Destination: "B", Airline: "X", Weight: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge("A", e)
	}
}

func BenchmarkSortedAdjacencyGraph_AddEdge(b *testing.B) {
	g := core.NewSortedAdjacencyGraph()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge("A", core.Edge{Destination: "B", Airline: "X", Weight: float64(i % 97)})
	}
}

func BenchmarkAdjacencyGraph_Neighbors(b *testing.B) {
	g := core.NewAdjacencyGraph()
	populate(g, 500, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("N0042")
	}
}

func BenchmarkDynamicArrayGraph_Neighbors(b *testing.B) {
	g := core.NewDynamicArrayGraph()
	populate(g, 500, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("N0042")
	}
}
