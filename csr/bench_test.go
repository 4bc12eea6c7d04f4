package csr_test

import (
	"fmt"
	"testing"

	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/csr"
)

// build stages n nodes with deg edges each, unfinalized.
func build(n, deg int) *csr.OffsetGraph {
	g := csr.NewOffsetGraph()
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("N%04d", i)
		for d := 0; d < deg; d++ {
			to := fmt.Sprintf("N%04d", (i+d+1)%n)
			g.AddEdge(from, core.Edge{Destination: to, Airline: "X", Weight: float64(d + 1)})
		}
	}

	return g
}

func BenchmarkOffsetGraph_Finalize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := build(500, 8)
		b.StartTimer()
		g.Finalize()
	}
}

// The zero-copy view: after finalize, Neighbors is slice arithmetic.
func BenchmarkOffsetGraph_NeighborsFinalized(b *testing.B) {
	g := build(500, 8)
	g.Finalize()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("N0042")
	}
}
