package matrix

import (
	"fmt"
	"math"

	"github.com/avikorn/skygraph/core"
)

// MatrixGraph is the dense backend: an n×n weight grid plus a parallel
// airline-label grid, with node ids mapped to dense indices in
// registration order. Absent edges are marked by +Inf weight.
type MatrixGraph struct {
	index     map[string]int
	ids       []string
	weights   [][]float64
	airlines  [][]string
	edgeCount int
}

// NewMatrixGraph pre-allocates grids for at most maxNodes nodes and fills
// the weight grid with +Inf (no edge).
// Complexity: O(maxNodes²)
func NewMatrixGraph(maxNodes int) *MatrixGraph {
	g := &MatrixGraph{
		index:    make(map[string]int, maxNodes),
		ids:      make([]string, 0, maxNodes),
		weights:  make([][]float64, maxNodes),
		airlines: make([][]string, maxNodes),
	}
	inf := math.Inf(1)
	for i := range g.weights {
		g.weights[i] = make([]float64, maxNodes)
		g.airlines[i] = make([]string, maxNodes)
		for j := range g.weights[i] {
			g.weights[i][j] = inf
		}
	}

	return g
}

// AddNode registers id if absent, assigning the next dense index.
// Panics when the pre-allocated capacity would be exceeded; the matrix
// does not grow.
func (g *MatrixGraph) AddNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	if len(g.ids) == len(g.weights) {
		panic(fmt.Sprintf("matrix: node capacity %d exceeded adding %q", len(g.weights), id))
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
}

// AddEdge writes e into the (from, destination) cell. A later edge for the
// same pair overwrites the cell; the edge counter still counts every add.
// Complexity: O(1)
func (g *MatrixGraph) AddEdge(from string, e core.Edge) {
	g.AddNode(from)
	g.AddNode(e.Destination)

	fi := g.index[from]
	ti := g.index[e.Destination]
	g.weights[fi][ti] = e.Weight
	g.airlines[fi][ti] = e.Airline
	g.edgeCount++
}

// Neighbors scans node's row and materializes an Edge for every occupied
// cell. Ratings are not stored in the grids, so reconstructed edges carry
// zero ratings.
// Complexity: O(n)
func (g *MatrixGraph) Neighbors(node string) []core.Edge {
	fi, ok := g.index[node]
	if !ok {
		return nil
	}
	var out []core.Edge
	row := g.weights[fi]
	for ti := 0; ti < len(g.ids); ti++ {
		if !math.IsInf(row[ti], 1) {
			out = append(out, core.Edge{
				Destination: g.ids[ti],
				Airline:     g.airlines[fi][ti],
				Weight:      row[ti],
			})
		}
	}

	return out
}

// HasNode reports whether node is registered.
func (g *MatrixGraph) HasNode(node string) bool {
	_, ok := g.index[node]

	return ok
}

// NodeCount returns the number of registered nodes.
func (g *MatrixGraph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the total number of AddEdge calls, including
// overwrites of the same cell.
func (g *MatrixGraph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node ids in registration order.
func (g *MatrixGraph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Weight returns the stored weight of the (from, to) cell. The second
// result is false when either node is unknown or the cell is empty.
// Complexity: O(1)
func (g *MatrixGraph) Weight(from, to string) (float64, bool) {
	fi, ok := g.index[from]
	if !ok {
		return math.Inf(1), false
	}
	ti, ok := g.index[to]
	if !ok {
		return math.Inf(1), false
	}
	w := g.weights[fi][ti]

	return w, !math.IsInf(w, 1)
}

// Airline returns the airline label of the (from, to) cell, or "" and
// false when absent.
// Complexity: O(1)
func (g *MatrixGraph) Airline(from, to string) (string, bool) {
	fi, ok := g.index[from]
	if !ok {
		return "", false
	}
	ti, ok := g.index[to]
	if !ok {
		return "", false
	}
	if math.IsInf(g.weights[fi][ti], 1) {
		return "", false
	}

	return g.airlines[fi][ti], true
}

// Capacity returns the fixed node capacity chosen at construction.
func (g *MatrixGraph) Capacity() int { return len(g.weights) }

// Density reports the fraction of occupied cells over capacity²; a
// utilization figure for the pre-allocated grid.
func (g *MatrixGraph) Density() float64 {
	n := len(g.weights)
	if n == 0 {
		return 0
	}
	occupied := 0
	for fi := range g.weights {
		for ti := range g.weights[fi] {
			if !math.IsInf(g.weights[fi][ti], 1) {
				occupied++
			}
		}
	}

	return float64(occupied) / float64(n*n)
}
