// Package experiment_test validates synthetic generation, the report
// writers, and the experiment harness end to end on small datasets.
package experiment_test

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/experiment"
	"github.com/avikorn/skygraph/ingest"
)

// quietRunner returns a Runner with silenced logging and few repetitions.
func quietRunner(opts ...experiment.Option) *experiment.Runner {
	log := logrus.New()
	log.SetOutput(&strings.Builder{})
	base := []experiment.Option{experiment.WithLogger(log), experiment.WithRuns(2)}

	return experiment.NewRunner(append(base, opts...)...)
}

// ------------------------------------------------------------------------
// 1. Synthetic data.
// ------------------------------------------------------------------------

func TestSyntheticRoutes_Deterministic(t *testing.T) {
	cfg := experiment.DefaultSyntheticConfig(30)

	a := experiment.SyntheticRoutes(cfg)
	b := experiment.SyntheticRoutes(cfg)

	require.NotEmpty(t, a)
	require.Len(t, b, len(a))
	for key, agg := range a {
		other, ok := b[key]
		require.True(t, ok, "route %s missing in second run", key)
		assert.Equal(t, agg.Weight(), other.Weight(), "route %s", key)
	}
}

func TestSyntheticRoutes_NoSelfLoops(t *testing.T) {
	routes := experiment.SyntheticRoutes(experiment.DefaultSyntheticConfig(20))

	for _, agg := range routes {
		assert.NotEqual(t, agg.Origin, agg.Destination)
		assert.Positive(t, agg.Count())
	}
}

// ------------------------------------------------------------------------
// 2. Backends and query generation.
// ------------------------------------------------------------------------

func TestDefaultBackends_BuildFromSameRoutes(t *testing.T) {
	routes := experiment.SyntheticRoutes(experiment.DefaultSyntheticConfig(15))

	var counts []int
	for _, b := range experiment.DefaultBackends() {
		g := b.New(40)
		ingest.BuildGraph(routes, g)
		counts = append(counts, g.EdgeCount())
	}
	for _, c := range counts[1:] {
		assert.Equal(t, counts[0], c, "every backend sees the same edges")
	}
}

func TestGenerateQueries(t *testing.T) {
	g := core.NewAdjacencyGraph()
	g.AddEdge("A", core.Edge{Destination: "B", Airline: "X", Weight: 1})
	g.AddEdge("B", core.Edge{Destination: "C", Airline: "X", Weight: 1})

	queries := quietRunner().GenerateQueries(g, 10)

	require.Len(t, queries, 10)
	for _, q := range queries {
		assert.NotEqual(t, q.Origin, q.Destination)
		assert.NotEmpty(t, g.Neighbors(q.Origin), "origins have outgoing edges")
	}
}

func TestGenerateQueries_TooFewNodes(t *testing.T) {
	g := core.NewAdjacencyGraph()
	g.AddNode("Only")

	assert.Nil(t, quietRunner().GenerateQueries(g, 5))
}

// ------------------------------------------------------------------------
// 3. Experiments produce one row per backend.
// ------------------------------------------------------------------------

func TestRunPathfinding(t *testing.T) {
	routes := experiment.SyntheticRoutes(experiment.DefaultSyntheticConfig(25))

	report := quietRunner().RunPathfinding(routes, 5)

	assert.Equal(t, "pathfinding", report.Name)
	assert.Len(t, report.Rows, len(experiment.DefaultBackends()))
	for _, row := range report.Rows {
		assert.Len(t, row, len(report.Columns))
	}
}

func TestRunNeighborIteration(t *testing.T) {
	routes := experiment.SyntheticRoutes(experiment.DefaultSyntheticConfig(25))

	report := quietRunner().RunNeighborIteration(routes)

	assert.Len(t, report.Rows, len(experiment.DefaultBackends()))
}

func TestRunScaling(t *testing.T) {
	report := quietRunner().RunScaling([]int{10, 20}, 3)

	assert.Len(t, report.Rows, 2*len(experiment.DefaultBackends()))
	assert.Equal(t, "10", report.Rows[0][0])
}

// ------------------------------------------------------------------------
// 4. Report writers.
// ------------------------------------------------------------------------

func TestReport_Writers(t *testing.T) {
	routes := experiment.SyntheticRoutes(experiment.DefaultSyntheticConfig(15))
	report := quietRunner().RunNeighborIteration(routes)

	var csvOut strings.Builder
	require.NoError(t, report.WriteCSV(&csvOut))
	lines := strings.Split(strings.TrimSpace(csvOut.String()), "\n")
	assert.Equal(t, strings.Join(report.Columns, ","), lines[0])
	assert.Len(t, lines, 1+len(report.Rows))

	var mdOut strings.Builder
	require.NoError(t, report.WriteMarkdown(&mdOut))
	assert.Contains(t, mdOut.String(), "# neighbor_iteration")
	assert.Contains(t, mdOut.String(), report.ID.String())
}

func TestReport_Save(t *testing.T) {
	dir := t.TempDir()
	routes := experiment.SyntheticRoutes(experiment.DefaultSyntheticConfig(15))
	report := quietRunner().RunNeighborIteration(routes)

	path, err := report.Save(dir)

	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.FileExists(t, strings.TrimSuffix(path, ".csv")+".md")
}
