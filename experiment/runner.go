package experiment

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/ingest"
	"github.com/avikorn/skygraph/pathfind"
)

// Query is one origin/destination pair posed to every backend.
type Query struct {
	Origin      string
	Destination string
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger routes progress output to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runner) { r.log = log }
}

// WithRuns sets how many times each query is repeated per backend; the
// reported time is the mean.
func WithRuns(n int) Option {
	return func(r *Runner) { r.runs = n }
}

// WithSeed fixes the query-generation seed.
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = seed }
}

// WithBackends replaces the default backend set.
func WithBackends(backends []Backend) Option {
	return func(r *Runner) { r.backends = backends }
}

// Runner executes experiments over a fixed backend set.
type Runner struct {
	log      logrus.FieldLogger
	backends []Backend
	runs     int
	seed     int64
}

// NewRunner creates a Runner over DefaultBackends with 20 runs per query.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log:      logrus.StandardLogger(),
		backends: DefaultBackends(),
		runs:     20,
		seed:     42,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// buildAll populates one instance of every backend from routes and returns
// them keyed by backend name, with build durations recorded.
func (r *Runner) buildAll(routes map[string]*ingest.RouteAggregate) (map[string]core.Graph, map[string]time.Duration) {
	nodeHint := nodeCount(routes)
	graphs := make(map[string]core.Graph, len(r.backends))
	buildTimes := make(map[string]time.Duration, len(r.backends))

	for _, b := range r.backends {
		g := b.New(nodeHint)
		start := time.Now()
		ingest.BuildGraph(routes, g)
		buildTimes[b.Name] = time.Since(start)
		graphs[b.Name] = g
		r.log.WithFields(logrus.Fields{
			"backend": b.Name,
			"nodes":   g.NodeCount(),
			"edges":   g.EdgeCount(),
			"build":   buildTimes[b.Name],
		}).Debug("backend built")
	}

	return graphs, buildTimes
}

// GenerateQueries draws n origin/destination pairs from g's node set,
// origins restricted to nodes with outgoing edges so most queries have a
// chance of resolving. The same seed yields the same queries.
func (r *Runner) GenerateQueries(g core.Graph, n int) []Query {
	rng := rand.New(rand.NewSource(r.seed))
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return nil
	}

	origins := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if len(g.Neighbors(node)) > 0 {
			origins = append(origins, node)
		}
	}
	if len(origins) == 0 {
		return nil
	}

	queries := make([]Query, 0, n)
	for len(queries) < n {
		from := origins[rng.Intn(len(origins))]
		to := nodes[rng.Intn(len(nodes))]
		if from == to {
			continue
		}
		queries = append(queries, Query{Origin: from, Destination: to})
	}

	return queries
}

// RunPathfinding times Dijkstra over the same query set on every backend
// and reports per-backend totals: mean query time, found ratio, and the
// summed search statistics.
func (r *Runner) RunPathfinding(routes map[string]*ingest.RouteAggregate, numQueries int) *Report {
	report := newReport("pathfinding", []string{
		"backend", "build_ms", "queries", "found", "mean_query_us",
		"nodes_visited", "edges_relaxed", "total_weight",
	})

	graphs, buildTimes := r.buildAll(routes)
	if len(graphs) == 0 {
		return report
	}
	queries := r.GenerateQueries(graphs[r.backends[0].Name], numQueries)
	r.log.WithField("queries", len(queries)).Info("running pathfinding experiment")

	for _, b := range r.backends {
		g := graphs[b.Name]

		var (
			found        int
			totalElapsed time.Duration
			visited      int
			relaxed      int
			totalWeight  float64
		)
		for _, q := range queries {
			var last pathfind.PathResult
			for run := 0; run < r.runs; run++ {
				last = pathfind.Dijkstra(g, q.Origin, q.Destination)
				totalElapsed += last.Elapsed
			}
			if last.Found {
				found++
				totalWeight += last.TotalWeight
			}
			visited += last.NodesVisited
			relaxed += last.EdgesRelaxed
		}

		meanMicros := 0.0
		if n := len(queries) * r.runs; n > 0 {
			meanMicros = float64(totalElapsed.Microseconds()) / float64(n)
		}
		report.append(
			b.Name,
			fmt.Sprintf("%.3f", float64(buildTimes[b.Name].Microseconds())/1000.0),
			strconv.Itoa(len(queries)),
			strconv.Itoa(found),
			fmt.Sprintf("%.2f", meanMicros),
			strconv.Itoa(visited),
			strconv.Itoa(relaxed),
			fmt.Sprintf("%.3f", totalWeight),
		)
		r.log.WithFields(logrus.Fields{
			"backend": b.Name,
			"found":   found,
			"mean_us": meanMicros,
		}).Info("backend measured")
	}

	return report
}

// RunNeighborIteration sweeps every node's neighbor list on every backend
// and reports the full-scan time, the operation dominating both relaxation
// and analysis workloads.
func (r *Runner) RunNeighborIteration(routes map[string]*ingest.RouteAggregate) *Report {
	report := newReport("neighbor_iteration", []string{
		"backend", "nodes", "edges", "sweeps", "mean_sweep_us",
	})

	graphs, _ := r.buildAll(routes)
	r.log.Info("running neighbor-iteration experiment")

	for _, b := range r.backends {
		g := graphs[b.Name]
		nodes := g.Nodes()

		// Touch destinations so the iteration cannot be optimized away.
		var sink int
		start := time.Now()
		for sweep := 0; sweep < r.runs; sweep++ {
			for _, node := range nodes {
				for _, e := range g.Neighbors(node) {
					sink += len(e.Destination)
				}
			}
		}
		elapsed := time.Since(start)
		_ = sink

		mean := 0.0
		if r.runs > 0 {
			mean = float64(elapsed.Microseconds()) / float64(r.runs)
		}
		report.append(
			b.Name,
			strconv.Itoa(g.NodeCount()),
			strconv.Itoa(g.EdgeCount()),
			strconv.Itoa(r.runs),
			fmt.Sprintf("%.2f", mean),
		)
	}

	return report
}

// RunScaling repeats the pathfinding measurement over synthetic datasets of
// increasing node counts, one report row per (size, backend).
func (r *Runner) RunScaling(sizes []int, queriesPerSize int) *Report {
	report := newReport("scaling", []string{
		"nodes", "backend", "edges", "found", "mean_query_us",
	})

	for _, size := range sizes {
		routes := SyntheticRoutes(DefaultSyntheticConfig(size))
		graphs, _ := r.buildAll(routes)
		if len(graphs) == 0 {
			continue
		}
		queries := r.GenerateQueries(graphs[r.backends[0].Name], queriesPerSize)
		r.log.WithFields(logrus.Fields{"nodes": size, "queries": len(queries)}).Info("scaling step")

		for _, b := range r.backends {
			g := graphs[b.Name]

			var (
				found        int
				totalElapsed time.Duration
			)
			for _, q := range queries {
				res := pathfind.Dijkstra(g, q.Origin, q.Destination)
				totalElapsed += res.Elapsed
				if res.Found {
					found++
				}
			}

			mean := 0.0
			if len(queries) > 0 {
				mean = float64(totalElapsed.Microseconds()) / float64(len(queries))
			}
			report.append(
				strconv.Itoa(size),
				b.Name,
				strconv.Itoa(g.EdgeCount()),
				strconv.Itoa(found),
				fmt.Sprintf("%.2f", mean),
			)
		}
	}

	return report
}

// nodeCount counts the distinct endpoints in an aggregated route set.
func nodeCount(routes map[string]*ingest.RouteAggregate) int {
	seen := make(map[string]struct{}, len(routes))
	for _, agg := range routes {
		seen[agg.Origin] = struct{}{}
		seen[agg.Destination] = struct{}{}
	}

	return len(seen)
}
