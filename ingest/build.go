package ingest

import (
	"golang.org/x/sync/errgroup"

	"github.com/avikorn/skygraph/core"
)

// BuildGraph populates g with one edge per aggregated route, in
// lexicographic route-key order so that every backend sees the same
// deterministic insertion sequence.
func BuildGraph(routes map[string]*RouteAggregate, g core.Graph) {
	for _, key := range sortedKeys(routes) {
		agg := routes[key]
		g.AddNode(agg.Origin)
		g.AddNode(agg.Destination)
		g.AddEdge(agg.Origin, agg.Edge())
	}
}

// BuildAll populates several independent backends from the same route set,
// one goroutine per target. Targets share no state — each backend owns its
// own storage — so the only coordination needed is the final join.
func BuildAll(routes map[string]*RouteAggregate, targets ...core.Graph) error {
	var eg errgroup.Group
	for _, g := range targets {
		g := g
		eg.Go(func() error {
			BuildGraph(routes, g)

			return nil
		})
	}

	return eg.Wait()
}

// LoadCSV is the one-call convenience: read, aggregate and populate g from
// the CSV file at path.
func (r *Reader) LoadCSV(path string, g core.Graph) error {
	routes, err := r.LoadRoutes(path)
	if err != nil {
		return err
	}
	BuildGraph(routes, g)

	return nil
}
