// Command skygraph is the interactive console for the route finder:
// build a graph from a review CSV, query best routes, inspect the graph,
// and run backend comparison experiments.
//
// Environment (loaded from .env when present):
//
//	SKYGRAPH_CSV — default CSV path offered by the build menu
//	SKYGRAPH_OUT — directory for experiment reports (default "reports")
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/avikorn/skygraph/analysis"
	"github.com/avikorn/skygraph/core"
	"github.com/avikorn/skygraph/experiment"
	"github.com/avikorn/skygraph/ingest"
	"github.com/avikorn/skygraph/pathfind"
	"github.com/avikorn/skygraph/trie"
)

const (
	defaultCSVPath = "data/cleaned_flights.csv"
	defaultOutDir  = "reports"
)

// app carries all session state explicitly; nothing here is process-global.
type app struct {
	in     *bufio.Scanner
	log    *logrus.Logger
	csvEnv string
	outDir string

	routes map[string]*ingest.RouteAggregate
	graph  core.Graph
	routeT *trie.RouteTrieGraph
}

func main() {
	// Missing .env is fine; the defaults below cover it.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	a := &app{
		in:     bufio.NewScanner(os.Stdin),
		log:    log,
		csvEnv: envOr("SKYGRAPH_CSV", defaultCSVPath),
		outDir: envOr("SKYGRAPH_OUT", defaultOutDir),
	}

	color.Cyan("=== Best Airline Path Finder ===")
	fmt.Println("Find optimal airline routes based on review ratings")

	for {
		fmt.Println()
		color.Yellow("Main Menu:")
		fmt.Println("1. Build graph from CSV")
		fmt.Println("2. Query best route")
		fmt.Println("3. Destination autocomplete")
		fmt.Println("4. Analyze graph")
		fmt.Println("5. Run experiments")
		fmt.Println("6. Exit")

		switch a.prompt("Enter your choice: ") {
		case "1":
			a.buildGraph()
		case "2":
			a.queryRoute()
		case "3":
			a.autocomplete()
		case "4":
			a.analyze()
		case "5":
			a.runExperiments()
		case "6":
			fmt.Println("Goodbye!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// prompt prints label and returns the next trimmed input line.
func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}

	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptInt(label string, fallback int) int {
	v := a.prompt(label)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		color.Red("Not a number, using %d.", fallback)
		return fallback
	}

	return n
}

// requireGraph reports whether a graph is loaded, complaining if not.
func (a *app) requireGraph() bool {
	if a.graph == nil {
		color.Red("No graph loaded. Build one from CSV first.")
		return false
	}

	return true
}

func (a *app) buildGraph() {
	color.Cyan("=== Build Graph from CSV ===")
	path := a.prompt(fmt.Sprintf("CSV path (Enter for %q): ", a.csvEnv))
	if path == "" {
		path = a.csvEnv
	}

	reader := ingest.NewReader(ingest.WithLogger(a.log))
	routes, err := reader.LoadRoutes(path)
	if err != nil {
		color.Red("Error reading CSV: %v", err)
		return
	}

	g := core.NewAdjacencyGraph()
	t := trie.NewRouteTrieGraph()
	if err := ingest.BuildAll(routes, g, t); err != nil {
		color.Red("Error building graph: %v", err)
		return
	}

	a.routes, a.graph, a.routeT = routes, g, t
	color.Green("Graph built: %d nodes, %d edges from %d routes.",
		g.NodeCount(), g.EdgeCount(), len(routes))

	nodes := g.Nodes()
	if len(nodes) > 10 {
		nodes = nodes[:10]
	}
	fmt.Println("Sample nodes:", strings.Join(nodes, ", "))
}

func (a *app) queryRoute() {
	if !a.requireGraph() {
		return
	}
	color.Cyan("=== Query Best Route ===")

	origin := a.prompt("Origin: ")
	destination := a.prompt("Destination: ")
	for _, node := range []string{origin, destination} {
		if !a.graph.HasNode(node) {
			color.Red("Node %q not found in graph.", node)
			return
		}
	}

	var opts []pathfind.Option
	if maxStops := a.promptInt("Max stops (Enter for unlimited): ", pathfind.UnboundedStops); maxStops != pathfind.UnboundedStops {
		opts = append(opts, pathfind.WithMaxStops(maxStops))
	}
	if allowed := a.prompt("Allowed airlines, comma-separated (Enter for all): "); allowed != "" {
		opts = append(opts, pathfind.WithAllowedAirlines(splitList(allowed)...))
	}
	if blocked := a.prompt("Blocked airlines, comma-separated (Enter for none): "); blocked != "" {
		opts = append(opts, pathfind.WithBlockedAirlines(splitList(blocked)...))
	}

	var res pathfind.PathResult
	switch a.prompt("Algorithm — 1. Dijkstra (default)  2. A* (unit-hop): ") {
	case "2":
		res = pathfind.AStar(a.graph, origin, destination, pathfind.UnitHopHeuristic, opts...)
	default:
		res = pathfind.Dijkstra(a.graph, origin, destination, opts...)
	}

	if !res.Found {
		color.Red("No route from %s to %s under the given constraints.", origin, destination)
		return
	}
	color.Green("Route: %s", res.PathString())
	fmt.Println("Airlines:", strings.Join(res.Airlines, ", "))
	fmt.Printf("Total weight: %.3f over %d hops\n", res.TotalWeight, res.Hops())
	fmt.Printf("Search: %d nodes visited, %d edges relaxed, %s elapsed\n",
		res.NodesVisited, res.EdgesRelaxed, res.Elapsed)
}

func (a *app) autocomplete() {
	if a.routeT == nil {
		color.Red("No graph loaded. Build one from CSV first.")
		return
	}
	color.Cyan("=== Destination Autocomplete ===")

	origin := a.prompt("Origin: ")
	if !a.routeT.HasNode(origin) {
		color.Red("Node %q not found in graph.", origin)
		return
	}
	prefix := a.prompt("Destination prefix: ")

	matches := a.routeT.DestinationsWithPrefix(origin, prefix)
	if len(matches) == 0 {
		fmt.Printf("No destinations from %s matching %q.\n", origin, prefix)
		return
	}
	color.Green("%d match(es):", len(matches))
	for _, dest := range matches {
		if w, ok := a.routeT.Weight(origin, dest); ok {
			airline, _ := a.routeT.Airline(origin, dest)
			fmt.Printf("  %s  (best via %s, weight %.3f)\n", dest, airline, w)
		}
	}
}

func (a *app) analyze() {
	if !a.requireGraph() {
		return
	}
	color.Cyan("=== Graph Analysis ===")

	fmt.Println(analysis.Structure(a.graph))

	fmt.Println("\nTop hubs by outgoing routes:")
	for _, hub := range analysis.TopHubs(a.graph, 10) {
		fmt.Printf("  %-20s %d\n", hub.Node, hub.OutDegree)
	}

	fmt.Println("\nAirlines by route count:")
	airlines := analysis.Airlines(a.graph)
	if len(airlines) > 10 {
		airlines = airlines[:10]
	}
	for _, st := range airlines {
		fmt.Printf("  %-20s %4d routes, avg weight %.3f\n", st.Airline, st.Routes, st.AverageWeight)
	}
}

func (a *app) runExperiments() {
	color.Cyan("=== Experiments ===")
	fmt.Println("1. Pathfinding benchmark (needs loaded graph)")
	fmt.Println("2. Neighbor iteration sweep (needs loaded graph)")
	fmt.Println("3. Scaling on synthetic data")
	choice := a.prompt("Enter your choice: ")

	runner := experiment.NewRunner(experiment.WithLogger(a.log))

	var report *experiment.Report
	switch choice {
	case "1":
		if a.routes == nil {
			color.Red("No graph loaded. Build one from CSV first.")
			return
		}
		n := a.promptInt("Number of queries (Enter for 100): ", 100)
		report = runner.RunPathfinding(a.routes, n)
	case "2":
		if a.routes == nil {
			color.Red("No graph loaded. Build one from CSV first.")
			return
		}
		report = runner.RunNeighborIteration(a.routes)
	case "3":
		report = runner.RunScaling([]int{100, 300, 1000}, 50)
	default:
		color.Red("Invalid choice.")
		return
	}

	path, err := report.Save(a.outDir)
	if err != nil {
		color.Red("Error writing report: %v", err)
		return
	}
	color.Green("Report written to %s", path)
}

// splitList splits a comma-separated input into trimmed non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
