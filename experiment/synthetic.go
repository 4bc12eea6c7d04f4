package experiment

import (
	"fmt"
	"math/rand"

	"github.com/avikorn/skygraph/ingest"
)

// SyntheticConfig shapes a generated dataset.
type SyntheticConfig struct {
	Nodes            int
	EdgesPerNode     int
	ReviewsPerRoute  int
	Seed             int64
	MissingRatingPct float64 // probability a rating component is left blank
}

// DefaultSyntheticConfig returns the configuration used by scaling runs.
func DefaultSyntheticConfig(nodes int) SyntheticConfig {
	return SyntheticConfig{
		Nodes:            nodes,
		EdgesPerNode:     6,
		ReviewsPerRoute:  3,
		Seed:             42,
		MissingRatingPct: 0.15,
	}
}

// SyntheticRoutes generates an aggregated route set with the given shape.
// Node labels are C0000..C(n−1), airlines cycle through a small carrier
// pool, and ratings are uniform in 1..5 with the configured blank rate.
// The same config always yields the same routes.
func SyntheticRoutes(cfg SyntheticConfig) map[string]*ingest.RouteAggregate {
	rng := rand.New(rand.NewSource(cfg.Seed))
	airlines := []string{"AeroNova", "BlueMeridian", "CirrusWings", "DeltaPeak", "EastWind"}

	labels := make([]string, cfg.Nodes)
	for i := range labels {
		labels[i] = fmt.Sprintf("C%04d", i)
	}

	routes := make(map[string]*ingest.RouteAggregate)
	rating := func() int {
		if rng.Float64() < cfg.MissingRatingPct {
			return 0
		}

		return 1 + rng.Intn(5)
	}

	for _, origin := range labels {
		for e := 0; e < cfg.EdgesPerNode; e++ {
			dest := labels[rng.Intn(cfg.Nodes)]
			if dest == origin {
				continue
			}
			airline := airlines[rng.Intn(len(airlines))]

			for rev := 0; rev < cfg.ReviewsPerRoute; rev++ {
				rec := ingest.FlightRecord{
					Airline:               airline,
					Origin:                origin,
					Destination:           dest,
					OverallRating:         rating(),
					ValueForMoney:         rating(),
					InflightEntertainment: rating(),
					CabinStaff:            rating(),
					SeatComfort:           rating(),
				}
				key := rec.RouteKey()
				agg, ok := routes[key]
				if !ok {
					agg = ingest.NewRouteAggregate(origin, dest, airline)
					routes[key] = agg
				}
				agg.Add(rec)
			}
		}
	}

	return routes
}
