package ingest

import (
	"math"

	"github.com/avikorn/skygraph/core"
)

// fallbackWeight is assigned to a route with no usable ratings at all.
const fallbackWeight = 3.0

// ratingCoefficients weights the five rating components in the edge cost,
// in FlightRecord field order: overall, value-for-money, inflight
// entertainment, cabin staff, seat comfort.
var ratingCoefficients = [5]float64{0.40, 0.20, 0.10, 0.10, 0.20}

// FlightRecord is one parsed review row. A zero rating means the reviewer
// left the component blank.
type FlightRecord struct {
	Airline     string
	Origin      string
	Destination string

	OverallRating         int
	ValueForMoney         int
	InflightEntertainment int
	CabinStaff            int
	SeatComfort           int
}

// ratings returns the five components in coefficient order.
func (r FlightRecord) ratings() [5]int {
	return [5]int{r.OverallRating, r.ValueForMoney, r.InflightEntertainment, r.CabinStaff, r.SeatComfort}
}

// RouteKey groups records by (origin, destination, airline).
func (r FlightRecord) RouteKey() string {
	return r.Origin + "|" + r.Destination + "|" + r.Airline
}

// RouteAggregate accumulates the reviews of one route and derives its
// averaged ratings and edge weight. Zero ratings are counted as missing
// and excluded from the averages.
type RouteAggregate struct {
	Origin      string
	Destination string
	Airline     string

	sums    [5]int
	missing [5]int
	count   int
}

// NewRouteAggregate starts an empty aggregate for one route.
func NewRouteAggregate(origin, destination, airline string) *RouteAggregate {
	return &RouteAggregate{Origin: origin, Destination: destination, Airline: airline}
}

// Add folds one review into the running sums.
func (a *RouteAggregate) Add(rec FlightRecord) {
	a.count++
	for i, v := range rec.ratings() {
		if v == 0 {
			a.missing[i]++
		} else {
			a.sums[i] += v
		}
	}
}

// Count returns the number of reviews folded in.
func (a *RouteAggregate) Count() int { return a.count }

// AverageRatings returns the five averaged components, each rounded to the
// nearest integer and zero when every review left it blank.
func (a *RouteAggregate) AverageRatings() [5]int {
	var avg [5]int
	for i := range a.sums {
		valid := a.count - a.missing[i]
		if valid > 0 {
			avg[i] = int(math.Round(float64(a.sums[i]) / float64(valid)))
		}
	}

	return avg
}

// Weight derives the edge cost from the averaged ratings: each present
// rating r contributes (6−r) scaled by its coefficient, renormalized over
// the coefficients of present components. No ratings → fallbackWeight.
func (a *RouteAggregate) Weight() float64 {
	avg := a.AverageRatings()

	weightedSum := 0.0
	presentCoefficients := 0.0
	for i, r := range avg {
		if r > 0 {
			weightedSum += (6.0 - float64(r)) * ratingCoefficients[i]
			presentCoefficients += ratingCoefficients[i]
		}
	}
	if presentCoefficients == 0 {
		return fallbackWeight
	}

	return weightedSum / presentCoefficients
}

// Edge materializes the aggregate as a graph edge.
func (a *RouteAggregate) Edge() core.Edge {
	avg := a.AverageRatings()

	return core.Edge{
		Destination:           a.Destination,
		Airline:               a.Airline,
		OverallRating:         avg[0],
		ValueForMoney:         avg[1],
		InflightEntertainment: avg[2],
		CabinStaff:            avg[3],
		SeatComfort:           avg[4],
		Weight:                a.Weight(),
	}
}
