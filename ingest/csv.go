package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for CSV ingestion.
var (
	// ErrEmptyInput indicates the CSV input had no header row.
	ErrEmptyInput = errors.New("ingest: csv input is empty")

	// ErrMissingColumn indicates a required column (airline, origin or
	// destination) was not found in the header.
	ErrMissingColumn = errors.New("ingest: required column not found")
)

// Option customizes a Reader.
type Option func(*Reader)

// WithLogger routes malformed-row warnings to log instead of the standard
// logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Reader) { r.log = log }
}

// Reader parses airline review CSV data into route aggregates.
type Reader struct {
	log logrus.FieldLogger
}

// NewReader creates a Reader with the given options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// columnIndices locates the needed columns in the header; -1 when absent.
type columnIndices struct {
	airline     int
	origin      int
	destination int
	overall     int
	value       int
	inflight    int
	cabin       int
	seat        int
}

// findColumns matches headers case-insensitively by substring, the same
// loose discovery the review exports require (column names vary between
// "Origin Country", "origin", etc.).
func findColumns(header []string) (columnIndices, error) {
	idx := columnIndices{
		airline: -1, origin: -1, destination: -1,
		overall: -1, value: -1, inflight: -1, cabin: -1, seat: -1,
	}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(h, "airline"):
			idx.airline = i
		case strings.Contains(h, "origin") && !strings.Contains(h, "code"):
			idx.origin = i
		case strings.Contains(h, "destination") && !strings.Contains(h, "code"):
			idx.destination = i
		case strings.Contains(h, "overall") && strings.Contains(h, "rating"):
			idx.overall = i
		case strings.Contains(h, "value") && strings.Contains(h, "money"):
			idx.value = i
		case strings.Contains(h, "inflight") && strings.Contains(h, "entertainment"):
			idx.inflight = i
		case strings.Contains(h, "cabin") && strings.Contains(h, "staff"):
			idx.cabin = i
		case strings.Contains(h, "seat") && strings.Contains(h, "comfort"):
			idx.seat = i
		}
	}

	switch {
	case idx.airline == -1:
		return idx, fmt.Errorf("%w: airline", ErrMissingColumn)
	case idx.origin == -1:
		return idx, fmt.Errorf("%w: origin", ErrMissingColumn)
	case idx.destination == -1:
		return idx, fmt.Errorf("%w: destination", ErrMissingColumn)
	}

	return idx, nil
}

// field returns the trimmed cell at i, or "" when the row is too short or
// the column was not discovered.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// parseRating reads a rating cell, rounding decimal exports to the nearest
// integer and mapping blank or unparseable cells to 0 (missing).
func parseRating(row []string, i int) int {
	v := field(row, i)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}

	return int(math.Round(f))
}

// ReadRoutes consumes CSV data and returns the aggregated routes keyed by
// (origin|destination|airline). Rows missing any of airline, origin or
// destination are skipped with a warning; only structural problems
// (empty input, missing required columns, unreadable stream) are errors.
func (r *Reader) ReadRoutes(src io.Reader) (map[string]*RouteAggregate, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // review exports have ragged rows
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: reading header: %w", err)
	}
	idx, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	routes := make(map[string]*RouteAggregate)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			r.log.Warnf("skipping malformed line %d: %v", line, err)
			continue
		}

		rec := FlightRecord{
			Airline:               field(row, idx.airline),
			Origin:                field(row, idx.origin),
			Destination:           field(row, idx.destination),
			OverallRating:         parseRating(row, idx.overall),
			ValueForMoney:         parseRating(row, idx.value),
			InflightEntertainment: parseRating(row, idx.inflight),
			CabinStaff:            parseRating(row, idx.cabin),
			SeatComfort:           parseRating(row, idx.seat),
		}
		if rec.Airline == "" || rec.Origin == "" || rec.Destination == "" {
			r.log.Warnf("skipping line %d: missing airline/origin/destination", line)
			continue
		}

		key := rec.RouteKey()
		agg, ok := routes[key]
		if !ok {
			agg = NewRouteAggregate(rec.Origin, rec.Destination, rec.Airline)
			routes[key] = agg
		}
		agg.Add(rec)
	}

	return routes, nil
}

// LoadRoutes reads and aggregates the CSV file at path.
func (r *Reader) LoadRoutes(path string) (map[string]*RouteAggregate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", path, err)
	}
	defer f.Close()

	return r.ReadRoutes(f)
}

// sortedKeys returns the route keys in lexicographic order, so that graph
// population is deterministic run to run (map iteration is not).
func sortedKeys(routes map[string]*RouteAggregate) []string {
	keys := make([]string, 0, len(routes))
	for k := range routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
