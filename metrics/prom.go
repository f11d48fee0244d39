package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records search activity in Prometheus metrics.
type PromSink struct {
	iterations *prometheus.CounterVec
	bestCost   prometheus.Gauge
	runs       prometheus.Counter
	moves      prometheus.Counter
	duplicates prometheus.Counter
}

// NewPromSink registers search metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Already
// registered collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	iterations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_iterations_total",
		Help: "Total number of accepted search moves",
	}, []string{"move_kind", "improved"})
	bestCost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "search_best_cost",
		Help: "Best schedule cost seen in the current run",
	})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_runs_total",
		Help: "Total number of completed search runs",
	})
	moves := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "neighborhood_moves_total",
		Help: "Total number of moves enumerated during expansions",
	})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "neighborhood_duplicates_total",
		Help: "Moves whose resulting schedule coincided with another move's result",
	})

	if err := reg.Register(iterations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			iterations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bestCost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bestCost = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	for _, c := range []*prometheus.Counter{&runs, &moves, &duplicates} {
		if err := reg.Register(*c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				*c = are.ExistingCollector.(prometheus.Counter)
			} else {
				return nil, err
			}
		}
	}
	return &PromSink{iterations: iterations, bestCost: bestCost, runs: runs, moves: moves, duplicates: duplicates}, nil
}

// RecordIterations increments the iteration counter and tracks the best cost.
func (s *PromSink) RecordIterations(recs []IterationRecord) error {
	for _, r := range recs {
		s.iterations.WithLabelValues(r.MoveKind, strconv.FormatBool(r.Improved)).Inc()
		s.bestCost.Set(r.BestCost)
	}
	return nil
}

// RecordRun counts completed runs and pins the final best cost.
func (s *PromSink) RecordRun(rec RunRecord) error {
	s.runs.Inc()
	s.bestCost.Set(rec.BestCost)
	return nil
}

// RecordNeighborhood tracks expansion volume and duplicate neighbors.
func (s *PromSink) RecordNeighborhood(rec NeighborhoodRecord) error {
	s.moves.Add(float64(rec.Moves))
	s.duplicates.Add(float64(rec.Moves - rec.Distinct))
	return nil
}
