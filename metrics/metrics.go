package metrics

import "time"

// IterationRecord represents one accepted search move to be recorded.
type IterationRecord struct {
	RunID    string
	Index    int
	MoveKind string
	Cost     float64
	BestCost float64
	Improved bool
	Time     time.Time
}

// RunRecord represents a completed search run.
type RunRecord struct {
	RunID      string
	Iterations int
	BestCost   float64
	Elapsed    time.Duration
	Time       time.Time
}

// NeighborhoodRecord summarizes one neighborhood expansion.
type NeighborhoodRecord struct {
	Moves      int
	Distinct   int
	Degenerate int
	Time       time.Time
}

// MetricsSink records search activity for observability purposes.
type MetricsSink interface {
	RecordIterations(recs []IterationRecord) error
	RecordRun(rec RunRecord) error
}

// NeighborhoodRecorder is implemented by sinks that also track expansion
// statistics.
type NeighborhoodRecorder interface {
	RecordNeighborhood(rec NeighborhoodRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordIterations([]IterationRecord) error { return nil }
func (NopSink) RecordRun(RunRecord) error                { return nil }

// Config selects and parameterizes the metric sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":2112"
	}
}
