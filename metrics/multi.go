package metrics

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordIterations forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordIterations(recs []IterationRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordIterations(recs); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards the record to all sinks.
func (m *MultiSink) RecordRun(rec RunRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordNeighborhood forwards expansion statistics when the sink supports
// them.
func (m *MultiSink) RecordNeighborhood(rec NeighborhoodRecord) error {
	for _, s := range m.Sinks {
		if nr, ok := s.(NeighborhoodRecorder); ok {
			if err := nr.RecordNeighborhood(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
