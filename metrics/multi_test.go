package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	iterations    []IterationRecord
	runs          []RunRecord
	neighborhoods []NeighborhoodRecord
	err           error
}

func (c *captureSink) RecordIterations(recs []IterationRecord) error {
	c.iterations = append(c.iterations, recs...)
	return c.err
}

func (c *captureSink) RecordRun(rec RunRecord) error {
	c.runs = append(c.runs, rec)
	return c.err
}

func (c *captureSink) RecordNeighborhood(rec NeighborhoodRecord) error {
	c.neighborhoods = append(c.neighborhoods, rec)
	return c.err
}

func TestMultiSink_FansOut(t *testing.T) {
	a := &captureSink{}
	b := &captureSink{}
	m := NewMultiSink(a, b)

	require.NoError(t, m.RecordIterations([]IterationRecord{{RunID: "r", MoveKind: "swap"}}))
	require.NoError(t, m.RecordRun(RunRecord{RunID: "r"}))
	require.NoError(t, m.RecordNeighborhood(NeighborhoodRecord{Moves: 10, Distinct: 8}))

	for _, s := range []*captureSink{a, b} {
		assert.Len(t, s.iterations, 1)
		assert.Len(t, s.runs, 1)
		assert.Len(t, s.neighborhoods, 1)
	}
}

func TestMultiSink_FirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &captureSink{err: boom}
	b := &captureSink{}
	m := NewMultiSink(a, b)

	assert.ErrorIs(t, m.RecordRun(RunRecord{}), boom)
	assert.Empty(t, b.runs)
}

func TestMultiSink_SkipsNonNeighborhoodSinks(t *testing.T) {
	a := &captureSink{}
	m := NewMultiSink(NopSink{}, a)
	require.NoError(t, m.RecordNeighborhood(NeighborhoodRecord{Moves: 3, Distinct: 3}))
	assert.Len(t, a.neighborhoods, 1)
}

func TestNopSink(t *testing.T) {
	var s NopSink
	assert.NoError(t, s.RecordIterations(nil))
	assert.NoError(t, s.RecordRun(RunRecord{}))
}
