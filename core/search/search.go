package search

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sebas-fontys/OR5-paintshop/core/logger"
	"github.com/sebas-fontys/OR5-paintshop/core/objective"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
	"github.com/sebas-fontys/OR5-paintshop/internal/eventbus"
)

// Iteration records one accepted move.
type Iteration struct {
	Index   int
	Move    Candidate
	Cost    float64
	Elapsed time.Duration
}

// RunData summarizes an improvement run.
type RunData struct {
	RunID      string
	Initial    *schedule.Schedule
	Best       *schedule.Schedule
	BestCost   float64
	Iterations []Iteration
	Elapsed    time.Duration
}

// Improver iterates move selections from an initial schedule until a
// stopping condition.
type Improver interface {
	Name() string
	Run(ctx context.Context, initial *schedule.Schedule) (*RunData, error)
}

// HillClimb repeatedly takes a strictly improving move chosen by the
// strategy and stops at a local optimum.
type HillClimb struct {
	Strategy Strategy
	Eval     *objective.Evaluator
	// MaxIterations bounds the run; 0 means unbounded.
	MaxIterations int
	Log           logger.Logger
	Bus           *eventbus.Bus[Event]
}

func (HillClimb) Name() string { return "hillclimb" }

// Run climbs until no strictly improving move exists, the iteration bound is
// reached or the context is canceled. The context error is returned together
// with the progress made so far.
func (h HillClimb) Run(ctx context.Context, initial *schedule.Schedule) (*RunData, error) {
	start := time.Now()
	cost, err := h.Eval.Cost(initial)
	if err != nil {
		return nil, err
	}
	data := &RunData{RunID: uuid.NewString(), Initial: initial, Best: initial, BestCost: cost}
	h.publish(RunStarted{RunID: data.RunID, Heuristic: h.Name(), Strategy: h.Strategy.Name(), Cost: cost})

	current := initial
	for h.MaxIterations == 0 || len(data.Iterations) < h.MaxIterations {
		if err := ctx.Err(); err != nil {
			data.Elapsed = time.Since(start)
			return data, err
		}
		t0 := time.Now()
		improving := func(s *schedule.Schedule) bool { return h.Eval.MustCost(s) < cost }
		cand, err := h.Strategy.Select(current, improving)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			h.logf("local optimum reached after %d iterations", len(data.Iterations))
			break
		}
		current = cand.Schedule
		cost = h.Eval.MustCost(current)
		data.Iterations = append(data.Iterations, Iteration{
			Index:   len(data.Iterations),
			Move:    *cand,
			Cost:    cost,
			Elapsed: time.Since(t0),
		})
		data.Best = current
		data.BestCost = cost
		h.publish(IterationEvent{
			RunID:    data.RunID,
			Index:    len(data.Iterations) - 1,
			Move:     cand.Move,
			Cost:     cost,
			BestCost: data.BestCost,
			Improved: true,
			Elapsed:  time.Since(t0),
		})
	}
	data.Elapsed = time.Since(start)
	h.publish(RunCompleted{RunID: data.RunID, Iterations: len(data.Iterations), BestCost: data.BestCost, Elapsed: data.Elapsed})
	return data, nil
}

func (h HillClimb) publish(e Event) {
	if h.Bus != nil {
		h.Bus.Publish(e)
	}
}

func (h HillClimb) logf(format string, args ...any) {
	if h.Log != nil {
		h.Log.Infof(format, args...)
	}
}

// Tabu allows non-improving moves while keeping a window of recently visited
// schedule fingerprints that may not be revisited. Improving moves are tried
// first; when none exists the fallback strategy picks the best non-tabu
// neighbor.
type Tabu struct {
	Improve  Strategy
	Fallback Strategy
	Eval     *objective.Evaluator
	// Tenure is the revisit-exclusion window length; 0 keeps the whole
	// history.
	Tenure        int
	MaxIterations int
	Log           logger.Logger
	Bus           *eventbus.Bus[Event]
}

func (Tabu) Name() string { return "tabu" }

// Run iterates until MaxIterations, until no admissible move remains or
// until the context is canceled.
func (t Tabu) Run(ctx context.Context, initial *schedule.Schedule) (*RunData, error) {
	start := time.Now()
	cost, err := t.Eval.Cost(initial)
	if err != nil {
		return nil, err
	}
	data := &RunData{RunID: uuid.NewString(), Initial: initial, Best: initial, BestCost: cost}
	t.publish(RunStarted{RunID: data.RunID, Heuristic: t.Name(), Strategy: t.Improve.Name(), Cost: cost})

	history := newTabuHistory(t.Tenure)
	history.add(initial.Fingerprint())

	current := initial
	for iter := 0; t.MaxIterations == 0 || iter < t.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			data.Elapsed = time.Since(start)
			return data, err
		}
		t0 := time.Now()
		improving := func(s *schedule.Schedule) bool { return t.Eval.MustCost(s) < cost }
		cand, err := t.Improve.Select(current, improving)
		if err != nil {
			return nil, err
		}
		improved := cand != nil
		if cand == nil {
			notTabu := func(s *schedule.Schedule) bool { return !history.contains(s.Fingerprint()) }
			cand, err = t.Fallback.Select(current, notTabu)
			if err != nil {
				return nil, err
			}
		}
		if cand == nil {
			t.logf("no admissible move left after %d iterations", len(data.Iterations))
			break
		}
		current = cand.Schedule
		cost = t.Eval.MustCost(current)
		history.add(current.Fingerprint())
		data.Iterations = append(data.Iterations, Iteration{
			Index:   len(data.Iterations),
			Move:    *cand,
			Cost:    cost,
			Elapsed: time.Since(t0),
		})
		if cost < data.BestCost {
			data.Best = current
			data.BestCost = cost
		}
		t.publish(IterationEvent{
			RunID:    data.RunID,
			Index:    len(data.Iterations) - 1,
			Move:     cand.Move,
			Cost:     cost,
			BestCost: data.BestCost,
			Improved: improved,
			Elapsed:  time.Since(t0),
		})
	}
	data.Elapsed = time.Since(start)
	t.publish(RunCompleted{RunID: data.RunID, Iterations: len(data.Iterations), BestCost: data.BestCost, Elapsed: data.Elapsed})
	return data, nil
}

func (t Tabu) publish(e Event) {
	if t.Bus != nil {
		t.Bus.Publish(e)
	}
}

func (t Tabu) logf(format string, args ...any) {
	if t.Log != nil {
		t.Log.Infof(format, args...)
	}
}

// tabuHistory tracks visited fingerprints. With a positive tenure it behaves
// as a sliding window backed by a ring buffer and a reference-counted map.
type tabuHistory struct {
	member map[schedule.Digest]int
	ring   []schedule.Digest
	i      int
	filled bool
}

func newTabuHistory(tenure int) *tabuHistory {
	h := &tabuHistory{member: make(map[schedule.Digest]int)}
	if tenure > 0 {
		h.ring = make([]schedule.Digest, tenure)
	}
	return h
}

func (h *tabuHistory) contains(d schedule.Digest) bool {
	return h.member[d] > 0
}

func (h *tabuHistory) add(d schedule.Digest) {
	if h.ring == nil {
		h.member[d]++
		return
	}
	if h.filled {
		old := h.ring[h.i]
		if n := h.member[old]; n <= 1 {
			delete(h.member, old)
		} else {
			h.member[old] = n - 1
		}
	}
	h.ring[h.i] = d
	h.member[d]++
	h.i++
	if h.i == len(h.ring) {
		h.i = 0
		h.filled = true
	}
}
