// Package search drives local-search improvement over the neighborhood
// core: move selection strategies pick one candidate from the enumerated
// move set, improvement heuristics iterate selections until a stopping
// condition. Everything operates purely through Moves, Apply and schedule
// fingerprints; cost comes from an injected objective evaluator.
package search

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sebas-fontys/OR5-paintshop/core/move"
	"github.com/sebas-fontys/OR5-paintshop/core/neighborhood"
	"github.com/sebas-fontys/OR5-paintshop/core/objective"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

// Criteria filters candidate schedules. A nil Criteria accepts everything.
type Criteria func(*schedule.Schedule) bool

// Candidate pairs a move with the schedule it produces.
type Candidate struct {
	Move     move.Move
	Schedule *schedule.Schedule
}

// Strategy selects one move from the neighborhood of a schedule. A nil
// candidate with a nil error means no enumerated move satisfies the
// criteria.
type Strategy interface {
	Name() string
	Select(s *schedule.Schedule, allow Criteria) (*Candidate, error)
}

// First returns the first enumerated move whose result passes the criteria.
type First struct {
	Gen neighborhood.Generator
}

func (First) Name() string { return "first" }

func (st First) Select(s *schedule.Schedule, allow Criteria) (*Candidate, error) {
	for _, mv := range st.Gen.Moves(s) {
		next, err := mv.Apply(s)
		if err != nil {
			return nil, err
		}
		if allow == nil || allow(next) {
			return &Candidate{Move: mv, Schedule: next}, nil
		}
	}
	return nil, nil
}

// RandomPick shuffles the enumeration and returns the first passing move.
type RandomPick struct {
	Gen neighborhood.Generator
	Rng *rand.Rand
}

func (RandomPick) Name() string { return "random" }

func (st RandomPick) Select(s *schedule.Schedule, allow Criteria) (*Candidate, error) {
	if st.Rng == nil {
		return nil, errors.New("random strategy needs an initialized rng")
	}
	moves := st.Gen.Moves(s)
	st.Rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	for _, mv := range moves {
		next, err := mv.Apply(s)
		if err != nil {
			return nil, err
		}
		if allow == nil || allow(next) {
			return &Candidate{Move: mv, Schedule: next}, nil
		}
	}
	return nil, nil
}

// Best evaluates every passing move and returns the cheapest result, ties
// broken by enumeration order so selection stays deterministic.
type Best struct {
	Gen  neighborhood.Generator
	Eval *objective.Evaluator
}

func (Best) Name() string { return "best" }

func (st Best) Select(s *schedule.Schedule, allow Criteria) (*Candidate, error) {
	var best *Candidate
	bestCost := 0.0
	for _, mv := range st.Gen.Moves(s) {
		next, err := mv.Apply(s)
		if err != nil {
			return nil, err
		}
		if allow != nil && !allow(next) {
			continue
		}
		cost, err := st.Eval.Cost(next)
		if err != nil {
			return nil, err
		}
		if best == nil || cost < bestCost {
			best = &Candidate{Move: mv, Schedule: next}
			bestCost = cost
		}
	}
	return best, nil
}

// StrategyByName returns the strategy registered under the given config name.
func StrategyByName(name string, gen neighborhood.Generator, eval *objective.Evaluator, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "first":
		return First{Gen: gen}, nil
	case "random":
		return RandomPick{Gen: gen, Rng: rng}, nil
	case "best":
		return Best{Gen: gen, Eval: eval}, nil
	}
	return nil, fmt.Errorf("unknown move selection strategy %q", name)
}
