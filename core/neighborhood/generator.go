// Package neighborhood enumerates the complete move set reachable from a
// schedule and groups the resulting neighbor schedules by canonical
// fingerprint, so that search loops can detect distinct moves converging to
// the same neighbor.
package neighborhood

import (
	"github.com/sebas-fontys/OR5-paintshop/core/move"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

// Generator enumerates moves for a fixed variant catalog. The zero value is
// not usable; construct via NewGenerator.
type Generator struct {
	kinds []move.Kind
}

// NewGenerator returns a generator over the given move variants, enumerated
// in the given order. With no variants the default catalog is used: Swap,
// Relocate, SwapQueues.
func NewGenerator(kinds ...move.Kind) Generator {
	if len(kinds) == 0 {
		kinds = []move.Kind{move.Swap, move.Relocate, move.SwapQueues}
	}
	cp := make([]move.Kind, len(kinds))
	copy(cp, kinds)
	return Generator{kinds: cp}
}

// Kinds returns the catalog in enumeration order.
func (g Generator) Kinds() []move.Kind {
	cp := make([]move.Kind, len(g.kinds))
	copy(cp, g.kinds)
	return cp
}

// Moves enumerates every syntactically distinct move of the catalog,
// deterministically and in a fixed order: one block per variant, each block
// in lexicographic slot order. No two returned moves are structurally equal;
// distinct moves may still produce equal neighbor schedules.
//
// Exact counts for N orders on M machines (ΣP = N occupied slots):
//
//	Swap       C(ΣP, 2)        unordered pairs of distinct slots
//	Relocate   N × (ΣP + M)    every slot × every insertion index
//	SwapQueues C(M, 2)         unordered machine pairs
func (g Generator) Moves(s *schedule.Schedule) []move.Move {
	moves := make([]move.Move, 0, g.Size(s))
	for _, k := range g.kinds {
		switch k {
		case move.Swap:
			moves = appendSwaps(moves, s)
		case move.Relocate:
			moves = appendRelocates(moves, s)
		case move.SwapQueues:
			moves = appendQueueSwaps(moves, s)
		}
	}
	return moves
}

// MovesForMachine returns the subset of Moves(s) touching machine m, in the
// same relative order. The subset is complete: every move of the full
// enumeration whose source or destination involves m is included.
func (g Generator) MovesForMachine(s *schedule.Schedule, m int) []move.Move {
	var out []move.Move
	for _, mv := range g.Moves(s) {
		if mv.From.Machine == m || mv.To.Machine == m {
			out = append(out, mv)
		}
	}
	return out
}

// Size returns len(Moves(s)) without materializing the moves.
func (g Generator) Size(s *schedule.Schedule) int {
	n := s.Slots()
	mc := s.MachineCount()
	total := 0
	for _, k := range g.kinds {
		switch k {
		case move.Swap:
			total += n * (n - 1) / 2
		case move.Relocate:
			total += n * (n + mc)
		case move.SwapQueues:
			total += mc * (mc - 1) / 2
		}
	}
	return total
}

// slots lists every occupied (machine, index) pair in lexicographic order.
func slots(s *schedule.Schedule) []move.Slot {
	out := make([]move.Slot, 0, s.Slots())
	for m := 0; m < s.MachineCount(); m++ {
		for i := 0; i < s.Len(m); i++ {
			out = append(out, move.Slot{Machine: m, Index: i})
		}
	}
	return out
}

func appendSwaps(moves []move.Move, s *schedule.Schedule) []move.Move {
	sl := slots(s)
	for a := 0; a < len(sl); a++ {
		for b := a + 1; b < len(sl); b++ {
			moves = append(moves, move.Move{Kind: move.Swap, From: sl[a], To: sl[b]})
		}
	}
	return moves
}

func appendRelocates(moves []move.Move, s *schedule.Schedule) []move.Move {
	// The full cross product is enumerated, including the no-op insertions
	// next to the order's own slot. Degenerate moves are part of the
	// neighborhood contract; callers detect them by fingerprint.
	for _, from := range slots(s) {
		for d := 0; d < s.MachineCount(); d++ {
			for j := 0; j <= s.Len(d); j++ {
				moves = append(moves, move.Move{
					Kind: move.Relocate,
					From: from,
					To:   move.Slot{Machine: d, Index: j},
				})
			}
		}
	}
	return moves
}

func appendQueueSwaps(moves []move.Move, s *schedule.Schedule) []move.Move {
	for a := 0; a < s.MachineCount(); a++ {
		for b := a + 1; b < s.MachineCount(); b++ {
			moves = append(moves, move.Move{
				Kind: move.SwapQueues,
				From: move.Slot{Machine: a},
				To:   move.Slot{Machine: b},
			})
		}
	}
	return moves
}
