package neighborhood

import (
	"testing"

	"github.com/sebas-fontys/OR5-paintshop/core/move"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

func mustSchedule(t *testing.T, queues [][]int) *schedule.Schedule {
	t.Helper()
	s, err := schedule.New(len(queues), queues)
	if err != nil {
		t.Fatalf("new schedule: %v", err)
	}
	return s
}

// Nine orders on three machines: C(9,2)=36 swaps, 9*(9+3)=108 relocates,
// C(3,2)=3 queue swaps.
func TestMoves_Counts(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}})
	cases := []struct {
		name  string
		kinds []move.Kind
		want  int
	}{
		{"swap", []move.Kind{move.Swap}, 36},
		{"relocate", []move.Kind{move.Relocate}, 108},
		{"swap_queues", []move.Kind{move.SwapQueues}, 3},
		{"full catalog", nil, 147},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGenerator(c.kinds...)
			moves := g.Moves(s)
			if len(moves) != c.want {
				t.Errorf("len(Moves) = %d, want %d", len(moves), c.want)
			}
			if got := g.Size(s); got != c.want {
				t.Errorf("Size = %d, want %d", got, c.want)
			}
		})
	}
}

func TestMoves_CountsUnevenQueues(t *testing.T) {
	// ΣP=4, M=3: C(4,2)=6 swaps, 4*(4+3)=28 relocates, 3 queue swaps.
	s := mustSchedule(t, [][]int{{0, 2, 3}, {1}, {}})
	g := NewGenerator()
	if got := len(g.Moves(s)); got != 37 {
		t.Fatalf("len(Moves) = %d, want 37", got)
	}
}

func TestMoves_Deterministic(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2, 4}, {1, 3}, {}})
	g := NewGenerator()
	a := g.Moves(s)
	b := g.Moves(s)
	if len(a) != len(b) {
		t.Fatalf("enumeration length changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("element %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMoves_NoStructuralDuplicates(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2, 4}, {1, 3}, {}})
	seen := make(map[move.Move]struct{})
	for _, mv := range NewGenerator().Moves(s) {
		if _, dup := seen[mv]; dup {
			t.Fatalf("duplicate move %v", mv)
		}
		seen[mv] = struct{}{}
	}
}

func TestMoves_AllApplicable(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2, 4}, {1, 3}, {}})
	for _, mv := range NewGenerator().Moves(s) {
		next, err := mv.Apply(s)
		if err != nil {
			t.Fatalf("%v: %v", mv, err)
		}
		if next.Orders() != s.Orders() || next.MachineCount() != s.MachineCount() {
			t.Fatalf("%v changed schedule shape", mv)
		}
	}
}

func TestMovesForMachine(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2, 4}, {1, 3}, {}})
	g := NewGenerator()
	sub := g.MovesForMachine(s, 2)
	inSub := make(map[move.Move]struct{}, len(sub))
	for _, mv := range sub {
		if mv.From.Machine != 2 && mv.To.Machine != 2 {
			t.Fatalf("%v does not touch machine 2", mv)
		}
		inSub[mv] = struct{}{}
	}
	// Completeness against the full enumeration.
	for _, mv := range g.Moves(s) {
		if mv.From.Machine != 2 && mv.To.Machine != 2 {
			continue
		}
		if _, ok := inSub[mv]; !ok {
			t.Fatalf("%v missing from machine subset", mv)
		}
	}
}

func TestKinds_CatalogOrder(t *testing.T) {
	g := NewGenerator(move.Relocate, move.Swap)
	got := g.Kinds()
	if len(got) != 2 || got[0] != move.Relocate || got[1] != move.Swap {
		t.Fatalf("Kinds = %v", got)
	}
	got[0] = move.SwapQueues
	if g.Kinds()[0] != move.Relocate {
		t.Fatalf("Kinds leaked internal state")
	}
}
