package move

import (
	"errors"
	"testing"

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

func TestApply_Relocate(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int
		mv   Move
		want [][]int
	}{
		{
			"to empty machine",
			[][]int{{0, 2, 4}, {1, 3}, {}},
			Move{Kind: Relocate, From: Slot{0, 2}, To: Slot{2, 0}},
			[][]int{{0, 2}, {1, 3}, {4}},
		},
		{
			"cross machine append",
			[][]int{{0, 1}, {2}},
			Move{Kind: Relocate, From: Slot{0, 0}, To: Slot{1, 1}},
			[][]int{{1}, {2, 0}},
		},
		{
			"same machine forward",
			[][]int{{0, 1, 2}},
			Move{Kind: Relocate, From: Slot{0, 0}, To: Slot{0, 2}},
			[][]int{{1, 0, 2}},
		},
		{
			"same machine backward",
			[][]int{{0, 1, 2}},
			Move{Kind: Relocate, From: Slot{0, 2}, To: Slot{0, 0}},
			[][]int{{2, 0, 1}},
		},
		{
			"same machine to end",
			[][]int{{0, 1, 2}},
			Move{Kind: Relocate, From: Slot{0, 0}, To: Slot{0, 3}},
			[][]int{{1, 2, 0}},
		},
		{
			"identity before own slot",
			[][]int{{0, 1, 2}},
			Move{Kind: Relocate, From: Slot{0, 1}, To: Slot{0, 1}},
			[][]int{{0, 1, 2}},
		},
		{
			"identity after own slot",
			[][]int{{0, 1, 2}},
			Move{Kind: Relocate, From: Slot{0, 1}, To: Slot{0, 2}},
			[][]int{{0, 1, 2}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := mustSchedule(t, c.in)
			got, err := c.mv.Apply(s)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if want := mustSchedule(t, c.want); !got.Equal(want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestApply_Swap(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2, 4}, {1, 3}})
	got, err := Move{Kind: Swap, From: Slot{0, 0}, To: Slot{1, 0}}.Apply(s)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if want := mustSchedule(t, [][]int{{1, 2, 4}, {0, 3}}); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_SwapQueues(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2}, {1}, {}})
	got, err := Move{Kind: SwapQueues, From: Slot{Machine: 0}, To: Slot{Machine: 2}}.Apply(s)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if want := mustSchedule(t, [][]int{{}, {1}, {0, 2}}); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApply_InputNotMutated(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 1}, {2}})
	before := s.Clone()
	moves := []Move{
		{Kind: Relocate, From: Slot{0, 0}, To: Slot{1, 0}},
		{Kind: Swap, From: Slot{0, 1}, To: Slot{1, 0}},
		{Kind: SwapQueues, From: Slot{Machine: 0}, To: Slot{Machine: 1}},
	}
	for _, mv := range moves {
		if _, err := mv.Apply(s); err != nil {
			t.Fatalf("%v: %v", mv, err)
		}
		if !s.Equal(before) {
			t.Fatalf("%v mutated its input", mv)
		}
	}
}

func TestApply_Deterministic(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 2, 4}, {1, 3}})
	mv := Move{Kind: Relocate, From: Slot{0, 1}, To: Slot{1, 2}}
	a, err := mv.Apply(s)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	b, err := mv.Apply(s)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("repeated application diverged: %v vs %v", a, b)
	}
}

func TestApply_Inapplicable(t *testing.T) {
	s := mustSchedule(t, [][]int{{0, 1}, {2}})
	cases := []struct {
		name string
		mv   Move
	}{
		{"relocate source machine out of range", Move{Kind: Relocate, From: Slot{5, 0}, To: Slot{0, 0}}},
		{"relocate source index out of range", Move{Kind: Relocate, From: Slot{1, 1}, To: Slot{0, 0}}},
		{"relocate destination past append", Move{Kind: Relocate, From: Slot{0, 0}, To: Slot{1, 2}}},
		{"swap slot with itself", Move{Kind: Swap, From: Slot{0, 1}, To: Slot{0, 1}}},
		{"swap empty index", Move{Kind: Swap, From: Slot{0, 0}, To: Slot{1, 1}}},
		{"queue swap same machine", Move{Kind: SwapQueues, From: Slot{Machine: 1}, To: Slot{Machine: 1}}},
		{"queue swap out of range", Move{Kind: SwapQueues, From: Slot{Machine: 0}, To: Slot{Machine: 2}}},
		{"unknown kind", Move{Kind: Kind(9)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.mv.Apply(s); !errors.Is(err, ErrInapplicableMove) {
				t.Fatalf("want ErrInapplicableMove, got %v", err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Relocate, Swap, SwapQueues} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("parse %q: %v", k, err)
		}
		if got != k {
			t.Errorf("round trip %q: got %v", k, got)
		}
	}
	if _, err := ParseKind("teleport"); err == nil {
		t.Errorf("expected error for unknown kind name")
	}
}

func TestMoveString(t *testing.T) {
	cases := []struct {
		mv   Move
		want string
	}{
		{Move{Kind: Relocate, From: Slot{0, 2}, To: Slot{2, 0}}, "relocate (0,2) => (2,0)"},
		{Move{Kind: Swap, From: Slot{0, 0}, To: Slot{1, 1}}, "swap (0,0) <=> (1,1)"},
		{Move{Kind: SwapQueues, From: Slot{Machine: 0}, To: Slot{Machine: 2}}, "qswap M0 <=> M2"},
	}
	for _, c := range cases {
		if got := c.mv.String(); got != c.want {
			t.Errorf("String = %q, want %q", got, c.want)
		}
	}
}
