// Package schedule defines the immutable solution representation of the
// paint-shop problem: an ordered queue of order ids per machine. Every order
// id in [0,N) appears in exactly one queue exactly once. Schedules are never
// mutated after construction; transformations go through core/move and
// always produce a fresh value.
package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAssignment is returned when the supplied machine queues do not
// cover every order id exactly once, or the machine count does not match.
var ErrInvalidAssignment = errors.New("invalid assignment")

// Schedule is one concrete assignment of orders to machines with per-machine
// ordering. The zero value is not usable; construct via New.
type Schedule struct {
	queues [][]int
	orders int
}

// New builds a Schedule from explicit per-machine ordered queues. The total
// number of orders N is the sum of the queue lengths; every id in [0,N) must
// occur exactly once across all queues. The input is deep-copied.
func New(machineCount int, queues [][]int) (*Schedule, error) {
	if machineCount <= 0 {
		return nil, fmt.Errorf("%w: machine count must be > 0 (got %d)", ErrInvalidAssignment, machineCount)
	}
	if len(queues) != machineCount {
		return nil, fmt.Errorf("%w: got %d machine queues, want %d", ErrInvalidAssignment, len(queues), machineCount)
	}
	n := 0
	for _, q := range queues {
		n += len(q)
	}
	seen := make([]bool, n)
	cp := make([][]int, machineCount)
	for m, q := range queues {
		cp[m] = make([]int, len(q))
		for i, id := range q {
			if id < 0 || id >= n {
				return nil, fmt.Errorf("%w: order id %d at machine %d position %d out of range [0,%d)", ErrInvalidAssignment, id, m, i, n)
			}
			if seen[id] {
				return nil, fmt.Errorf("%w: order id %d assigned more than once", ErrInvalidAssignment, id)
			}
			seen[id] = true
			cp[m][i] = id
		}
	}
	// With n slots holding n distinct ids from [0,n), coverage is complete.
	return &Schedule{queues: cp, orders: n}, nil
}

// MachineCount returns the fixed number of machines.
func (s *Schedule) MachineCount() int { return len(s.queues) }

// Orders returns the total number of orders N.
func (s *Schedule) Orders() int { return s.orders }

// Slots returns the total number of occupied (machine, position) slots.
// It equals Orders and exists for readability at enumeration call sites.
func (s *Schedule) Slots() int { return s.orders }

// Len returns the queue length of machine m.
func (s *Schedule) Len(m int) int { return len(s.queues[m]) }

// At returns the order id at position i of machine m's queue.
func (s *Schedule) At(m, i int) int { return s.queues[m][i] }

// Queue returns a copy of machine m's queue.
func (s *Schedule) Queue(m int) []int {
	q := make([]int, len(s.queues[m]))
	copy(q, s.queues[m])
	return q
}

// Machines returns a deep copy of all queues, ordered by machine index.
func (s *Schedule) Machines() [][]int {
	qs := make([][]int, len(s.queues))
	for m := range s.queues {
		qs[m] = s.Queue(m)
	}
	return qs
}

// Equal reports whether both schedules have identical machine-to-queue
// mappings.
func (s *Schedule) Equal(o *Schedule) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.queues) != len(o.queues) {
		return false
	}
	for m := range s.queues {
		if len(s.queues[m]) != len(o.queues[m]) {
			return false
		}
		for i := range s.queues[m] {
			if s.queues[m][i] != o.queues[m][i] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *Schedule) Clone() *Schedule {
	return &Schedule{queues: s.Machines(), orders: s.orders}
}

// String renders the queues compactly, one machine per segment:
// "M1[0 2 4] M2[1 3] M3[]".
func (s *Schedule) String() string {
	var b strings.Builder
	for m, q := range s.queues {
		if m > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M%d%v", m+1, q)
	}
	return b.String()
}
