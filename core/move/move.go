// Package move defines the elementary schedule transformations of the local
// search: relocating one order, swapping two orders and swapping two whole
// machine queues. A Move is a closed tagged variant applied by a single
// function; applying a move never mutates its input and always yields a
// schedule satisfying the exactly-once invariant.
package move

import (
	"errors"
	"fmt"

	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

// ErrInapplicableMove is returned when a move references machines or
// positions that do not exist in the schedule it is applied to. This is a
// caller protocol violation (reusing a move against a different schedule),
// not a transient fault.
var ErrInapplicableMove = errors.New("inapplicable move")

// Kind discriminates the move variants.
type Kind int

const (
	// Relocate removes the order at From and reinserts it before index
	// To.Index of machine To.Machine's queue as it exists in the input
	// schedule; index len(queue) appends. No-op encodings exist (reinserting
	// an order next to itself) and are legal.
	Relocate Kind = iota
	// Swap exchanges the orders at two distinct occupied slots.
	Swap
	// SwapQueues exchanges the entire queues of machines From.Machine and
	// To.Machine.
	SwapQueues
)

var kindNames = [...]string{"relocate", "swap", "swap_queues"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown move kind %q", name)
}

// Slot addresses one position in one machine's queue.
type Slot struct {
	Machine int
	Index   int
}

func (sl Slot) String() string { return fmt.Sprintf("(%d,%d)", sl.Machine, sl.Index) }

// Move is one elementary transformation, immutable once constructed. For
// SwapQueues only the Machine fields of From and To are meaningful.
type Move struct {
	Kind Kind
	From Slot
	To   Slot
}

func (m Move) String() string {
	switch m.Kind {
	case Relocate:
		return fmt.Sprintf("relocate %s => %s", m.From, m.To)
	case Swap:
		return fmt.Sprintf("swap %s <=> %s", m.From, m.To)
	case SwapQueues:
		return fmt.Sprintf("qswap M%d <=> M%d", m.From.Machine, m.To.Machine)
	}
	return fmt.Sprintf("move(%d)", int(m.Kind))
}

// Apply produces the transformed schedule. It is deterministic and
// side-effect free; the input schedule is never altered. Moves referencing
// out-of-range machines or positions fail with ErrInapplicableMove.
func (m Move) Apply(s *schedule.Schedule) (*schedule.Schedule, error) {
	switch m.Kind {
	case Relocate:
		return m.applyRelocate(s)
	case Swap:
		return m.applySwap(s)
	case SwapQueues:
		return m.applySwapQueues(s)
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrInapplicableMove, int(m.Kind))
}

func (m Move) applyRelocate(s *schedule.Schedule) (*schedule.Schedule, error) {
	if err := checkSlot(s, m.From, false); err != nil {
		return nil, err
	}
	// The destination index may equal the queue length: append.
	if err := checkSlot(s, m.To, true); err != nil {
		return nil, err
	}
	qs := s.Machines()
	id := qs[m.From.Machine][m.From.Index]
	if m.From.Machine == m.To.Machine {
		q := insertAt(qs[m.From.Machine], m.To.Index, id)
		// The original occurrence shifted right if the insertion came first.
		ri := m.From.Index
		if m.To.Index <= m.From.Index {
			ri++
		}
		qs[m.From.Machine] = removeAt(q, ri)
	} else {
		qs[m.To.Machine] = insertAt(qs[m.To.Machine], m.To.Index, id)
		qs[m.From.Machine] = removeAt(qs[m.From.Machine], m.From.Index)
	}
	return schedule.New(len(qs), qs)
}

func (m Move) applySwap(s *schedule.Schedule) (*schedule.Schedule, error) {
	if err := checkSlot(s, m.From, false); err != nil {
		return nil, err
	}
	if err := checkSlot(s, m.To, false); err != nil {
		return nil, err
	}
	if m.From == m.To {
		return nil, fmt.Errorf("%w: swap of slot %s with itself", ErrInapplicableMove, m.From)
	}
	qs := s.Machines()
	qs[m.From.Machine][m.From.Index], qs[m.To.Machine][m.To.Index] =
		qs[m.To.Machine][m.To.Index], qs[m.From.Machine][m.From.Index]
	return schedule.New(len(qs), qs)
}

func (m Move) applySwapQueues(s *schedule.Schedule) (*schedule.Schedule, error) {
	a, b := m.From.Machine, m.To.Machine
	if a < 0 || a >= s.MachineCount() || b < 0 || b >= s.MachineCount() {
		return nil, fmt.Errorf("%w: machine pair (%d,%d) out of range [0,%d)", ErrInapplicableMove, a, b, s.MachineCount())
	}
	if a == b {
		return nil, fmt.Errorf("%w: queue swap of machine %d with itself", ErrInapplicableMove, a)
	}
	qs := s.Machines()
	qs[a], qs[b] = qs[b], qs[a]
	return schedule.New(len(qs), qs)
}

func checkSlot(s *schedule.Schedule, sl Slot, allowEnd bool) error {
	if sl.Machine < 0 || sl.Machine >= s.MachineCount() {
		return fmt.Errorf("%w: machine %d out of range [0,%d)", ErrInapplicableMove, sl.Machine, s.MachineCount())
	}
	limit := s.Len(sl.Machine)
	if allowEnd {
		limit++
	}
	if sl.Index < 0 || sl.Index >= limit {
		return fmt.Errorf("%w: position %d out of range [0,%d) on machine %d", ErrInapplicableMove, sl.Index, limit, sl.Machine)
	}
	return nil
}

func insertAt(q []int, i, id int) []int {
	out := make([]int, 0, len(q)+1)
	out = append(out, q[:i]...)
	out = append(out, id)
	return append(out, q[i:]...)
}

func removeAt(q []int, i int) []int {
	out := make([]int, 0, len(q)-1)
	out = append(out, q[:i]...)
	return append(out, q[i+1:]...)
}
