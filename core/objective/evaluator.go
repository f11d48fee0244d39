// Package objective computes schedule costs for a paint-shop instance:
// per-machine completion times, tardiness penalties and the aggregate cost.
// It consumes the read-only queue view of core/schedule and never feeds back
// into move legality.
package objective

import (
	"fmt"

	"github.com/sebas-fontys/OR5-paintshop/core/model"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

// OrderTiming describes the processing of one order on its machine, for
// diagnostics and display.
type OrderTiming struct {
	Order   int
	Start   float64
	End     float64
	Penalty float64
	Tardy   bool
}

// Evaluator derives costs from an instance. It is stateless across calls and
// safe for concurrent use.
type Evaluator struct {
	inst *model.Instance
}

// New returns an evaluator for the instance.
func New(inst *model.Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst}, nil
}

func (e *Evaluator) check(s *schedule.Schedule) error {
	if s.MachineCount() != e.inst.MachineCount() {
		return fmt.Errorf("schedule has %d machines, instance has %d", s.MachineCount(), e.inst.MachineCount())
	}
	if s.Orders() != e.inst.OrderCount() {
		return fmt.Errorf("schedule has %d orders, instance has %d", s.Orders(), e.inst.OrderCount())
	}
	return nil
}

// MachineTimings walks machine m's queue and returns per-order start/end
// times and tardiness penalties, including color setup times between
// consecutive orders.
func (e *Evaluator) MachineTimings(s *schedule.Schedule, m int) []OrderTiming {
	q := s.Queue(m)
	out := make([]OrderTiming, 0, len(q))
	t := 0.0
	prev := -1
	for _, id := range q {
		t += e.inst.SetupTime(prev, id)
		start := t
		t += e.inst.ProcessingTime(id, m)
		pen := e.inst.LatePenalty(id, t)
		out = append(out, OrderTiming{Order: id, Start: start, End: t, Penalty: pen, Tardy: pen > 0})
		prev = id
	}
	return out
}

// MachineCost returns the total tardiness penalty of machine m's queue.
func (e *Evaluator) MachineCost(s *schedule.Schedule, m int) float64 {
	total := 0.0
	for _, ot := range e.MachineTimings(s, m) {
		total += ot.Penalty
	}
	return total
}

// CompletionTime returns the time machine m finishes its queue.
func (e *Evaluator) CompletionTime(s *schedule.Schedule, m int) float64 {
	timings := e.MachineTimings(s, m)
	if len(timings) == 0 {
		return 0
	}
	return timings[len(timings)-1].End
}

// Cost returns the aggregate tardiness penalty over all machines.
func (e *Evaluator) Cost(s *schedule.Schedule) (float64, error) {
	if err := e.check(s); err != nil {
		return 0, err
	}
	total := 0.0
	for m := 0; m < s.MachineCount(); m++ {
		total += e.MachineCost(s, m)
	}
	return total, nil
}

// MustCost is Cost for schedules known to match the instance.
func (e *Evaluator) MustCost(s *schedule.Schedule) float64 {
	c, err := e.Cost(s)
	if err != nil {
		panic(err)
	}
	return c
}
