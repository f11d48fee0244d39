package model

import (
	"errors"
	"fmt"
)

// Order represents a single paint order to be processed by one machine.
type Order struct {
	Surface  float64 // painted surface area, determines processing time
	Color    int     // color id, indexes the setup-time matrix
	Deadline float64 // latest completion time without penalty
	Penalty  float64 // cost per time unit of lateness
}

// Instance holds the immutable problem parameters: the orders, the machine
// speeds and the color-to-color setup times. All schedule costs derive from it.
type Instance struct {
	Orders []Order
	// Speeds holds one processing speed per machine. Machine count is
	// len(Speeds).
	Speeds []float64
	// Setups is a square matrix indexed by [fromColor][toColor]. Consecutive
	// orders of the same color need no setup.
	Setups [][]float64
}

// NewInstance validates the parameters and returns the instance.
func NewInstance(orders []Order, speeds []float64, setups [][]float64) (*Instance, error) {
	inst := &Instance{Orders: orders, Speeds: speeds, Setups: setups}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Validate checks that the instance parameters are sound.
func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if len(inst.Orders) == 0 {
		return errors.New("instance has no orders")
	}
	if len(inst.Speeds) == 0 {
		return errors.New("instance has no machines")
	}
	for m, s := range inst.Speeds {
		if s <= 0 {
			return fmt.Errorf("machine %d speed must be > 0 (got %v)", m, s)
		}
	}
	colors := len(inst.Setups)
	for c, row := range inst.Setups {
		if len(row) != colors {
			return fmt.Errorf("setup matrix row %d has %d entries, want %d", c, len(row), colors)
		}
		for c2, v := range row {
			if v < 0 {
				return fmt.Errorf("setup time [%d][%d] must be >= 0 (got %v)", c, c2, v)
			}
		}
	}
	for i, o := range inst.Orders {
		if o.Surface <= 0 {
			return fmt.Errorf("order %d surface must be > 0 (got %v)", i, o.Surface)
		}
		if o.Color < 0 || o.Color >= colors {
			return fmt.Errorf("order %d color %d out of range [0,%d)", i, o.Color, colors)
		}
		if o.Deadline < 0 {
			return fmt.Errorf("order %d deadline must be >= 0 (got %v)", i, o.Deadline)
		}
		if o.Penalty < 0 {
			return fmt.Errorf("order %d penalty must be >= 0 (got %v)", i, o.Penalty)
		}
	}
	return nil
}

// OrderCount returns the number of orders.
func (inst *Instance) OrderCount() int { return len(inst.Orders) }

// MachineCount returns the number of machines.
func (inst *Instance) MachineCount() int { return len(inst.Speeds) }

// ProcessingTime returns the time machine m needs to process the order.
func (inst *Instance) ProcessingTime(order, m int) float64 {
	return inst.Orders[order].Surface / inst.Speeds[m]
}

// SetupTime returns the changeover time between two consecutive orders.
// A negative prev means the order is first in its queue and needs no setup.
func (inst *Instance) SetupTime(prev, next int) float64 {
	if prev < 0 || prev == next {
		return 0
	}
	return inst.Setups[inst.Orders[prev].Color][inst.Orders[next].Color]
}

// LatePenalty returns the tardiness cost for the order finishing at done.
func (inst *Instance) LatePenalty(order int, done float64) float64 {
	late := done - inst.Orders[order].Deadline
	if late <= 0 {
		return 0
	}
	return inst.Orders[order].Penalty * late
}
