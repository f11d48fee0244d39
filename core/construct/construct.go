// Package construct builds initial schedules for the search to start from.
// Stochastic heuristics take an explicit *rand.Rand so runs are reproducible
// under a fixed seed; there is no package-level randomness.
package construct

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sebas-fontys/OR5-paintshop/core/model"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

// Heuristic produces a well-formed initial schedule for an instance.
type Heuristic interface {
	Name() string
	Build(inst *model.Instance) (*schedule.Schedule, error)
}

// Random assigns orders to machines uniformly at random, in random order.
type Random struct {
	Rng *rand.Rand
}

func (Random) Name() string { return "random" }

// Build shuffles the order ids and appends each to a uniformly chosen
// machine queue.
func (h Random) Build(inst *model.Instance) (*schedule.Schedule, error) {
	if h.Rng == nil {
		return nil, errors.New("random heuristic needs an initialized rng")
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	ids := make([]int, inst.OrderCount())
	for i := range ids {
		ids[i] = i
	}
	h.Rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	queues := make([][]int, inst.MachineCount())
	for _, id := range ids {
		m := h.Rng.Intn(inst.MachineCount())
		queues[m] = append(queues[m], id)
	}
	return schedule.New(inst.MachineCount(), queues)
}

// Simple appends orders in deadline order to the machine with the shortest
// queue, ties broken by machine index.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Build(inst *model.Instance) (*schedule.Schedule, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	queues := make([][]int, inst.MachineCount())
	for _, id := range byDeadline(inst) {
		best := 0
		for m := 1; m < len(queues); m++ {
			if len(queues[m]) < len(queues[best]) {
				best = m
			}
		}
		queues[best] = append(queues[best], id)
	}
	return schedule.New(inst.MachineCount(), queues)
}

// Greedy appends orders in deadline order to the machine that currently
// finishes earliest, accounting for processing speed and color setups.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Build(inst *model.Instance) (*schedule.Schedule, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	queues := make([][]int, inst.MachineCount())
	finish := make([]float64, inst.MachineCount())
	last := make([]int, inst.MachineCount())
	for m := range last {
		last[m] = -1
	}
	for _, id := range byDeadline(inst) {
		best := 0
		for m := 1; m < len(queues); m++ {
			if finish[m] < finish[best] {
				best = m
			}
		}
		finish[best] += inst.SetupTime(last[best], id) + inst.ProcessingTime(id, best)
		last[best] = id
		queues[best] = append(queues[best], id)
	}
	return schedule.New(inst.MachineCount(), queues)
}

// ByName returns the heuristic registered under the given config name.
func ByName(name string, rng *rand.Rand) (Heuristic, error) {
	switch name {
	case "random":
		return Random{Rng: rng}, nil
	case "simple":
		return Simple{}, nil
	case "greedy":
		return Greedy{}, nil
	}
	return nil, fmt.Errorf("unknown constructive heuristic %q", name)
}

func byDeadline(inst *model.Instance) []int {
	ids := make([]int, inst.OrderCount())
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		da, db := inst.Orders[ids[a]].Deadline, inst.Orders[ids[b]].Deadline
		if da != db {
			return da < db
		}
		return ids[a] < ids[b]
	})
	return ids
}
