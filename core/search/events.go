package search

import (
	"time"

	"github.com/sebas-fontys/OR5-paintshop/core/move"
)

// Event is the closed set of notifications a run publishes on the event bus.
type Event interface{ isEvent() }

// RunStarted is published once before the first iteration.
type RunStarted struct {
	RunID     string
	Heuristic string
	Strategy  string
	Cost      float64
}

// IterationEvent is published after every accepted move.
type IterationEvent struct {
	RunID    string
	Index    int
	Move     move.Move
	Cost     float64
	BestCost float64
	Improved bool
	Elapsed  time.Duration
}

// RunCompleted is published once after termination.
type RunCompleted struct {
	RunID      string
	Iterations int
	BestCost   float64
	Elapsed    time.Duration
}

func (RunStarted) isEvent()     {}
func (IterationEvent) isEvent() {}
func (RunCompleted) isEvent()   {}
