package metrics

import (
	"context"
	"time"

	"github.com/sebas-fontys/OR5-paintshop/core/search"
	"github.com/sebas-fontys/OR5-paintshop/internal/eventbus"
)

// StartEventCollector subscribes to the search event bus and records metrics
// for every event. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus *eventbus.Bus[search.Event], sink MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case search.IterationEvent:
					_ = sink.RecordIterations([]IterationRecord{{
						RunID:    e.RunID,
						Index:    e.Index,
						MoveKind: e.Move.Kind.String(),
						Cost:     e.Cost,
						BestCost: e.BestCost,
						Improved: e.Improved,
						Time:     time.Now(),
					}})
				case search.RunCompleted:
					_ = sink.RecordRun(RunRecord{
						RunID:      e.RunID,
						Iterations: e.Iterations,
						BestCost:   e.BestCost,
						Elapsed:    e.Elapsed,
						Time:       time.Now(),
					})
				}
			}
		}
	}()
}
