package neighborhood

import (
	"sync"

	"github.com/sebas-fontys/OR5-paintshop/core/move"
	"github.com/sebas-fontys/OR5-paintshop/core/schedule"
)

// Neighbor is one distinct resulting schedule together with every enumerated
// move that produced it.
type Neighbor struct {
	Schedule *schedule.Schedule
	Moves    []move.Move
}

// Grouping maps a fingerprint digest to the neighbors carrying it. The slice
// has one element unless unequal schedules collide on the digest; the insert
// path re-checks equality so colliding schedules are never merged.
type Grouping map[schedule.Digest][]*Neighbor

func (g Grouping) add(d schedule.Digest, s *schedule.Schedule, mv move.Move) {
	for _, nb := range g[d] {
		if nb.Schedule.Equal(s) {
			nb.Moves = append(nb.Moves, mv)
			return
		}
	}
	g[d] = append(g[d], &Neighbor{Schedule: s, Moves: []move.Move{mv}})
}

// Distinct returns the number of distinct neighbor schedules.
func (g Grouping) Distinct() int {
	n := 0
	for _, nbs := range g {
		n += len(nbs)
	}
	return n
}

// Degenerate returns the moves whose resulting schedule equals the given
// source schedule, or nil when the grouping holds no such bucket.
func (g Grouping) Degenerate(src *schedule.Schedule) []move.Move {
	for _, nb := range g[src.Fingerprint()] {
		if nb.Schedule.Equal(src) {
			return nb.Moves
		}
	}
	return nil
}

// Expand applies every enumerated move to s and groups the results by
// fingerprint. workers bounds the number of goroutines applying moves and
// hashing results; values below 2 select the sequential path, where bucket
// move order follows enumeration order. The parallel path yields the same
// grouping with bucket moves in arbitrary order.
func (g Generator) Expand(s *schedule.Schedule, workers int) (Grouping, error) {
	moves := g.Moves(s)
	grouping := make(Grouping, len(moves))
	if workers < 2 {
		for _, mv := range moves {
			next, err := mv.Apply(s)
			if err != nil {
				return nil, err
			}
			grouping.add(next.Fingerprint(), next, mv)
		}
		return grouping, nil
	}

	type applied struct {
		digest schedule.Digest
		result *schedule.Schedule
		mv     move.Move
	}
	jobs := make(chan move.Move)
	out := make(chan applied, workers)
	errc := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for mv := range jobs {
				next, err := mv.Apply(s)
				if err != nil {
					// Keep draining so the feeder never blocks.
					select {
					case errc <- err:
					default:
					}
					continue
				}
				out <- applied{digest: next.Fingerprint(), result: next, mv: mv}
			}
		}()
	}
	go func() {
		for _, mv := range moves {
			jobs <- mv
		}
		close(jobs)
		wg.Wait()
		close(out)
		close(errc)
	}()

	// Single writer accumulates the grouping.
	for a := range out {
		grouping.add(a.digest, a.result, a.mv)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	return grouping, nil
}
