// Package dijkstra implements uniform-cost search on implicit graphs.
//
// Notes on implementation choices:
//
//   - The goal test runs when a state is popped, not when it is generated, so the
//     returned cost is final.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring entries whose cost is above the best known for their state.
//   - Heap ties are broken by insertion sequence, so equal-cost states pop in the
//     order they were discovered and results are reproducible.
//   - A table entry is replaced only on strict improvement; an equal-cost
//     rediscovery neither updates the table nor re-enqueues.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra searches from source for the cheapest state satisfying goal.
// expand returns the outgoing edges of a state; it is called at most once per
// expanded state.
//
// Returns:
//
//   - Result: minimal cost, the goal state reached and search statistics.
//   - err:    ErrNilExpand / ErrNilGoal for invalid input, ErrNoPath when no goal is
//     reachable, ErrNegativeWeight for a negative edge, ErrStateLimit when MaxStates
//     is exceeded. Statistics are filled in on every outcome.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra[S comparable](source S, expand func(S) []Edge[S], goal func(S) bool, opts ...Option) (Result[S], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate callbacks
	if expand == nil {
		return Result[S]{}, ErrNilExpand
	}
	if goal == nil {
		return Result[S]{}, ErrNilGoal
	}

	// 3) Initialize runner and run main loop.
	r := &runner[S]{
		options: cfg,
		expand:  expand,
		goal:    goal,
		dist:    make(map[S]int64),
	}
	r.init(source)
	res, err := r.process()
	res.Stats = r.stats
	res.Stats.States = len(r.dist)

	return res, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	options Options
	expand  func(S) []Edge[S]
	goal    func(S) bool
	dist    map[S]int64 // best-known cost per state
	pq      statePQ[S]  // min-heap of pending (state, cost) entries
	seq     uint64      // insertion counter for tie-breaking
	stats   Stats
}

// init records the source at cost 0 and seeds the heap with it.
func (r *runner[S]) init(source S) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// push adds (s, cost) to the heap with the next sequence number.
func (r *runner[S]) push(s S, cost int64) {
	heap.Push(&r.pq, &stateItem[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
	r.stats.Pushed++
}

// process is the core loop. It pops the cheapest entry, returns on a goal,
// skips stale entries and relaxes the remaining ones.
//
// Loop termination conditions:
//
//   - A goal state is popped (success).
//   - The heap becomes empty, or the cheapest entry exceeds MaxDistance (ErrNoPath).
//   - Relaxation fails (negative edge or state limit).
func (r *runner[S]) process() (Result[S], error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost entry.
		item := heap.Pop(&r.pq).(*stateItem[S])

		// 2) Goal popped: its cost is minimal.
		if r.goal(item.state) {
			return Result[S]{Cost: item.cost, Goal: item.state}, nil
		}

		// 3) A cheaper path to this state was recorded after this entry was pushed.
		if item.cost > r.dist[item.state] {
			r.stats.Stale++
			continue
		}

		// 4) Everything left in the heap is at least as expensive.
		if item.cost > r.options.MaxDistance {
			break
		}

		r.stats.Settled++
		r.options.OnSettle(r.stats.Settled, item.cost)

		// 5) Relax all outgoing edges.
		if err := r.relax(item.state, item.cost); err != nil {
			return Result[S]{}, err
		}
	}

	return Result[S]{}, ErrNoPath
}

// relax examines each edge produced for u and records strictly cheaper costs.
func (r *runner[S]) relax(u S, cost int64) error {
	for _, e := range r.expand(u) {
		r.stats.Relaxed++
		if e.Cost < 0 {
			return fmt.Errorf("%w: cost=%d", ErrNegativeWeight, e.Cost)
		}

		newDist := cost + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}

		// Only a strict improvement updates the table.
		old, seen := r.dist[e.To]
		if seen && newDist >= old {
			continue
		}
		if !seen && r.options.MaxStates > 0 && len(r.dist) >= r.options.MaxStates {
			return fmt.Errorf("%w: %d states", ErrStateLimit, len(r.dist))
		}

		r.dist[e.To] = newDist
		r.push(e.To, newDist)
	}

	return nil
}

// stateItem is a state and its accumulated cost as stored in the heap.
type stateItem[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by cost, then by seq.
type statePQ[S comparable] []*stateItem[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less orders by cost, breaking ties by insertion order.
func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
