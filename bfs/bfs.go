// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted distances, optional parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options
	ctx   context.Context
	queue []queueItem[S]
	head  int
	res   *Result[S]
}

// BFS runs breadth-first search from start, expanding states with neighbors
// and applying any number of functional Options.
// Returns ErrNilNeighbors for a nil callback, ErrOptionViolation for bad options,
// ErrVisitLimit when MaxVisits is exceeded, or the context error on cancellation.
// On error the partial Result is still returned.
func BFS[S comparable](start S, neighbors func(S) []S, opts ...Option) (*Result[S], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next: neighbors,
		opts: o,
		ctx:  o.Ctx,
		res: &Result[S]{
			Depth: make(map[S]int),
		},
	}
	if o.Parents {
		w.res.Parent = make(map[S]S)
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue records s at depth d and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		// let the consumed prefix be collected
		if w.head > 1024 && w.head*2 > len(w.queue) {
			w.queue = append(w.queue[:0:0], w.queue[w.head:]...)
			w.head = 0
		}

		w.res.Order = append(w.res.Order, item.state)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and MaxVisits and enqueues each unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.next(item.state) {
		// first time seen?
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if w.opts.MaxVisits > 0 && len(w.res.Depth) >= w.opts.MaxVisits {
			return fmt.Errorf("%w: %d states", ErrVisitLimit, len(w.res.Depth))
		}
		if w.res.Parent != nil {
			w.res.Parent[nbr] = item.state
		}
		w.enqueue(nbr, nextDepth)
	}
	return nil
}
