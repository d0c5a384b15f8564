// Package bfs provides breadth-first search over implicit graphs whose
// vertices are comparable states and whose edges come from a callback.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from a start state.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (edges) from start
//   - Parent: map from state → its predecessor in the BFS tree (WithParents only)
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Honors a MaxVisits budget; exceeding it aborts with ErrVisitLimit.
//   - Honors context cancellation, checked once per dequeued state.
//
// Why
//
//   - Enumerate the reachable state space of a puzzle (census, exhaustive checks).
//   - Compute fewest-move distances when every move counts the same.
//
// Determinism
//
//	States are visited in the order the neighbors callback returns them, so a
//	deterministic callback gives a reproducible Order.
//
// Complexity (V = reachable states, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue, Depth map, optional Parent map)
//
// Usage
//
//	res, err := bfs.BFS(start, next,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrNilNeighbors     if the neighbors callback is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrVisitLimit       if more than MaxVisits states would be visited.
//   - ctx.Err()           if the context is cancelled.
package bfs
