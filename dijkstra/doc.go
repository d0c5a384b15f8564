// Package dijkstra provides a uniform-cost (Dijkstra) search over implicit
// graphs: the vertices are arbitrary comparable states and the edges are
// produced on demand by a callback, so the graph never has to be materialized.
//
// Overview:
//
//   - Dijkstra expands states in order of increasing accumulated cost from a single
//     source, using a min-heap frontier and a best-known-cost table keyed by state.
//   - It stops at the first goal state popped from the frontier; with non-negative
//     edge costs that state's cost is minimal over all paths.
//   - It reports ErrNoPath when the frontier empties without reaching a goal.
//
// When to use:
//
//   - Puzzle and planning problems whose state space is finite but too large to build
//     up front (board layouts, token arrangements, configurations).
//   - Any single-source, single-target-predicate shortest-path query with
//     non-negative costs.
//
// Key features:
//
//   - Functional options allow fine-tuning without changing the API signature.
//   - MaxDistance: states whose cost exceeds the cap are never expanded.
//   - MaxStates: caps the size of the cost table; exceeding it yields ErrStateLimit.
//   - OnSettle: progress hook invoked for every expanded state.
//   - Deterministic: ties on cost pop in insertion order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E) for the V states and E edges actually explored.
//   - Each relaxation that strictly improves a cost pushes one heap entry.
//   - Stale entries (popped cost above the best known) are skipped, the
//     "lazy decrease-key" strategy.
//   - Space: O(V + E)
//   - O(V) for the cost table, O(E) worst-case heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilExpand:      the expand callback is nil.
//   - ErrNilGoal:        the goal predicate is nil.
//   - ErrNoPath:         the frontier emptied (or hit MaxDistance) without a goal.
//   - ErrNegativeWeight: an edge with negative cost was produced.
//   - ErrStateLimit:     more than MaxStates distinct states were recorded.
//   - ErrBadMaxDistance: (via panic) WithMaxDistance got a negative value.
//   - ErrBadMaxStates:   (via panic) WithMaxStates got a negative value.
//
// API reference:
//
//	func Dijkstra[S comparable](
//	    source S,
//	    expand func(S) []Edge[S],
//	    goal func(S) bool,
//	    opts ...Option,
//	) (Result[S], error)
//
// Thread safety:
//
//   - A single call is sequential and owns all of its state; concurrent calls are
//     independent as long as expand and goal are safe to call concurrently.
package dijkstra
