// Package bfs provides an exhaustive breadth-first exploration of an
// implicit state space described by the astar.State contract.
//
// What
//
//   - Explore states in non-decreasing move count from a start state,
//     identifying states by their Key exactly as astar does.
//   - Returns a Result containing:
//   - Order: states in visit sequence
//   - Depth: map from key → distance (moves) from start
//   - Found / GoalDepth: the first goal reached, if any
//   - Supports an OnVisit hook (may abort with an error), a MaxDepth limit,
//     a MaxStates safety cap, and stopping at the first goal.
//
// Why
//
//   - Brute-force ground truth for small instances: the shortest solution
//     length that A* must match, and the true remaining distance that an
//     admissible estimate must never exceed.
//   - Estimates are ignored entirely, so a faulty heuristic cannot skew the
//     reference answer.
//
// Determinism
//
//	Moves are followed in the order State.Moves returns them, so the visit
//	sequence is fully reproducible for a deterministic state.
//
// Complexity (V = reachable states, E = legal moves among them)
//
//   - Time:   O(V + E) transitions
//   - Memory: O(V) states and keys
package bfs
