// Package astar implements a small, generic best-first (A*) search over
// implicit state spaces.
//
// Overview:
//
//   - A problem supplies its own state type implementing State. The engine
//     never inspects a state beyond that contract: it asks for the terminal
//     test, the remaining-distance estimate, the legal moves and the
//     transition, and it identifies states through their comparable Key.
//   - Every move costs 1; the accumulated cost of a state is the number of
//     moves taken from the start.
//   - Search returns the winning move sequence, or Result.Found == false when
//     the open list drains. An unreachable goal is a normal outcome, not an
//     error.
//
// Ordering:
//
//   - The open list is a slice kept sorted by score = cost + estimate. New
//     entries are inserted after every entry with an equal score, so among
//     equal scores the first discovered entry is expanded first. The result
//     is fully deterministic for a deterministic State implementation.
//   - Insertion is O(n) rather than the O(log n) of a heap; the trade buys
//     first-in-first-out tie-breaking without a sequence counter.
//
// Closed set:
//
//   - The visited record maps a Key to the Provenance it was expanded with
//     (nil for the start state). Presence means expanded, not merely seen.
//   - Keys need only guarantee "would search identically from here". A
//     problem may project several concrete states onto one key when they
//     provably share their future.
//
// Contract obligations:
//
//   - Estimate must never overestimate, and must not drop by more than 1
//     across a single move. If the engine discovers a strictly cheaper path
//     to an already expanded state it panics with an *InadmissibleError:
//     the heuristic is wrong and any answer would be silently suboptimal.
//
// Options:
//
//   - WithTraceEvery(n): log progress every n expansions (0 disables).
//   - WithLogger(l):     destination for progress records (default: discard).
//   - WithMaxExpansions(n): stop with ErrExpansionLimit after n expansions.
//
// Concurrency:
//
//   - Search is synchronous and single-threaded. All working data lives in
//     one call and is released when it returns. Memory grows with the number
//     of distinct states expanded; nothing is evicted.
package astar
