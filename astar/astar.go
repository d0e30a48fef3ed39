package astar

import (
	"slices"
	"sort"
)

// Search runs A* from start and returns the shortest move sequence to a
// goal, or a Result with Found == false if no goal is reachable.
//
// Type arguments are usually spelled out at the call site, since M and K
// cannot be inferred from S alone:
//
//	res, err := astar.Search[*puzzle.State, puzzle.Move, puzzle.Key](start)
//
// Returns ErrOptionViolation for bad options and ErrExpansionLimit (with the
// partial Stats) when WithMaxExpansions is exhausted. Panics with an
// *InadmissibleError if the state's Estimate turns out not to be admissible.
//
// Complexity:
//
//   - Time:  O(E·(n + c)) where E is the number of expansions, n the open
//     list length at insertion time and c the cost of Apply.
//   - Space: O(V) states retained until return for path reconstruction.
func Search[S State[S, M, K], M any, K comparable](start S, opts ...Option) (*Result[M], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) A start state that is already a goal needs no moves.
	if start.Done() {
		return &Result[M]{Found: true, Moves: []M{}}, nil
	}

	// 3) Seed the open list with the start state (no provenance).
	r := &runner[S, M, K]{
		cfg:     cfg,
		visited: make(map[K]*Provenance[S, M]),
	}
	r.push(Entry[S, M]{State: start, score: start.Estimate()})

	// 4) Main loop.
	return r.process()
}

// runner holds the mutable state of a single Search execution.
// open is kept ascending by score, FIFO among equals; visited is the closed
// set, where a nil value marks the start state.
type runner[S State[S, M, K], M any, K comparable] struct {
	cfg     Options
	open    []Entry[S, M]
	visited map[K]*Provenance[S, M]
	stats   Stats
}

// process pops entries until a goal is generated, the open list drains or
// the expansion budget runs out.
func (r *runner[S, M, K]) process() (*Result[M], error) {
	for len(r.open) > 0 {
		// 1) Pop the lowest-score entry.
		e := r.open[0]
		r.open = r.open[1:]
		key := e.State.Key()
		cost := e.Cost()

		// 2) Discard repeats reached at an equal or worse cost.
		if prov, seen := r.visited[key]; seen && closedCost(prov) <= cost {
			r.stats.Duplicates++
			continue
		}

		// 3) Respect the expansion budget.
		if r.cfg.MaxExpansions > 0 && r.stats.Expanded >= r.cfg.MaxExpansions {
			return &Result[M]{Stats: r.stats}, ErrExpansionLimit
		}

		// 4) Close the state: record its provenance.
		r.visited[key] = e.Prov
		r.stats.Expanded++
		r.trace(e, cost)

		// 5) Expand its legal moves.
		if moves, done := r.expand(e.State, cost); done {
			return &Result[M]{Found: true, Moves: moves, Stats: r.stats}, nil
		}
	}

	// Open list drained: the goal is unreachable.
	return &Result[M]{Found: false, Stats: r.stats}, nil
}

// expand generates every successor of s. If one of them is a goal it
// returns the full path and true.
func (r *runner[S, M, K]) expand(s S, cost int) ([]M, bool) {
	next := cost + 1
	for _, m := range s.Moves() {
		succ := s.Apply(m)
		r.stats.Generated++

		// Goal test at generation time.
		if succ.Done() {
			return r.path(s, m), true
		}

		key := succ.Key()
		prov, seen := r.visited[key]
		switch {
		case !seen || prov == nil:
			// Unseen, or only the start state: enqueue. A start-state
			// repeat is discarded on pop since its cost 0 is unbeatable.
			r.push(Entry[S, M]{
				State: succ,
				Prov:  &Provenance[S, M]{Prev: s, Move: m, Cost: next},
				score: next + succ.Estimate(),
			})
		case prov.Cost > next:
			// Already expanded, yet reached more cheaply now.
			panic(&InadmissibleError{Key: key, Closed: prov.Cost, Found: next})
		}
	}
	return nil, false
}

// push inserts e after every open entry with a score ≤ e.score.
func (r *runner[S, M, K]) push(e Entry[S, M]) {
	i := sort.Search(len(r.open), func(i int) bool { return r.open[i].score > e.score })
	r.open = slices.Insert(r.open, i, e)
	r.stats.MaxOpen = max(r.stats.MaxOpen, len(r.open))
}

// path walks provenance back from s, appends the winning move and reverses
// the sequence into start → goal order.
func (r *runner[S, M, K]) path(s S, last M) []M {
	moves := []M{last}
	for cur := s; ; {
		prov := r.visited[cur.Key()]
		if prov == nil {
			break
		}
		moves = append(moves, prov.Move)
		cur = prov.Prev
	}
	slices.Reverse(moves)
	return moves
}

// trace logs a progress record every cfg.TraceEvery expansions.
func (r *runner[S, M, K]) trace(e Entry[S, M], cost int) {
	if r.cfg.TraceEvery == 0 || r.stats.Expanded%r.cfg.TraceEvery != 0 {
		return
	}
	r.cfg.Logger.Info("astar: progress",
		"expanded", r.stats.Expanded,
		"open", len(r.open),
		"visited", len(r.visited),
		"cost", cost,
		"estimate", e.score-cost,
	)
}

func closedCost[S any, M any](p *Provenance[S, M]) int {
	if p == nil {
		return 0
	}
	return p.Cost
}
