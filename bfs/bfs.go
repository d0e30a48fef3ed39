package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridshift/astar"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S any] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S astar.State[S, M, K], M any, K comparable] struct {
	opts  Options
	queue []queueItem[S]
	res   *Result[S, K]
}

// Explore runs breadth-first search from start, applying any number of
// functional Options. Goal states are visited but not expanded.
// Returns ErrOptionViolation for bad options, ErrStateLimit (with the
// partial Result) when MaxStates is exceeded, or any OnVisit error.
func Explore[S astar.State[S, M, K], M any, K comparable](start S, opts ...Option) (*Result[S, K], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, M, K]{
		opts: o,
		res: &Result[S, K]{
			Depth:     make(map[K]int),
			GoalDepth: -1,
		},
	}
	// Seed queue with the start state
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// ShortestDistance returns the number of moves from start to the nearest
// goal, and false if no goal is reachable.
func ShortestDistance[S astar.State[S, M, K], M any, K comparable](start S, opts ...Option) (int, bool, error) {
	res, err := Explore[S, M, K](start, append(opts, WithStopAtGoal())...)
	if err != nil {
		return 0, false, err
	}
	return res.GoalDepth, res.Found, nil
}

// enqueue marks s seen at depth d and adds it to the queue.
func (w *walker[S, M, K]) enqueue(s S, d int) {
	w.res.Depth[s.Key()] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, a goal (with StopAtGoal), an
// error or the state limit.
func (w *walker[S, M, K]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if item.state.Done() {
			if !w.res.Found {
				w.res.Found = true
				w.res.GoalDepth = item.depth
			}
			if w.opts.StopAtGoal {
				return nil
			}
			continue
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S, M, K]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state.Key(), item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
	}
	return nil
}

// enqueueSuccessors applies every legal move, honoring MaxDepth and
// MaxStates, and enqueues each unseen successor.
func (w *walker[S, M, K]) enqueueSuccessors(item queueItem[S]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, m := range item.state.Moves() {
		succ := item.state.Apply(m)
		if _, seen := w.res.Depth[succ.Key()]; seen {
			continue
		}
		if w.opts.MaxStates > 0 && len(w.res.Depth) >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d states", ErrStateLimit, len(w.res.Depth))
		}
		w.enqueue(succ, nextDepth)
	}
	return nil
}
