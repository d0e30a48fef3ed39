package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrOptionViolation reports a rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit reports that MaxStates distinct states were seen
	// before the exploration finished.
	ErrStateLimit = errors.New("bfs: state limit reached")
)

// Option mutates Options. A rejected value is remembered and Explore
// fails with ErrOptionViolation before touching the start state.
type Option func(*Options)

// Options tunes one exploration.
type Options struct {
	// OnVisit sees every visited key with its depth. A non-nil return
	// stops Explore, which returns it wrapped.
	OnVisit func(key any, depth int) error

	// MaxDepth bounds the depth of enqueued states; 0 means no bound.
	MaxDepth int

	// MaxStates bounds the number of distinct keys; 0 means no bound.
	// Reaching it fails with ErrStateLimit.
	MaxStates int

	// StopAtGoal ends exploration as soon as a goal state is visited.
	StopAtGoal bool

	err error // last rejected option
}

// DefaultOptions returns Options with no limits, a no-op hook and
// exhaustive exploration.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(any, int) error { return nil },
		MaxDepth:   0,
		MaxStates:  0,
		StopAtGoal: false,
	}
}

// WithOnVisit installs fn as the visit hook. A nil fn keeps the no-op.
func WithOnVisit(fn func(key any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth leaves states deeper than d unexplored; d == 0 removes the
// bound and d < 0 is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates caps the number of distinct states (0 = unlimited).
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: negative MaxStates %d", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithStopAtGoal ends the exploration at the first goal visited.
func WithStopAtGoal() Option {
	return func(o *Options) {
		o.StopAtGoal = true
	}
}

// Result is what Explore saw. Order lists states as visited; Depth maps
// every seen key (visited or still queued) to its move count from the
// start. GoalDepth is the depth of the first goal visited, which is the
// shortest solution length, or -1 when Found is false.
type Result[S any, K comparable] struct {
	Order     []S
	Depth     map[K]int
	Found     bool
	GoalDepth int
}
