package astar

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted
	// before the search concludes.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrInadmissible marks the panic raised when a cheaper path to an
	// already expanded state is found.
	ErrInadmissible = errors.New("astar: cheaper path to expanded state; heuristic is not admissible")
)

// State is the capability contract the engine consumes.
//
// S is the concrete state type itself, M the move type and K the identity
// key. Two states with equal keys must search identically from there on.
type State[S any, M any, K comparable] interface {
	// Done reports whether this is a goal state.
	Done() bool
	// Estimate is a lower bound on the number of moves to any goal.
	Estimate() int
	// Moves returns the current legal moves. The slice is owned by the
	// state and must not be modified; the engine never recomputes it.
	Moves() []M
	// Apply returns the state reached by m, which must come from Moves.
	// The receiver is left untouched.
	Apply(m M) S
	// Key projects the state onto its search identity.
	Key() K
}

// Provenance records how a state was reached: the state it was expanded
// from, the move taken and the accumulated cost.
type Provenance[S any, M any] struct {
	Prev S
	Move M
	Cost int
}

// Entry is one element of the open list. Prov is nil exactly for the start
// state.
type Entry[S any, M any] struct {
	State S
	Prov  *Provenance[S, M]
	score int
}

// Cost returns the accumulated cost of the entry (0 for the start state).
func (e Entry[S, M]) Cost() int {
	if e.Prov == nil {
		return 0
	}
	return e.Prov.Cost
}

// Score returns cost + estimate as computed when the entry was enqueued.
func (e Entry[S, M]) Score() int { return e.score }

// Stats summarises the work done by one Search call.
type Stats struct {
	Expanded   int // states recorded in the visited record and expanded
	Generated  int // successor states produced by Apply
	Duplicates int // open-list entries discarded as equal-or-worse repeats
	MaxOpen    int // peak open-list length
}

// Result is the outcome of Search.
//   - Found: a goal was reached; Moves holds the path (empty if the start
//     state is itself a goal).
//   - !Found: the open list drained; the goal is unreachable.
type Result[M any] struct {
	Found bool
	Moves []M
	Stats Stats
}

// InadmissibleError is the panic value raised by Search when a successor is
// reached more cheaply than the cost it was already expanded at.
type InadmissibleError struct {
	Key    any // key of the offending state
	Closed int // cost recorded when the state was expanded
	Found  int // cheaper cost just discovered
}

func (e *InadmissibleError) Error() string {
	return fmt.Sprintf("%v: key %v closed at cost %d, reached again at %d", ErrInadmissible, e.Key, e.Closed, e.Found)
}

// Unwrap returns ErrInadmissible.
func (e *InadmissibleError) Unwrap() error { return ErrInadmissible }

// Option configures Search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the runtime configuration of one Search call.
type Options struct {
	// TraceEvery logs a progress record every TraceEvery expansions.
	// 0 disables tracing.
	TraceEvery int

	// Logger receives progress records.
	Logger *slog.Logger

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit
	// after that many expansions.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with tracing disabled, a discarding
// logger and no expansion limit.
func DefaultOptions() Options {
	return Options{
		TraceEvery:    0,
		Logger:        slog.New(slog.DiscardHandler),
		MaxExpansions: 0,
	}
}

// WithTraceEvery logs progress every n expansions.
//
//	n > 0:  trace every n expansions
//	n == 0: tracing disabled
//	n < 0:  invalid option → ErrOptionViolation
func WithTraceEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TraceEvery cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TraceEvery = n
	}
}

// WithLogger sets the destination for progress records. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expansions (0 = unlimited).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
