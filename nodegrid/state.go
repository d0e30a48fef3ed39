package nodegrid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridshift/grid"
)

// Target is the corner the payload must reach.
var Target = grid.Coord{X: 0, Y: 0}

// FullKey is the identity of a full-fidelity State: the payload location
// and every node's used amount, packed into a string. Sizes are fixed for
// the lifetime of a search, so used amounts determine the configuration.
type FullKey string

// Options holds runtime toggles shared by a State and all its successors.
type Options struct {
	// MoveCheck recomputes the legal-move list from scratch after every
	// transition and panics if the incrementally maintained list differs.
	MoveCheck bool
}

// Option configures New.
type Option func(*Options)

// WithMoveCheck enables the diagnostic move-list cross-check.
func WithMoveCheck() Option {
	return func(o *Options) { o.MoveCheck = true }
}

// State is a full-fidelity puzzle state. It is immutable: Apply returns a
// new State and leaves the receiver untouched.
type State struct {
	grid    *grid.Grid[Node]
	payload grid.Coord
	moves   []grid.Move
	opts    *Options
}

// New builds the initial state for g with the payload at payload. The grid
// is copied.
// Returns ErrNilGrid, ErrPayloadOutOfRange or ErrEmptyPayload.
func New(g *grid.Grid[Node], payload grid.Coord, opts ...Option) (*State, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(payload) {
		return nil, fmt.Errorf("%w: %s in %dx%d", ErrPayloadOutOfRange, payload, g.Width(), g.Height())
	}
	if g.At(payload).Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPayload, payload)
	}
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	s := &State{grid: g.Clone(), payload: payload, opts: o}
	s.moves = LegalMoves(s.grid)
	return s, nil
}

// DefaultPayload returns the top-right node, where the payload starts in
// the classic cluster layout.
func DefaultPayload(g *grid.Grid[Node]) grid.Coord {
	return grid.Coord{X: g.Width() - 1, Y: 0}
}

// Payload returns the payload location.
func (s *State) Payload() grid.Coord { return s.payload }

// Width returns the number of node columns.
func (s *State) Width() int { return s.grid.Width() }

// Height returns the number of node rows.
func (s *State) Height() int { return s.grid.Height() }

// Node returns the node at c. It panics if c is off the grid.
func (s *State) Node(c grid.Coord) Node { return s.grid.At(c) }

// Grid returns a copy of the node grid.
func (s *State) Grid() *grid.Grid[Node] { return s.grid.Clone() }

// Done reports whether the payload has reached Target.
func (s *State) Done() bool { return s.payload == Target }

// Moves returns the cached legal moves. The slice must not be modified.
func (s *State) Moves() []grid.Move { return s.moves }

// Estimate returns the taxicab distance from the payload to Target plus one
// for each diagonal band ahead of the payload that currently has no node
// able to take the payload's data.
func (s *State) Estimate() int {
	d := s.payload.Manhattan(Target)
	need := s.grid.At(s.payload).Used
	blocked := 0
	for k := 0; k < d; k++ {
		if !s.bandCanReceive(k, need) {
			blocked++
		}
	}
	return d + blocked
}

// bandCanReceive reports whether some node with x+y == k has at least need
// available.
func (s *State) bandCanReceive(k, need int) bool {
	w, h := s.grid.Width(), s.grid.Height()
	for x := max(0, k-(h-1)); x <= min(k, w-1); x++ {
		if s.grid.At(grid.Coord{X: x, Y: k - x}).Avail >= need {
			return true
		}
	}
	return false
}

// Apply performs m, which must be one of s.Moves(), and returns the new
// state. Only the two touched nodes change, and only moves touching them
// are recomputed.
func (s *State) Apply(m grid.Move) *State {
	from, to := m.From, m.To()
	g := s.grid.Clone()
	src, dst := transfer(g.At(from), g.At(to))
	g.Set(from, src)
	g.Set(to, dst)

	next := &State{grid: g, payload: s.payload, opts: s.opts}
	if from == s.payload {
		next.payload = to
	}
	next.moves = next.refresh(s.moves, from, to)
	if s.opts.MoveCheck {
		next.checkMoves()
	}
	return next
}

// refresh drops every move of prev touching a or b and appends the legal
// moves touching them in the current grid.
func (s *State) refresh(prev []grid.Move, a, b grid.Coord) []grid.Move {
	moves := make([]grid.Move, 0, len(prev)+8)
	for _, m := range prev {
		if !m.Touches(a) && !m.Touches(b) {
			moves = append(moves, m)
		}
	}
	moves = s.appendTouching(moves, a, nil)
	return s.appendTouching(moves, b, &a)
}

// appendTouching appends the legal moves out of and into c. Moves whose
// other end is skip were already produced for skip and are left out.
func (s *State) appendTouching(moves []grid.Move, c grid.Coord, skip *grid.Coord) []grid.Move {
	here := s.grid.At(c)
	for _, d := range s.grid.Neighbors(c) {
		n := c.Add(d)
		if skip != nil && n == *skip {
			continue
		}
		there := s.grid.At(n)
		if here.Fits(there) {
			moves = append(moves, grid.Move{From: c, Dir: d})
		}
		if there.Fits(here) {
			moves = append(moves, grid.Move{From: n, Dir: d.Inverse()})
		}
	}
	return moves
}

// LegalMoves recomputes every legal move of g from scratch, in row-major
// source order and Up, Down, Left, Right direction order.
func LegalMoves(g *grid.Grid[Node]) []grid.Move {
	var moves []grid.Move
	for c, n := range g.All() {
		for _, d := range g.Neighbors(c) {
			if n.Fits(g.At(c.Add(d))) {
				moves = append(moves, grid.Move{From: c, Dir: d})
			}
		}
	}
	return moves
}

// checkMoves compares the cached move list with a full recomputation and
// panics on any difference.
func (s *State) checkMoves() {
	missing, extra := diffMoves(LegalMoves(s.grid), s.moves)
	if len(missing) == 0 && len(extra) == 0 {
		return
	}
	panic(fmt.Sprintf("nodegrid: cached moves diverged: missing %v, extra %v", missing, extra))
}

// diffMoves returns the moves of want absent from got and the moves of got
// absent from want. Duplicates in got count as extra.
func diffMoves(want, got []grid.Move) (missing, extra []grid.Move) {
	seen := make(map[grid.Move]int, len(want))
	for _, m := range want {
		seen[m]++
	}
	for _, m := range got {
		if seen[m] == 0 {
			extra = append(extra, m)
			continue
		}
		seen[m]--
	}
	for _, m := range want {
		if seen[m] > 0 {
			missing = append(missing, m)
			seen[m]--
		}
	}
	return missing, extra
}

// Key packs the payload location and all used amounts into a FullKey.
func (s *State) Key() FullKey {
	buf := make([]byte, 0, 2*binary.MaxVarintLen64+s.grid.Len()*2)
	buf = binary.AppendUvarint(buf, uint64(s.payload.X))
	buf = binary.AppendUvarint(buf, uint64(s.payload.Y))
	for _, n := range s.grid.All() {
		buf = binary.AppendUvarint(buf, uint64(n.Used))
	}
	return FullKey(buf)
}

// String renders the state's used/size grid with the payload marked by '*'.
func (s *State) String() string {
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		cells := make([]string, 0, s.Width())
		for x := 0; x < s.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			cell := s.grid.At(c).String()
			if c == s.payload {
				cell += "*"
			}
			cells = append(cells, cell)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
