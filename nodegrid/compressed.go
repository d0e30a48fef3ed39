package nodegrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridshift/grid"
)

// CompressedKey is the identity of a Compressed state. Every other node's
// contents are deliberately left out: fillers are interchangeable and
// blockers never move, so two states agreeing on these fields search
// identically.
type CompressedKey struct {
	Width, Height  int
	Empty, Payload grid.Coord
}

// Compressed wraps a State whose grid passed classification. Moves,
// transitions, the terminal test and the estimate are the wrapped state's;
// only identity is narrowed to a CompressedKey.
type Compressed struct {
	inner     *State
	threshold int
	empty     grid.Coord
}

// Compress classifies every node of s and, if the grid splits into exactly
// one empty node, fillers and blockers, returns the compressed wrapper.
//
// With empty the single node holding no data, threshold = empty.Size()+1 is
// the smallest Used that counts as a blocker. Fillers are the other nodes
// below it; small nodes are the fillers plus the empty node. The grid is
// accepted iff:
//
//  1. every filler's data fits into every small node once emptied;
//  2. no small node holding filler data has room for another filler;
//  3. blockers never fit into a small node and have room for neither a
//     filler nor another blocker;
//  4. the payload node is a filler.
//
// Under these rules the only legal moves are fillers sliding into the empty
// node, so the empty location and the payload location determine the rest
// of the search. Otherwise Compress returns ErrNotCompressible wrapped with
// the first violated rule, and the caller should search s unmodified.
func Compress(s *State) (*Compressed, error) {
	// 1) Locate the single empty node.
	var empty grid.Coord
	empties := 0
	for c, n := range s.grid.All() {
		if n.Empty() {
			empty = c
			empties++
		}
	}
	if empties != 1 {
		return nil, fmt.Errorf("%w: found %d empty nodes, want 1", ErrNotCompressible, empties)
	}
	threshold := s.grid.At(empty).Size() + 1

	// 2) Gather the extremes of each band.
	minFillerUsed, maxFillerUsed := math.MaxInt, 0
	minSmallSize, maxSmallSize := s.grid.At(empty).Size(), s.grid.At(empty).Size()
	minBlockerUsed, maxBlockerAvail := math.MaxInt, -1
	blockers := 0
	for _, n := range s.grid.All() {
		switch {
		case n.Empty():
		case n.Used < threshold:
			minFillerUsed = min(minFillerUsed, n.Used)
			maxFillerUsed = max(maxFillerUsed, n.Used)
			minSmallSize = min(minSmallSize, n.Size())
			maxSmallSize = max(maxSmallSize, n.Size())
		default:
			minBlockerUsed = min(minBlockerUsed, n.Used)
			maxBlockerAvail = max(maxBlockerAvail, n.Avail)
			blockers++
		}
	}

	// 3) The payload must be an ordinary filler.
	if s.grid.At(s.payload).Used >= threshold {
		return nil, fmt.Errorf("%w: payload %s holds %d, blocker threshold is %d",
			ErrNotCompressible, s.payload, s.grid.At(s.payload).Used, threshold)
	}

	// 4) Fillers fit into any small node once it is emptied.
	if maxFillerUsed > minSmallSize {
		return nil, fmt.Errorf("%w: filler of %d does not fit a small node of size %d",
			ErrNotCompressible, maxFillerUsed, minSmallSize)
	}

	// 5) A small node holding filler data never has room for another filler.
	if maxSmallSize-minFillerUsed >= minFillerUsed {
		return nil, fmt.Errorf("%w: fillers can merge (largest small size %d, smallest filler %d)",
			ErrNotCompressible, maxSmallSize, minFillerUsed)
	}

	// 6) Blockers neither move nor receive.
	if blockers > 0 {
		switch {
		case minBlockerUsed <= maxSmallSize:
			return nil, fmt.Errorf("%w: blocker of %d fits a small node of size %d",
				ErrNotCompressible, minBlockerUsed, maxSmallSize)
		case maxBlockerAvail >= minFillerUsed:
			return nil, fmt.Errorf("%w: blocker with %d available can take a filler of %d",
				ErrNotCompressible, maxBlockerAvail, minFillerUsed)
		case maxBlockerAvail >= minBlockerUsed:
			return nil, fmt.Errorf("%w: blocker with %d available can take a blocker of %d",
				ErrNotCompressible, maxBlockerAvail, minBlockerUsed)
		}
	}

	return &Compressed{inner: s, threshold: threshold, empty: empty}, nil
}

// Done reports whether the payload has reached Target.
func (c *Compressed) Done() bool { return c.inner.Done() }

// Estimate returns the wrapped state's estimate. Under classification only
// the empty node can take the payload, so it depends on the key alone.
func (c *Compressed) Estimate() int { return c.inner.Estimate() }

// Moves returns the wrapped state's legal moves.
func (c *Compressed) Moves() []grid.Move { return c.inner.Moves() }

// Apply performs m on the wrapped state. Every legal move fills the empty
// node, so its source becomes the new empty node.
func (c *Compressed) Apply(m grid.Move) *Compressed {
	if c.inner.opts.MoveCheck && m.To() != c.empty {
		panic(fmt.Sprintf("nodegrid: move %s does not fill the empty node %s", m, c.empty))
	}
	return &Compressed{inner: c.inner.Apply(m), threshold: c.threshold, empty: m.From}
}

// Key projects the state onto its CompressedKey.
func (c *Compressed) Key() CompressedKey {
	return CompressedKey{
		Width:   c.inner.Width(),
		Height:  c.inner.Height(),
		Empty:   c.empty,
		Payload: c.inner.Payload(),
	}
}

// Inner returns the wrapped full-fidelity state.
func (c *Compressed) Inner() *State { return c.inner }

// Empty returns the location of the empty node.
func (c *Compressed) Empty() grid.Coord { return c.empty }

// Threshold returns the smallest used amount that counts as a blocker.
func (c *Compressed) Threshold() int { return c.threshold }

// IsBlocker reports whether n is too large to ever move.
func (c *Compressed) IsBlocker(n Node) bool { return n.Used >= c.threshold }
