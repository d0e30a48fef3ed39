package nodegrid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridshift/grid"
	"github.com/katalvlaran/gridshift/nodegrid"
)

// sample is the 3×3 cluster from the puzzle statement. The payload starts
// at (2,0) and needs 7 moves.
const sample = `root@ebhq-gridcenter# df -h
Filesystem            Size  Used  Avail  Use%
/dev/grid/node-x0-y0   10T    8T     2T   80%
/dev/grid/node-x0-y1   11T    6T     5T   54%
/dev/grid/node-x0-y2   32T   28T     4T   87%
/dev/grid/node-x1-y0    9T    7T     2T   77%
/dev/grid/node-x1-y1    8T    0T     8T    0%
/dev/grid/node-x1-y2   11T    7T     4T   63%
/dev/grid/node-x2-y0   10T    6T     4T   60%
/dev/grid/node-x2-y1    9T    8T     1T   88%
/dev/grid/node-x2-y2    9T    6T     3T   66%
`

// n is shorthand for a node with the given used and available amounts.
func n(used, avail int) nodegrid.Node {
	return nodegrid.Node{Used: used, Avail: avail}
}

// mustGrid builds a node grid from rows indexed [y][x].
func mustGrid(t testing.TB, rows [][]nodegrid.Node) *grid.Grid[nodegrid.Node] {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return g
}

// mustState builds a state with the payload at the top-right node.
func mustState(t testing.TB, g *grid.Grid[nodegrid.Node], opts ...nodegrid.Option) *nodegrid.State {
	t.Helper()
	s, err := nodegrid.New(g, nodegrid.DefaultPayload(g), opts...)
	require.NoError(t, err)
	return s
}

func sampleState(t testing.TB, opts ...nodegrid.Option) *nodegrid.State {
	t.Helper()
	g, err := nodegrid.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return mustState(t, g, opts...)
}

// qualifyingGrid generates a w×h grid that passes classification: one
// empty node (never the top-right payload), fillers with used 13..15 in
// nodes of size 20..24, and blockers of 60..70 with at most 5 available.
// Fillers share few distinct amounts so the full-fidelity search stays small.
func qualifyingGrid(rng *rand.Rand, w, h int) *grid.Grid[nodegrid.Node] {
	g := grid.New[nodegrid.Node](w, h)
	payload := grid.Coord{X: w - 1, Y: 0}
	var empty grid.Coord
	for {
		empty = grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		if empty != payload {
			break
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.Coord{X: x, Y: y}
			size := 20 + rng.Intn(5)
			switch {
			case c == empty:
				g.Set(c, n(0, size))
			case c != payload && rng.Intn(5) == 0:
				g.Set(c, n(60+rng.Intn(11), rng.Intn(6)))
			default:
				used := 13 + rng.Intn(3)
				g.Set(c, n(used, size-used))
			}
		}
	}
	return g
}

// wildGrid generates a small grid with arbitrary amounts, so nodes merge and
// several nodes may be empty. The payload node is never empty.
func wildGrid(rng *rand.Rand, w, h int) *grid.Grid[nodegrid.Node] {
	g := grid.New[nodegrid.Node](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			size := 4 + rng.Intn(5)
			used := rng.Intn(size + 1)
			if rng.Intn(3) == 0 {
				used = 0
			}
			g.Set(grid.Coord{X: x, Y: y}, n(used, size-used))
		}
	}
	p := grid.Coord{X: w - 1, Y: 0}
	if node := g.At(p); node.Used == 0 {
		g.Set(p, n(1, node.Avail-1))
	}
	return g
}
