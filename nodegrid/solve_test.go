package nodegrid_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridshift/astar"
	"github.com/katalvlaran/gridshift/bfs"
	"github.com/katalvlaran/gridshift/grid"
	"github.com/katalvlaran/gridshift/nodegrid"
)

// replay applies moves to s, checking each is legal when taken, and
// returns the final state.
func replay(t *testing.T, s *nodegrid.State, moves []grid.Move) *nodegrid.State {
	t.Helper()
	for i, m := range moves {
		require.True(t, slices.Contains(s.Moves(), m), "move %d (%s) not legal", i, m)
		s = s.Apply(m)
	}
	return s
}

func TestSolve_Sample(t *testing.T) {
	s := sampleState(t, nodegrid.WithMoveCheck())

	sol, err := nodegrid.Solve(s)
	require.NoError(t, err)
	assert.True(t, sol.Compressed)
	assert.NoError(t, sol.Declined)
	require.True(t, sol.Result.Found)
	assert.Len(t, sol.Result.Moves, 7)
	assert.True(t, replay(t, s, sol.Result.Moves).Done())

	full, err := nodegrid.SolveFull(s)
	require.NoError(t, err)
	require.True(t, full.Found)
	assert.Len(t, full.Moves, 7)
	assert.True(t, replay(t, s, full.Moves).Done())
}

// TestSolve_TwoEmptyNodes solves the 2×2 grid whose top-left node is
// already empty, so the payload moves there directly.
func TestSolve_TwoEmptyNodes(t *testing.T) {
	s := mustState(t, mustGrid(t, [][]nodegrid.Node{
		{n(0, 10), n(8, 2)},
		{n(6, 4), n(0, 10)},
	}))

	sol, err := nodegrid.Solve(s)
	require.NoError(t, err)
	assert.False(t, sol.Compressed)
	assert.ErrorIs(t, sol.Declined, nodegrid.ErrNotCompressible)
	require.True(t, sol.Result.Found)
	assert.Equal(t, []grid.Move{{From: grid.Coord{X: 1, Y: 0}, Dir: grid.Left}}, sol.Result.Moves)
}

// TestSolve_ThroughEmptySlot needs the top-left node to be emptied through
// the single empty slot before the payload can move in.
func TestSolve_ThroughEmptySlot(t *testing.T) {
	s := mustState(t, mustGrid(t, [][]nodegrid.Node{
		{n(6, 4), n(8, 2)},
		{n(0, 10), n(6, 4)},
	}))

	want := []grid.Move{
		{From: grid.Coord{X: 0, Y: 0}, Dir: grid.Down},
		{From: grid.Coord{X: 1, Y: 0}, Dir: grid.Left},
	}

	sol, err := nodegrid.Solve(s)
	require.NoError(t, err)
	assert.True(t, sol.Compressed)
	require.True(t, sol.Result.Found)
	assert.Equal(t, want, sol.Result.Moves)

	full, err := nodegrid.SolveFull(s)
	require.NoError(t, err)
	assert.Equal(t, want, full.Moves)
}

// TestSolve_EnclosedEmpty surrounds the only empty node with blockers, so
// nothing can move.
func TestSolve_EnclosedEmpty(t *testing.T) {
	f, b := n(6, 4), n(50, 2)
	s := mustState(t, mustGrid(t, [][]nodegrid.Node{
		{f, b, f},
		{b, n(0, 10), b},
		{f, b, f},
	}))
	assert.Empty(t, s.Moves())

	sol, err := nodegrid.Solve(s)
	require.NoError(t, err)
	assert.True(t, sol.Compressed)
	assert.False(t, sol.Result.Found)
	assert.Empty(t, sol.Result.Moves)

	full, err := nodegrid.SolveFull(s)
	require.NoError(t, err)
	assert.False(t, full.Found)
}

func TestSolve_PayloadAtTarget(t *testing.T) {
	g := mustGrid(t, [][]nodegrid.Node{{n(3, 3), n(0, 5)}})
	s, err := nodegrid.New(g, nodegrid.Target)
	require.NoError(t, err)

	sol, err := nodegrid.Solve(s)
	require.NoError(t, err)
	assert.True(t, sol.Result.Found)
	assert.Empty(t, sol.Result.Moves)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	_, err := nodegrid.SolveFull(sampleState(t), astar.WithMaxExpansions(1))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
}

// TestSolve_CompressedMatchesFull checks on random qualifying grids that
// the compressed search, the full search and an exhaustive breadth-first
// search over compressed states agree on the solution length.
func TestSolve_CompressedMatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(2016))
	rounds := 40
	if testing.Short() {
		rounds = 10
	}
	for i := 0; i < rounds; i++ {
		g := qualifyingGrid(rng, 2+rng.Intn(2), 2+rng.Intn(2))
		s := mustState(t, g, nodegrid.WithMoveCheck())
		c, err := nodegrid.Compress(s)
		require.NoError(t, err, "grid %d:\n%s", i, s)

		comp, err := nodegrid.SolveCompressed(c)
		require.NoError(t, err)
		full, err := nodegrid.SolveFull(s)
		require.NoError(t, err)
		dist, ok, err := bfs.ShortestDistance[*nodegrid.Compressed, grid.Move, nodegrid.CompressedKey](c)
		require.NoError(t, err)

		require.Equal(t, ok, full.Found, "grid %d:\n%s", i, s)
		require.Equal(t, ok, comp.Found, "grid %d:\n%s", i, s)
		if !ok {
			continue
		}
		assert.Len(t, full.Moves, dist, "grid %d:\n%s", i, s)
		assert.Len(t, comp.Moves, dist, "grid %d:\n%s", i, s)
		assert.True(t, replay(t, s, comp.Moves).Done())
	}
}

// TestSolve_MatchesBreadthFirst compares the engine with exhaustive search
// on random grids where nodes merge freely and nothing is compressible.
func TestSolve_MatchesBreadthFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	checked := 0
	for i := 0; i < 60; i++ {
		g := wildGrid(rng, 2+rng.Intn(2), 1+rng.Intn(2))
		s := mustState(t, g, nodegrid.WithMoveCheck())

		dist, ok, err := bfs.ShortestDistance[*nodegrid.State, grid.Move, nodegrid.FullKey](s, bfs.WithMaxStates(20000))
		if errors.Is(err, bfs.ErrStateLimit) {
			continue
		}
		require.NoError(t, err)
		checked++

		res, err := nodegrid.SolveFull(s)
		require.NoError(t, err)
		require.Equal(t, ok, res.Found, "grid %d:\n%s", i, s)
		if ok {
			assert.Len(t, res.Moves, dist, "grid %d:\n%s", i, s)
			assert.True(t, replay(t, s, res.Moves).Done())
		}
	}
	assert.Positive(t, checked)
}

// TestEstimate_Admissible compares the estimate of every reachable state
// with its true remaining distance.
func TestEstimate_Admissible(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		g := wildGrid(rng, 2+rng.Intn(2), 1+rng.Intn(2))
		s := mustState(t, g)

		all, err := bfs.Explore[*nodegrid.State, grid.Move, nodegrid.FullKey](s, bfs.WithMaxStates(500))
		if errors.Is(err, bfs.ErrStateLimit) {
			continue
		}
		require.NoError(t, err)

		for _, st := range all.Order {
			dist, ok, err := bfs.ShortestDistance[*nodegrid.State, grid.Move, nodegrid.FullKey](st)
			require.NoError(t, err)
			if ok {
				assert.LessOrEqual(t, st.Estimate(), dist, "state:\n%s", st)
			}
		}
	}
}
