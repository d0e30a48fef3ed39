package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridshift/astar"
	"github.com/katalvlaran/gridshift/grid"
	"github.com/katalvlaran/gridshift/nodegrid"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve(t *testing.T) {
	out, logs, err := run(t, "solve", "testdata/sample.txt")
	require.NoError(t, err)
	assert.Equal(t, "moves: 7\n", out)
	assert.Contains(t, logs, "gridshift: search finished")
	assert.Contains(t, logs, "compressed=true")
	assert.Contains(t, logs, "run=")
}

func TestSolve_PrintMovesFull(t *testing.T) {
	out, logs, err := run(t, "solve", "testdata/sample.txt", "--no-compress", "--move-check", "--print-moves")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "moves: 7", lines[0])
	assert.Regexp(t, `^\s+7  \(\d,\d\)->(left|up)$`, lines[7])
	assert.Contains(t, logs, "compressed=false")
}

func TestSolve_NoSolution(t *testing.T) {
	out, _, err := run(t, "solve", "testdata/enclosed.txt")
	require.NoError(t, err)
	assert.Equal(t, "no solution\n", out)
}

func TestSolve_Trace(t *testing.T) {
	_, logs, err := run(t, "solve", "testdata/sample.txt", "--no-compress", "--trace-every", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, "astar: progress")
}

func TestSolve_MetricsOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridshift.prom")
	_, _, err := run(t, "solve", "testdata/sample.txt", "--metrics-out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gridshift_search_solution_moves 7")
	assert.Contains(t, string(data), "gridshift_search_compressed 1")
}

func TestSolve_ConfigFileAndOverride(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "gridshift.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("search:\n  compress: false\nlog:\n  format: json\n"), 0o600))

	_, logs, err := run(t, "solve", "testdata/sample.txt", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, logs, `"compressed":false`)

	_, logs, err = run(t, "solve", "testdata/sample.txt", "--config", cfg, "--no-compress=false")
	require.NoError(t, err)
	assert.Contains(t, logs, `"compressed":true`)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "testdata/broken.txt")
	assert.ErrorIs(t, err, nodegrid.ErrBadLine)

	_, _, err = run(t, "solve", "testdata/missing.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve", "testdata/sample.txt", "--payload", "9,9")
	assert.ErrorIs(t, err, nodegrid.ErrPayloadOutOfRange)

	_, _, err = run(t, "solve", "testdata/sample.txt", "--max-expansions", "1")
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)

	_, _, err = run(t, "solve")
	assert.Error(t, err)
}

func TestViable(t *testing.T) {
	out, _, err := run(t, "viable", "testdata/sample.txt")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRender(t *testing.T) {
	out, _, err := run(t, "render", "testdata/sample.txt")
	require.NoError(t, err)
	assert.Equal(t, "(.) .  G\n .  _  .\n #  .  .\n", out)

	out, _, err = run(t, "render", "testdata/sample.txt", "--payload", "1,0")
	require.NoError(t, err)
	assert.Equal(t, "(.) G  .\n .  _  .\n #  .  .\n", out)
}

func TestSearchMetrics_Observe(t *testing.T) {
	m := newSearchMetrics()
	m.observe(&nodegrid.Solution{
		Result: &astar.Result[grid.Move]{
			Found: true,
			Moves: make([]grid.Move, 3),
			Stats: astar.Stats{Expanded: 10, Generated: 25, MaxOpen: 6},
		},
		Compressed: true,
	}, 0)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.moves))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.found))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.expanded))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.maxOpen))

	m.observe(&nodegrid.Solution{Result: &astar.Result[grid.Move]{}}, 0)
	assert.Equal(t, -1.0, testutil.ToFloat64(m.moves))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.found))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.compressed))
}
