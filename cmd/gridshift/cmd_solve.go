package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridshift/astar"
	"github.com/katalvlaran/gridshift/nodegrid"
)

// runSolve parses the listing, searches for the shortest move sequence and
// prints its length ("no solution" when the payload cannot reach the
// target).
func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	s, err := loadState(args[0], cfg)
	if err != nil {
		return err
	}
	logger.Info("gridshift: solving",
		"file", args[0],
		"width", s.Width(),
		"height", s.Height(),
		"payload", s.Payload().String(),
		"compress", cfg.Search.Compress,
		"move_check", cfg.Search.MoveCheck)

	opts := []astar.Option{
		astar.WithTraceEvery(cfg.Search.TraceEvery),
		astar.WithMaxExpansions(cfg.Search.MaxExpansions),
		astar.WithLogger(logger),
	}

	start := time.Now()
	sol, err := solve(s, cfg.Search.Compress, opts)
	elapsed := time.Since(start)
	if errors.Is(err, astar.ErrExpansionLimit) {
		logger.Warn("gridshift: expansion limit reached", "limit", cfg.Search.MaxExpansions)
	}
	if err != nil {
		return err
	}
	if sol.Declined != nil {
		logger.Info("gridshift: compression declined", "reason", sol.Declined.Error())
	}
	logger.Info("gridshift: search finished",
		"found", sol.Result.Found,
		"moves", len(sol.Result.Moves),
		"compressed", sol.Compressed,
		"expanded", sol.Result.Stats.Expanded,
		"elapsed", elapsed)

	if cfg.Output.MetricsOut != "" {
		m := newSearchMetrics()
		m.observe(sol, elapsed)
		if err := m.write(cfg.Output.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return printSolution(cmd.OutOrStdout(), sol, cfg.Output.PrintMoves)
}

// solve runs the compressed search when allowed and possible, and the
// full-fidelity one otherwise.
func solve(s *nodegrid.State, compress bool, opts []astar.Option) (*nodegrid.Solution, error) {
	if compress {
		return nodegrid.Solve(s, opts...)
	}
	res, err := nodegrid.SolveFull(s, opts...)
	if err != nil {
		return nil, err
	}
	return &nodegrid.Solution{Result: res}, nil
}

func printSolution(w io.Writer, sol *nodegrid.Solution, moves bool) error {
	if !sol.Result.Found {
		_, err := fmt.Fprintln(w, "no solution")
		return err
	}
	if _, err := fmt.Fprintf(w, "moves: %d\n", len(sol.Result.Moves)); err != nil {
		return err
	}
	if !moves {
		return nil
	}
	for i, m := range sol.Result.Moves {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", i+1, m); err != nil {
			return err
		}
	}
	return nil
}
