package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridshift/config"
	"github.com/katalvlaran/gridshift/grid"
	"github.com/katalvlaran/gridshift/nodegrid"
)

// resolveConfig loads the --config file and environment, then applies any
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if f.Changed("trace-every") {
		cfg.Search.TraceEvery, _ = f.GetInt("trace-every")
	}
	if f.Changed("max-expansions") {
		cfg.Search.MaxExpansions, _ = f.GetInt("max-expansions")
	}
	if f.Changed("move-check") {
		cfg.Search.MoveCheck, _ = f.GetBool("move-check")
	}
	if f.Changed("no-compress") {
		off, _ := f.GetBool("no-compress")
		cfg.Search.Compress = !off
	}
	if f.Changed("payload") {
		cfg.Search.Payload, _ = f.GetString("payload")
	}
	if f.Changed("metrics-out") {
		cfg.Output.MetricsOut, _ = f.GetString("metrics-out")
	}
	if f.Changed("print-moves") {
		cfg.Output.PrintMoves, _ = f.GetBool("print-moves")
	}
	return cfg, cfg.Validate()
}

// newLogger builds the structured logger for one run. Every record carries
// a short run id so interleaved runs can be told apart.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("run", uuid.NewString()[:8]), nil
}

// loadGrid parses the listing at path.
func loadGrid(path string) (*grid.Grid[nodegrid.Node], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := nodegrid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// loadState parses the listing at path and places the payload where cfg
// says, or at the top-right node.
func loadState(path string, cfg config.Config) (*nodegrid.State, error) {
	g, err := loadGrid(path)
	if err != nil {
		return nil, err
	}
	payload, ok, err := cfg.Search.PayloadCoord()
	if err != nil {
		return nil, err
	}
	if !ok {
		payload = nodegrid.DefaultPayload(g)
	}
	var opts []nodegrid.Option
	if cfg.Search.MoveCheck {
		opts = append(opts, nodegrid.WithMoveCheck())
	}
	return nodegrid.New(g, payload, opts...)
}
