package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridshift/grid"
)

// ErrInvalid is returned (wrapped with the offending field) when a value
// fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full run configuration.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig controls the engine and the puzzle state.
type SearchConfig struct {
	TraceEvery    int    `yaml:"trace_every"`
	MaxExpansions int    `yaml:"max_expansions"`
	MoveCheck     bool   `yaml:"move_check"`
	Compress      bool   `yaml:"compress"`
	Payload       string `yaml:"payload"`
}

// OutputConfig controls what a solve run writes besides its summary.
type OutputConfig struct {
	MetricsOut string `yaml:"metrics_out"`
	PrintMoves bool   `yaml:"print_moves"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Search: SearchConfig{
			TraceEvery: 10000,
			Compress:   true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves the configuration from defaults, the YAML file at path (if
// path is non-empty) and GRIDSHIFT_* environment variables, then validates
// it. Unknown keys in the file are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"GRIDSHIFT_TRACE_EVERY", &cfg.Search.TraceEvery},
		{"GRIDSHIFT_MAX_EXPANSIONS", &cfg.Search.MaxExpansions},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, e.key, v, err)
			}
			*e.dst = i
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"GRIDSHIFT_MOVE_CHECK", &cfg.Search.MoveCheck},
		{"GRIDSHIFT_COMPRESS", &cfg.Search.Compress},
		{"GRIDSHIFT_PRINT_MOVES", &cfg.Output.PrintMoves},
	}
	for _, e := range bools {
		if v := os.Getenv(e.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, e.key, v, err)
			}
			*e.dst = b
		}
	}

	if v := os.Getenv("GRIDSHIFT_PAYLOAD"); v != "" {
		cfg.Search.Payload = v
	}
	if v := os.Getenv("GRIDSHIFT_METRICS_OUT"); v != "" {
		cfg.Output.MetricsOut = v
	}
	if v := os.Getenv("GRIDSHIFT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GRIDSHIFT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalid.
func (c Config) Validate() error {
	if c.Search.TraceEvery < 0 {
		return fmt.Errorf("%w: trace_every must be >= 0 (got %d)", ErrInvalid, c.Search.TraceEvery)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be >= 0 (got %d)", ErrInvalid, c.Search.MaxExpansions)
	}
	if _, _, err := c.Search.PayloadCoord(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q, want text or json", ErrInvalid, c.Log.Format)
	}
	return nil
}

// PayloadCoord parses Payload. ok is false when Payload is empty and the
// default location should be used.
func (c SearchConfig) PayloadCoord() (grid.Coord, bool, error) {
	if strings.TrimSpace(c.Payload) == "" {
		return grid.Coord{}, false, nil
	}
	p, err := ParseCoord(c.Payload)
	if err != nil {
		return grid.Coord{}, false, err
	}
	return p, true, nil
}

// ParseCoord parses "x,y" into a grid coordinate. Both components must be
// non-negative integers.
func ParseCoord(s string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("%w: coordinate %q, want x,y", ErrInvalid, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return grid.Coord{}, fmt.Errorf("%w: coordinate %q, want non-negative x,y", ErrInvalid, s)
	}
	return grid.Coord{X: x, Y: y}, nil
}

// SlogLevel maps Level onto a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q: %v", ErrInvalid, c.Level, err)
	}
	return l, nil
}
