// Package config loads the run configuration of the gridshift command.
//
// Values are resolved with priority flags > environment > file > defaults.
// Flags are applied by the command itself; Load covers the rest:
//
//	search:
//	  trace_every: 10000     # progress line every n expansions, 0 = off
//	  max_expansions: 0      # 0 = unlimited
//	  move_check: false      # cross-check incremental move lists
//	  compress: true         # try the equivalence-compressed search first
//	  payload: "31,0"        # "x,y"; empty = top-right node
//	output:
//	  metrics_out: ""        # Prometheus text file, empty = none
//	  print_moves: false
//	log:
//	  level: info            # debug, info, warn, error
//	  format: text           # text or json
//
// Environment overrides use the GRIDSHIFT_ prefix, e.g.
// GRIDSHIFT_TRACE_EVERY=500 or GRIDSHIFT_LOG_LEVEL=debug.
package config
