package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridshift",
		Short: "Move a payload across a grid of capacity-limited storage nodes",
		Long: `gridshift reads a df-style listing of a storage cluster and finds the
fewest data moves that bring the payload node's data to the top-left node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML run configuration")

	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find the fewest moves that bring the payload to the target corner",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve, // cmd_solve.go
	}
	f := solveCmd.Flags()
	f.Int("trace-every", 0, "log search progress every n expansions (0 = off)")
	f.Int("max-expansions", 0, "abort after n expansions (0 = unlimited)")
	f.Bool("move-check", false, "cross-check incremental move lists after every move")
	f.Bool("no-compress", false, "search the full-fidelity state even if the grid compresses")
	f.String("payload", "", "payload location as x,y (default: top-right node)")
	f.String("metrics-out", "", "write search metrics to this Prometheus text file")
	f.Bool("print-moves", false, "print every move of the solution")

	viableCmd := &cobra.Command{
		Use:   "viable FILE",
		Short: "Count ordered pairs of nodes whose data could move one into the other",
		Args:  cobra.ExactArgs(1),
		RunE:  runViable, // cmd_inspect.go
	}

	renderCmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the cluster as a map of payload, empty, blocker and ordinary nodes",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender, // cmd_inspect.go
	}
	renderCmd.Flags().String("payload", "", "payload location as x,y (default: top-right node)")

	root.AddCommand(solveCmd, viableCmd, renderCmd)
	return root
}
