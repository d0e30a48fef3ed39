package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridshift/nodegrid"
)

// runViable prints the number of viable node pairs in the listing.
func runViable(cmd *cobra.Command, args []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), nodegrid.ViablePairs(g))
	return err
}

// runRender draws the cluster map.
func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadState(args[0], cfg)
	if err != nil {
		return err
	}
	return nodegrid.Render(cmd.OutOrStdout(), s)
}
