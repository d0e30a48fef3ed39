// Command gridshift moves a payload across a cluster of storage nodes.
//
//	gridshift solve  listing.txt [--print-moves] [--metrics-out stats.prom]
//	gridshift viable listing.txt
//	gridshift render listing.txt
//
// The listing is the df-style output of the cluster (see nodegrid.Parse).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridshift:", err)
		os.Exit(1)
	}
}
