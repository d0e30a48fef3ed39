package nodegrid

import (
	"slices"
	"sort"

	"github.com/katalvlaran/gridshift/grid"
)

// ViablePairs counts ordered pairs of distinct nodes (A, B), adjacent or
// not, where A is non-empty and B has room for all of A's data.
//
// Complexity: O(N log N) for N nodes.
func ViablePairs(g *grid.Grid[Node]) int {
	avails := make([]int, 0, g.Len())
	for _, n := range g.All() {
		avails = append(avails, n.Avail)
	}
	slices.Sort(avails)

	pairs := 0
	for _, a := range g.All() {
		if a.Empty() {
			continue
		}
		// Nodes with Avail ≥ a.Used, minus a itself if it qualifies.
		i := sort.SearchInts(avails, a.Used)
		pairs += len(avails) - i
		if a.Avail >= a.Used {
			pairs--
		}
	}
	return pairs
}
